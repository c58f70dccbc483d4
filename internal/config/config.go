package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/meltforce/barload/internal/plates"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Plates    PlatesConfig    `yaml:"plates"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// PlatesConfig is the plate inventory used when a request names none.
type PlatesConfig struct {
	Available []float64 `yaml:"available"`
}

// Inventory returns the configured plates as a sorted set.
func (p PlatesConfig) Inventory() (plates.Inventory, error) {
	return plates.NewInventory(p.Available...)
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix BARLOAD_ and underscore-separated paths:
//
//	BARLOAD_SERVER_HOST, BARLOAD_SERVER_PORT,
//	BARLOAD_DB_HOST, BARLOAD_DB_PORT, BARLOAD_DB_NAME,
//	BARLOAD_DB_USER, BARLOAD_DB_PASSWORD, BARLOAD_DB_SSLMODE,
//	BARLOAD_AUTH_API_KEY, BARLOAD_TAILSCALE_ENABLED,
//	BARLOAD_TAILSCALE_HOSTNAME, BARLOAD_PLATES (comma-separated kg)
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("BARLOAD_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("BARLOAD_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("BARLOAD_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("BARLOAD_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("BARLOAD_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("BARLOAD_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("BARLOAD_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("BARLOAD_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("BARLOAD_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("BARLOAD_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("BARLOAD_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("BARLOAD_PLATES"); v != "" {
		available, err := ParsePlateList(v)
		if err != nil {
			return fmt.Errorf("BARLOAD_PLATES: %w", err)
		}
		cfg.Plates.Available = available
	}
	return nil
}

// ParsePlateList parses a comma-separated list of plate weights.
func ParsePlateList(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		w, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing plate %q: %w", f, err)
		}
		out = append(out, w)
	}
	return out, nil
}

func (c *Config) applyDefaults() {
	if len(c.Plates.Available) == 0 {
		c.Plates.Available = append([]float64(nil), plates.DefaultSelection...)
	}
	if c.Tailscale.Hostname == "" {
		c.Tailscale.Hostname = "barload"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if _, err := c.Plates.Inventory(); err != nil {
		return fmt.Errorf("plates.available: %w", err)
	}
	return nil
}
