package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/barload/internal/config"
	"github.com/meltforce/barload/internal/localstate"
	"github.com/meltforce/barload/internal/mcp"
	"github.com/meltforce/barload/internal/plates"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "barload server URL (e.g. https://barload.tail1234.ts.net); empty keeps state in a local file")
	apiKey := flag.String("api-key", os.Getenv("BARLOAD_AUTH_API_KEY"), "API key for saving state on the server")
	stateDir := flag.String("state-dir", "", "directory for the local state database (default: user config dir)")
	platesFlag := flag.String("plates", "", "comma-separated default plate sizes in kg")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("barload-mcp", Version)
		return
	}

	// stdout carries the MCP protocol
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	inventory, err := plates.NewInventory(plates.DefaultSelection...)
	if *platesFlag != "" {
		var weights []float64
		weights, err = config.ParsePlateList(*platesFlag)
		if err == nil {
			inventory, err = plates.NewInventory(weights...)
		}
	}
	if err != nil {
		log.Error("invalid plates", "error", err)
		os.Exit(1)
	}

	var ds mcp.StateSource
	if *serverURL != "" {
		ds = mcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("using remote state", "server", *serverURL)
	} else {
		dir := *stateDir
		if dir == "" {
			dir, err = localstate.DefaultDir()
			if err != nil {
				log.Error("failed to resolve state directory", "error", err)
				os.Exit(1)
			}
		}
		state, err := localstate.Open(dir)
		if err != nil {
			log.Error("failed to open state database", "error", err)
			os.Exit(1)
		}
		defer state.Close()
		ds = state
		log.Info("using local state", "dir", dir)
	}

	if err := mcpserver.ServeStdio(mcp.New(ds, inventory, Version, log)); err != nil {
		log.Error("mcp server stopped", "error", err)
		os.Exit(1)
	}
}
