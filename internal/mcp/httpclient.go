package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meltforce/barload/internal/models"
)

// HTTPClient implements StateSource by calling the barload REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// state lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies StateSource.
var _ StateSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey
// may be empty when the server does not require one for writes.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(data))
	}

	return data, nil
}

func statePath(exercise string) string {
	return "/api/v1/state/" + url.PathEscape(exercise)
}

// GetExerciseState fetches the saved state for one exercise.
func (c *HTTPClient) GetExerciseState(ctx context.Context, exercise string) (models.ExerciseState, error) {
	body, err := c.do(ctx, http.MethodGet, statePath(exercise), nil)
	if err != nil {
		return models.ExerciseState{}, err
	}
	var st models.ExerciseState
	if err := json.Unmarshal(body, &st); err != nil {
		return models.ExerciseState{}, fmt.Errorf("httpclient: decode state: %w", err)
	}
	return st, nil
}

// SaveExerciseState stores st on the server.
func (c *HTTPClient) SaveExerciseState(ctx context.Context, st models.ExerciseState) error {
	payload := map[string]any{
		"last_weight": st.LastWeight,
		"plates":      st.Plates,
	}
	_, err := c.do(ctx, http.MethodPut, statePath(st.Exercise), payload)
	return err
}
