package simulation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"infinity_api/src/logger"
	"infinity_api/src/model"
)

// DefaultTimeout bounds a single call to the simulation worker.
const DefaultTimeout = 2 * time.Minute

// Client is an Engine backed by a remote simulation worker speaking JSON
// over HTTP. Objects are posted to {base}/{kind}/summary and
// {base}/{kind}/encode.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg model.SimulationConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type encodeResponse struct {
	Encoded string `json:"encoded"`
}

func (c *Client) Summarize(ctx context.Context, obj Object) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, obj, "summary", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Encode(ctx context.Context, obj Object) (string, error) {
	var out encodeResponse
	if err := c.post(ctx, obj, "encode", &out); err != nil {
		return "", err
	}
	return out.Encoded, nil
}

func (c *Client) post(ctx context.Context, obj Object, action string, out any) error {
	body, err := sonic.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", obj.Kind(), err)
	}

	url := fmt.Sprintf("%s/%s/%s", c.baseURL, obj.Kind(), action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build simulation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("simulation worker unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read simulation response: %w", err)
	}

	logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("simulation worker call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("simulation worker returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode simulation response: %w", err)
	}
	return nil
}
