// Package api provides the HTTP client for the slide generation service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tesso57/slidegen/internal/domain/deck"
)

const (
	defaultBaseURL      = "http://localhost:5000"
	defaultGeneratePath = "/generate"
	maxResponseBytes    = 1 << 20
)

// ErrEmptyResponse is returned when the service answers 2xx with no body.
var ErrEmptyResponse = errors.New("generation service returned an empty response")

// StatusError reports a non-2xx response from the service.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("generation service returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("generation service returned HTTP %d: %s", e.StatusCode, e.Message)
}

// Config controls how the service is reached.
type Config struct {
	BaseURL      string
	GeneratePath string
	// Timeout bounds one call; zero waits until the service answers.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client implements usecase.Generator over HTTP.
type Client struct {
	config Config
	http   *http.Client
}

// NewClient creates a generation service client.
func NewClient(cfg Config) *Client {
	normalized := normalizeConfig(cfg)
	httpClient := normalized.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: normalized.Timeout}
	}
	return &Client{
		config: normalized,
		http:   httpClient,
	}
}

// Endpoint returns the absolute URL of the generate call.
func (c *Client) Endpoint() (string, error) {
	return url.JoinPath(c.config.BaseURL, c.config.GeneratePath)
}

// Generate posts the request and decodes the service message.
func (c *Client) Generate(ctx context.Context, req deck.Request) (deck.Result, error) {
	endpoint, err := c.Endpoint()
	if err != nil {
		return deck.Result{}, fmt.Errorf("invalid generate endpoint: %w", err)
	}
	body, err := json.Marshal(req)
	if err != nil {
		return deck.Result{}, fmt.Errorf("encode generate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return deck.Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return deck.Result{}, fmt.Errorf("generate request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return deck.Result{}, fmt.Errorf("read generate response: %w", err)
	}
	data = bytes.TrimSpace(data)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return deck.Result{}, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	if len(data) == 0 {
		return deck.Result{}, ErrEmptyResponse
	}

	var result deck.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return deck.Result{}, fmt.Errorf("decode generate response: %w", err)
	}
	return result, nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func errorMessage(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if msg := strings.TrimSpace(body.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(body.Message); msg != "" {
			return msg
		}
	}
	text := strings.Join(strings.Fields(string(data)), " ")
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	return text
}

func normalizeConfig(cfg Config) Config {
	normalized := cfg
	normalized.BaseURL = strings.TrimRight(strings.TrimSpace(normalized.BaseURL), "/")
	if normalized.BaseURL == "" {
		normalized.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(normalized.GeneratePath) == "" {
		normalized.GeneratePath = defaultGeneratePath
	}
	if normalized.Timeout < 0 {
		normalized.Timeout = 0
	}
	return normalized
}
