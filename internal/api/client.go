// Package api implements the HTTP client for the agent backend.
package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"firechat/internal/config"
	"firechat/internal/models"
)

// Response bodies are read through a limit to bound memory use.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// AgentClientInterface defines the backend operations the rest of the
// client depends on. It exists so commands and the TUI can be tested
// against a mock.
type AgentClientInterface interface {
	FetchTools(ctx context.Context) ([]string, error)
	SendChat(ctx context.Context, message string, history []models.HistoryEntry) (*models.ChatReply, error)
	Health(ctx context.Context) (*models.HealthStatus, error)
	BaseURL() string
}

// AgentClient talks to the agent backend over plain HTTP.
type AgentClient struct {
	baseURL      string
	httpClient   *http.Client
	toolsTimeout time.Duration
	chatTimeout  time.Duration
}

var _ AgentClientInterface = (*AgentClient)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*AgentClient)

// WithToolsTimeout overrides the tool directory fetch timeout.
func WithToolsTimeout(d time.Duration) ClientOption {
	return func(c *AgentClient) {
		c.toolsTimeout = d
	}
}

// WithChatTimeout overrides the chat exchange timeout.
func WithChatTimeout(d time.Duration) ClientOption {
	return func(c *AgentClient) {
		c.chatTimeout = d
	}
}

// WithHTTPClient substitutes the underlying HTTP client (used in tests).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *AgentClient) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *AgentClient {
	client := &AgentClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
			// Per-request deadlines come from contexts, not the client.
		},
		toolsTimeout: config.DefaultToolsTimeoutSec * time.Second,
		chatTimeout:  config.DefaultChatTimeoutSec * time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the backend base URL this client targets.
func (c *AgentClient) BaseURL() string {
	return c.baseURL
}

// readBody drains a response body with the size limit applied.
func readBody(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxResponseSize))
}
