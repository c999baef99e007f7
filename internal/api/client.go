package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apierrors "github.com/diogo/chatpanel/internal/errors"
	"github.com/diogo/chatpanel/internal/models"
)

// Generator turns a prompt into a reply. *Client implements it; tests and
// the chat package depend on this interface only.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Doer is the subset of tls_client.HttpClient used by the client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Gemini generateContent REST endpoint
type Client struct {
	httpClient Doer
	apiKey     string
	model      string
	endpoint   string
	timeout    time.Duration
}

// Ensure Client implements Generator
var _ Generator = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithModel sets the model used in the request path
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithEndpoint overrides the API base URL
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient injects the transport (used by tests)
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// NewClient creates a client for the given API key. The key is required;
// it is never read from the environment here.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, apierrors.ErrNoAPIKey
	}

	client := &Client{
		apiKey:   apiKey,
		model:    models.DefaultModel,
		endpoint: models.EndpointBase,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Model returns the model name used in requests
func (c *Client) Model() string {
	return c.model
}

// Endpoint returns the generateContent URL without the key, safe for logs
func (c *Client) Endpoint() string {
	return fmt.Sprintf("%s/models/%s:%s", c.endpoint, c.model, models.MethodGenerateContent)
}

// requestURL returns the full URL including the key query parameter
func (c *Client) requestURL() string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	return c.Endpoint() + "?" + q.Encode()
}
