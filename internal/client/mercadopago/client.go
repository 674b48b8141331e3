package mercadopago

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the production Mercado Pago API host
	DefaultBaseURL = "https://api.mercadopago.com"

	// DefaultTimeout bounds every create-payment call; on expiry the call
	// resolves to an error instead of hanging the checkout request.
	DefaultTimeout = 5 * time.Second
)

// Client manages communication with the Mercado Pago payments API
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
	logger      *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API host (used against test servers)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Mercado Pago API client
func NewClient(accessToken string, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.L()
	}
	c := &Client{
		accessToken: accessToken,
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a rejection returned by the Mercado Pago API. It carries the
// HTTP status, the processor's message and the raw response body.
type APIError struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mercadopago: status %d: %s", e.StatusCode, e.Message)
}

// apiErrorBody matches the error envelope Mercado Pago returns on rejection
type apiErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Cause   []struct {
		Code        json.Number `json:"code"`
		Description string      `json:"description"`
	} `json:"cause"`
}
