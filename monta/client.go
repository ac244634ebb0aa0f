package monta

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the current (v6) Monta API endpoint
	DefaultBaseURL = "https://api-v6.monta.nl"
	// LegacyBaseURL is the v5 REST endpoint kept for older accounts
	LegacyBaseURL = "https://api.montapacking.nl/rest/v5"

	defaultTimeout     = 30 * time.Second
	defaultConcurrency = 5
)

// Config holds the connection details for one Monta account
type Config struct {
	BaseURL  string
	Username string
	Password string
}

// Client represents a Monta API client
type Client struct {
	baseURL     string
	username    string
	authHeader  string
	transport   Transport
	timeout     time.Duration
	concurrency int
	userAgent   string
	logger      zerolog.Logger
}

// NewClient creates a new Monta client. No request is made until an
// operation is called.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidConfig)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	o := clientOptions{
		timeout:     defaultTimeout,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	if transport == nil {
		transport = NewRestyTransport(o.timeout)
	}

	return &Client{
		baseURL:     baseURL,
		username:    cfg.Username,
		authHeader:  basicAuth(cfg.Username, cfg.Password),
		transport:   transport,
		timeout:     o.timeout,
		concurrency: o.concurrency,
		userAgent:   o.userAgent,
		logger:      logger,
	}, nil
}

// BaseURL returns the API root every request path is appended to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// basicAuth builds the Authorization header value for HTTP Basic auth
func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}
