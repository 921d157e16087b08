package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/mhasan05/teamerror-portfolio/client"
	"github.com/mhasan05/teamerror-portfolio/internal/logger"
)

// Prefix is the environment variable prefix, e.g. TEAMERROR_API_URL.
const Prefix = "TEAMERROR"

// Config holds settings for the site binaries.
// Environment variables are automatically parsed from the TEAMERROR_ prefix.
type Config struct {
	// APIURL overrides endpoint resolution when set (build-time/deploy override).
	APIURL string `envconfig:"API_URL"`

	// SiteHost is the hostname the site is served from; drives production detection.
	SiteHost string `envconfig:"SITE_HOST"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	UserAgent   string        `envconfig:"USER_AGENT" default:"teamerror-portfolio-client/1.0"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`

	// DevAddr is the listen address of the local content API.
	DevAddr string `envconfig:"DEV_ADDR" default:":8000"`

	endpointOnce sync.Once
	endpoint     string
}

// New creates a Config by parsing environment variables.
// Example: TEAMERROR_API_URL, TEAMERROR_HTTP_TIMEOUT
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0, got %s", c.HTTPTimeout)
	}
	if c.UserAgent == "" {
		return fmt.Errorf("USER_AGENT cannot be empty")
	}
	return nil
}

// APIEndpoint resolves the API base URL on first call and returns the same
// value for the lifetime of the Config.
func (c *Config) APIEndpoint() string {
	c.endpointOnce.Do(func() {
		c.endpoint = client.ResolveBaseURL(client.EndpointHints{Override: c.APIURL, Hostname: c.SiteHost})
	})
	return c.endpoint
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	return logger.ParseLevel(c.LogLevel)
}

// NewClient builds the content client from the resolved endpoint.
func (c *Config) NewClient(extra ...client.Option) (*client.Client, error) {
	opts := []client.Option{
		client.WithHTTPTimeout(c.HTTPTimeout),
		client.WithUserAgent(c.UserAgent),
		client.WithDebugLogging(c.Debug),
	}
	return client.New(c.APIEndpoint(), append(opts, extra...)...)
}

// LogFields writes the effective configuration to an event.
func (c *Config) LogFields(e *zerolog.Event) *zerolog.Event {
	return e.
		Str("api_endpoint", c.APIEndpoint()).
		Bool("api_override", c.APIURL != "").
		Str("site_host", c.SiteHost).
		Dur("http_timeout", c.HTTPTimeout).
		Str("log_level", c.Level().String()).
		Str("dev_addr", c.DevAddr)
}
