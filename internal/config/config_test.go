package config

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhasan05/teamerror-portfolio/client"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"API_URL", "SITE_HOST", "HTTP_TIMEOUT", "USER_AGENT", "LOG_LEVEL", "DEBUG", "DEV_ADDR"} {
		key := Prefix + "_" + k
		t.Setenv(key, "") // restores the original value after the test
		_ = os.Unsetenv(key)
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, client.LocalAPI, cfg.APIEndpoint())
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.Equal(t, ":8000", cfg.DevAddr)
	assert.Equal(t, "teamerror-portfolio-client/1.0", cfg.UserAgent)
}

func TestNew_OverrideWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(Prefix+"_HTTP_TIMEOUT", "3s")
	t.Setenv(Prefix+"_USER_AGENT", "ua")
	t.Setenv(Prefix+"_API_URL", "https://custom.example/api")
	t.Setenv(Prefix+"_SITE_HOST", "teamerror.net")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "https://custom.example/api", cfg.APIEndpoint())
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}

func TestNew_ProductionHost(t *testing.T) {
	clearEnv(t)
	t.Setenv(Prefix+"_HTTP_TIMEOUT", "10s")
	t.Setenv(Prefix+"_USER_AGENT", "ua")
	t.Setenv(Prefix+"_SITE_HOST", "www.teamerror.net")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, client.ProductionAPI, cfg.APIEndpoint())
}

func TestNew_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(Prefix+"_HTTP_TIMEOUT", "soon")
	_, err := New()
	require.Error(t, err)

	t.Setenv(Prefix+"_HTTP_TIMEOUT", "-1s")
	t.Setenv(Prefix+"_USER_AGENT", "ua")
	_, err = New()
	require.Error(t, err)
}

func TestAPIEndpoint_ResolvedOnce(t *testing.T) {
	cfg := &Config{SiteHost: "teamerror.net", HTTPTimeout: time.Second, UserAgent: "ua"}
	first := cfg.APIEndpoint()
	cfg.SiteHost = "localhost"
	cfg.APIURL = "https://changed.example/api"
	assert.Equal(t, first, cfg.APIEndpoint(), "endpoint must not be re-resolved after first use")
}

func TestNewClient(t *testing.T) {
	cfg := &Config{APIURL: "http://127.0.0.1:9/api", HTTPTimeout: time.Second, UserAgent: "ua", LogLevel: "warn"}
	c, err := cfg.NewClient()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9/api", c.BaseURL())
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())

	cfg.Debug = true
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}
