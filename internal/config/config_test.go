package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment does
// not leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DASHBOARD_CONFIG", "LISTEN_ADDR", "LOGIN_URL", "COOKIE_SECURE", "LOG_LEVEL", "VERSION",
		"SHUTDOWN_TIMEOUT", "API_BASE_URL", "API_AUTH_SCHEME", "UPSTREAM_TIMEOUT",
		"UPSTREAM_RATE_LIMIT", "UPSTREAM_BURST", "CACHE_BACKEND", "CACHE_TTL", "REDIS_ADDR",
		"REDIS_PASSWORD", "REDIS_DB", "UPSTREAM_PROBE_SCHEDULE", "UPSTREAM_PROBE_TIMEZONE",
		"UPSTREAM_PROBE_TIMEOUT", "LOGIN_THROTTLE_INTERVAL", "LOGIN_THROTTLE_BURST", "PUBLIC_PATHS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "http://localhost:5000/api/v1/")

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, "/login", cfg.LoginURL)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, time.UTC, cfg.ProbeLocation())
}

func TestLoad_MissingBaseURL(t *testing.T) {
	clearEnv(t)
	_, err := Load("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL is required")
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load("", filepath.Join("testdata", "dashboard.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "https://admin.example.com/login", cfg.LoginURL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "https://api.example.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5.0, cfg.API.RateLimit)
	assert.Equal(t, 40, cfg.API.Burst, "unset keys keep defaults")
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL, "environment wins over YAML")
	assert.Equal(t, "@every 30s", cfg.Probe.Schedule)
}

func TestLoad_YAMLFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DASHBOARD_CONFIG", filepath.Join("testdata", "dashboard.yaml"))

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load("", filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = Load("", filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("API_BASE_URL=https://from-dotenv.example.com\nLOG_LEVEL=debug\n"), 0o600))
	// godotenv never overwrites a variable that exists, even an empty one.
	require.NoError(t, os.Unsetenv("API_BASE_URL"))
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	t.Cleanup(func() {
		_ = os.Unsetenv("API_BASE_URL")
		_ = os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := Load(envFile, "")
	require.NoError(t, err)
	assert.Equal(t, "https://from-dotenv.example.com", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "https://api.example.com")
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"), "")
	assert.NoError(t, err)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "ftp://api"
	cfg.Cache.Backend = "memcached"
	cfg.Probe.Schedule = "whenever"
	cfg.LoginThrottle.Burst = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"API_BASE_URL", "CACHE_BACKEND", "UPSTREAM_PROBE_SCHEDULE", "LOGIN_THROTTLE_BURST"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidate_RedisNeedsAddr(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "https://api.example.com"
	cfg.Cache.Backend = CacheRedis
	cfg.Cache.RedisAddr = ""
	assert.ErrorContains(t, cfg.Validate(), "REDIS_ADDR")
}

func TestLoad_PublicPaths(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "http://localhost:5000")
	t.Setenv("PUBLIC_PATHS", "/docs/, /status")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/docs/", "/status"}, cfg.PublicPaths)

	t.Setenv("PUBLIC_PATHS", "docs")
	_, err = Load("", "")
	assert.ErrorContains(t, err, `PUBLIC_PATHS: "docs" must start with /`)
}
