// Package config assembles the dashboard configuration from defaults, an
// optional YAML file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	envcfg "portfolio-dashboard/pkg/config"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the complete runtime configuration.
type Config struct {
	ListenAddr      string        `yaml:"listen_addr"`
	LoginURL        string        `yaml:"login_url"`
	CookieSecure    bool          `yaml:"cookie_secure"`
	LogLevel        string        `yaml:"log_level"`
	Version         string        `yaml:"version"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// PublicPaths extend the guard's allow-list; a trailing '/' matches a prefix.
	PublicPaths []string `yaml:"public_paths"`

	API           APIConfig           `yaml:"api"`
	Cache         CacheConfig         `yaml:"cache"`
	Probe         ProbeConfig         `yaml:"probe"`
	LoginThrottle LoginThrottleConfig `yaml:"login_throttle"`
}

// APIConfig points at the content API.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	AuthScheme string        `yaml:"auth_scheme"`
	Timeout    time.Duration `yaml:"timeout"`
	RateLimit  float64       `yaml:"rate_limit"`
	Burst      int           `yaml:"burst"`
}

// CacheConfig selects the tag cache backing reads.
type CacheConfig struct {
	Backend       string        `yaml:"backend"`
	TTL           time.Duration `yaml:"ttl"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

// ProbeConfig schedules the background readiness probe.
type ProbeConfig struct {
	Schedule string        `yaml:"schedule"`
	Timezone string        `yaml:"timezone"`
	Timeout  time.Duration `yaml:"timeout"`
	Path     string        `yaml:"path"`
}

// LoginThrottleConfig bounds login form submissions per client IP.
type LoginThrottleConfig struct {
	Interval time.Duration `yaml:"interval"`
	Burst    int           `yaml:"burst"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		ListenAddr:      ":3000",
		LoginURL:        "/login",
		CookieSecure:    true,
		LogLevel:        "info",
		Version:         "dev",
		ShutdownTimeout: 10 * time.Second,
		API: APIConfig{
			Timeout:   10 * time.Second,
			RateLimit: 20,
			Burst:     40,
		},
		Cache: CacheConfig{
			Backend:   CacheMemory,
			TTL:       5 * time.Minute,
			RedisAddr: "localhost:6379",
		},
		Probe: ProbeConfig{
			Schedule: "*/1 * * * *",
			Timezone: "UTC",
			Timeout:  5 * time.Second,
			Path:     "skills",
		},
		LoginThrottle: LoginThrottleConfig{
			Interval: 12 * time.Second,
			Burst:    5,
		},
	}
}

// Load reads envFile into the process environment (missing file is fine,
// existing variables win), overlays the YAML file at yamlPath or
// $DASHBOARD_CONFIG if set, then applies environment overrides and
// validates the result.
func Load(envFile, yamlPath string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()

	if yamlPath == "" {
		yamlPath = envcfg.GetEnvString("DASHBOARD_CONFIG", "")
	}
	if yamlPath != "" {
		if err := loadYAML(yamlPath, &cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	// #nosec G304 -- path comes from a CLI flag or the operator's environment
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.ListenAddr = envcfg.GetEnvString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.LoginURL = envcfg.GetEnvString("LOGIN_URL", cfg.LoginURL)
	cfg.CookieSecure = envcfg.GetEnvBool("COOKIE_SECURE", cfg.CookieSecure)
	cfg.LogLevel = envcfg.GetEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.Version = envcfg.GetEnvString("VERSION", cfg.Version)
	cfg.ShutdownTimeout = envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.PublicPaths = envcfg.GetEnvStringList("PUBLIC_PATHS", cfg.PublicPaths)

	cfg.API.BaseURL = strings.TrimRight(envcfg.GetEnvString("API_BASE_URL", cfg.API.BaseURL), "/")
	cfg.API.AuthScheme = envcfg.GetEnvString("API_AUTH_SCHEME", cfg.API.AuthScheme)
	cfg.API.Timeout = envcfg.GetEnvDuration("UPSTREAM_TIMEOUT", cfg.API.Timeout)
	cfg.API.RateLimit = envcfg.GetEnvFloat("UPSTREAM_RATE_LIMIT", cfg.API.RateLimit)
	cfg.API.Burst = envcfg.GetEnvInt("UPSTREAM_BURST", cfg.API.Burst)

	cfg.Cache.Backend = strings.ToLower(envcfg.GetEnvString("CACHE_BACKEND", cfg.Cache.Backend))
	cfg.Cache.TTL = envcfg.GetEnvDuration("CACHE_TTL", cfg.Cache.TTL)
	cfg.Cache.RedisAddr = envcfg.GetEnvString("REDIS_ADDR", cfg.Cache.RedisAddr)
	cfg.Cache.RedisPassword = envcfg.GetEnvString("REDIS_PASSWORD", cfg.Cache.RedisPassword)
	cfg.Cache.RedisDB = envcfg.GetEnvInt("REDIS_DB", cfg.Cache.RedisDB)

	cfg.Probe.Schedule = envcfg.GetEnvString("UPSTREAM_PROBE_SCHEDULE", cfg.Probe.Schedule)
	cfg.Probe.Timezone = envcfg.GetEnvString("UPSTREAM_PROBE_TIMEZONE", cfg.Probe.Timezone)
	cfg.Probe.Timeout = envcfg.GetEnvDuration("UPSTREAM_PROBE_TIMEOUT", cfg.Probe.Timeout)

	cfg.LoginThrottle.Interval = envcfg.GetEnvDuration("LOGIN_THROTTLE_INTERVAL", cfg.LoginThrottle.Interval)
	cfg.LoginThrottle.Burst = envcfg.GetEnvInt("LOGIN_THROTTLE_BURST", cfg.LoginThrottle.Burst)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("API_BASE_URL is required"))
	} else {
		check("API_BASE_URL", envcfg.ValidateHTTPURL(c.API.BaseURL))
	}
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("LISTEN_ADDR must not be empty"))
	}
	if c.LoginURL == "" {
		errs = append(errs, errors.New("LOGIN_URL must not be empty"))
	}
	for _, p := range c.PublicPaths {
		if !strings.HasPrefix(p, "/") {
			errs = append(errs, fmt.Errorf("PUBLIC_PATHS: %q must start with /", p))
		}
	}
	check("UPSTREAM_TIMEOUT", envcfg.ValidateDurationRange(c.API.Timeout, 100*time.Millisecond, 2*time.Minute))
	if c.API.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("UPSTREAM_RATE_LIMIT: must not be negative, got %v", c.API.RateLimit))
	}
	check("CACHE_BACKEND", envcfg.ValidateOneOf(c.Cache.Backend, CacheMemory, CacheRedis))
	check("CACHE_TTL", envcfg.ValidatePositiveDuration(c.Cache.TTL))
	if c.Cache.Backend == CacheRedis && c.Cache.RedisAddr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is required when CACHE_BACKEND=redis"))
	}
	check("UPSTREAM_PROBE_SCHEDULE", envcfg.ValidateCronSchedule(c.Probe.Schedule))
	check("UPSTREAM_PROBE_TIMEZONE", envcfg.ValidateTimezone(c.Probe.Timezone))
	check("UPSTREAM_PROBE_TIMEOUT", envcfg.ValidatePositiveDuration(c.Probe.Timeout))
	check("SHUTDOWN_TIMEOUT", envcfg.ValidatePositiveDuration(c.ShutdownTimeout))
	check("LOGIN_THROTTLE_INTERVAL", envcfg.ValidatePositiveDuration(c.LoginThrottle.Interval))
	if c.LoginThrottle.Burst < 1 {
		errs = append(errs, fmt.Errorf("LOGIN_THROTTLE_BURST: must be at least 1, got %d", c.LoginThrottle.Burst))
	}

	return errors.Join(errs...)
}

// ProbeLocation resolves the probe timezone, UTC if it cannot be loaded.
func (c *Config) ProbeLocation() *time.Location {
	loc, err := time.LoadLocation(c.Probe.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
