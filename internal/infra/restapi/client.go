// Package restapi is the client of the portfolio content API.
//
// Every call returns either a decoded value or an *Error; callers never see the
// raw {success, data, message, error} envelope. Reads are cached per resource
// tag and retried on transient failures; mutations require the session token
// on the context and invalidate their resource tag when they succeed.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-dashboard/internal/handler/http/requestid"
	"portfolio-dashboard/internal/infra/tagcache"
	"portfolio-dashboard/internal/observability/logging"
	"portfolio-dashboard/internal/resilience/circuitbreaker"
	"portfolio-dashboard/internal/resilience/retry"
	"portfolio-dashboard/internal/session"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const maxResponseBytes = 4 << 20

const tracerName = "portfolio-dashboard/restapi"

// UnavailableMessage is shown while the circuit breaker rejects calls.
const UnavailableMessage = "The content service is temporarily unavailable. Please try again shortly."

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. https://api.example.com/api/v1
	BaseURL string
	// Timeout bounds a single HTTP round trip.
	Timeout time.Duration
	// AuthScheme prefixes the token in the Authorization header. The content
	// API expects the raw token, so it is empty by default.
	AuthScheme string
	// CacheTTL bounds how long a read stays cached when no mutation happens.
	CacheTTL time.Duration
	// RequestsPerSecond and Burst throttle outgoing calls. Zero disables throttling.
	RequestsPerSecond float64
	Burst             int
	Retry             retry.Config
	Breaker           circuitbreaker.Config
}

// DefaultConfig returns production defaults for baseURL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:           baseURL,
		Timeout:           10 * time.Second,
		CacheTTL:          5 * time.Minute,
		RequestsPerSecond: 20,
		Burst:             40,
		Retry:             retry.UpstreamReadConfig(),
		Breaker:           circuitbreaker.UpstreamConfig(),
	}
}

// Client talks to the content API.
type Client struct {
	baseURL    string
	authScheme string
	httpClient *http.Client
	cache      tagcache.Store
	cacheTTL   time.Duration
	limiter    *RateLimiter
	breaker    *circuitbreaker.CircuitBreaker
	retryCfg   retry.Config
}

// NewClient builds a Client. A nil cache disables caching.
func NewClient(cfg Config, cache tagcache.Store) *Client {
	if cache == nil {
		cache = tagcache.Nop{}
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker = circuitbreaker.UpstreamConfig()
	}
	if cfg.Retry.MaxAttempts < 1 {
		cfg.Retry = retry.UpstreamReadConfig()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authScheme: cfg.AuthScheme,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cache,
		cacheTTL:   cfg.CacheTTL,
		limiter:    NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
		breaker:    circuitbreaker.New(cfg.Breaker),
		retryCfg:   cfg.Retry,
	}
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// BreakerOpen reports whether calls are currently being rejected.
func (c *Client) BreakerOpen() bool { return c.breaker.IsOpen() }

// Ping checks that the API answers a cheap read. It bypasses the cache.
func (c *Client) Ping(ctx context.Context, path string) error {
	_, err := c.send(ctx, call{resource: "probe", method: http.MethodGet, path: path})
	return err
}

// call describes one request.
type call struct {
	resource string // metrics and span label
	method   string
	path     string // relative to baseURL, already escaped
	body     any
	auth     bool
}

// send performs c and returns the successful envelope, or an *Error.
func (c *Client) send(ctx context.Context, cl call) (*envelope, error) {
	var token string
	if cl.auth {
		token = session.TokenFromContext(ctx)
		if token == "" {
			return nil, &Error{
				Kind:    KindUnauthenticated,
				Message: "You must be logged in to do that",
				Err:     ErrNoToken,
			}
		}
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "content-api "+cl.method+" "+cl.resource,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", cl.method),
			attribute.String("content_api.resource", cl.resource),
		),
	)
	defer span.End()

	if err := c.limiter.Allow(ctx); err != nil {
		span.SetStatus(codes.Error, "rate limiter")
		return nil, networkError(fmt.Errorf("rate limit wait: %w", err))
	}

	var (
		env    *envelope
		status int
	)
	attempt := func(int) error {
		return c.breaker.Run(func() error {
			var err error
			env, status, err = c.roundTrip(ctx, cl, token)
			return err
		})
	}

	var err error
	if cl.method == http.MethodGet {
		err = retry.Do(ctx, c.retryCfg, attempt)
	} else {
		err = attempt(1)
	}
	span.SetAttributes(attribute.Int("http.status_code", status))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		logging.WithRequestID(ctx, slog.Default()).Warn("content api call failed",
			slog.String("resource", cl.resource),
			slog.String("method", cl.method),
			slog.Int("status", status),
			slog.Any("error", err))

		if circuitbreaker.IsRejection(err) {
			return nil, &Error{Kind: KindNetwork, Message: UnavailableMessage, Err: err}
		}
		var statusErr *retry.StatusError
		if errors.As(err, &statusErr) && env != nil {
			apiErr := env.toError(statusErr.Status)
			apiErr.Err = err
			return nil, apiErr
		}
		return nil, networkError(err)
	}

	if !env.Success {
		return nil, env.toError(status)
	}
	return env, nil
}

// roundTrip performs one HTTP exchange. It returns an error only for
// failures worth counting against the breaker: transport errors,
// unreadable bodies and retryable statuses.
func (c *Client) roundTrip(ctx context.Context, cl call, token string) (*envelope, int, error) {
	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+"/"+cl.path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		if c.authScheme != "" {
			token = c.authScheme + " " + token
		}
		req.Header.Set("Authorization", token)
	}
	if reqID := requestid.FromContext(ctx); reqID != "" {
		req.Header.Set(requestid.RequestIDHeader, reqID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordUpstreamCall(cl.resource, cl.method, 0, time.Since(start))
		return nil, 0, fmt.Errorf("upstream request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	recordUpstreamCall(cl.resource, cl.method, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if retryableStatus(resp.StatusCode) {
			return nil, resp.StatusCode, &retry.StatusError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, resp.StatusCode, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if retryableStatus(resp.StatusCode) {
		return &env, resp.StatusCode, &retry.StatusError{Status: resp.StatusCode, Message: env.message()}
	}
	return &env, resp.StatusCode, nil
}

func retryableStatus(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}

// read fetches path through the tag cache and decodes data into dst.
// The tag version is taken before the fetch, so a response that races a
// mutation's invalidation is not cached.
func (c *Client) read(ctx context.Context, resource, tag, path string, dst any) error {
	key := "GET " + path
	version, verr := c.cache.Version(ctx, tag)
	if verr != nil {
		logging.WithRequestID(ctx, slog.Default()).Warn("cache read failed",
			slog.String("tag", tag), slog.Any("error", verr))
	} else if data, err := c.cache.Get(ctx, tag, key); err == nil {
		if err := json.Unmarshal(data, dst); err == nil {
			return nil
		}
	} else if !errors.Is(err, tagcache.ErrMiss) {
		logging.WithRequestID(ctx, slog.Default()).Warn("cache read failed",
			slog.String("tag", tag), slog.Any("error", err))
	}

	env, err := c.send(ctx, call{resource: resource, method: http.MethodGet, path: path})
	if err != nil {
		return err
	}
	if err := decodeData(env, dst); err != nil {
		return err
	}

	if verr != nil {
		return nil
	}
	if err := c.cache.Set(ctx, tag, key, version, env.Data, c.cacheTTL); err != nil {
		logging.WithRequestID(ctx, slog.Default()).Warn("cache write failed",
			slog.String("tag", tag), slog.Any("error", err))
	}
	return nil
}

// mutate sends an authenticated write and invalidates tag on success.
// dst may be nil when the response data is not needed.
func (c *Client) mutate(ctx context.Context, resource, tag, method, path string, body, dst any) error {
	env, err := c.send(ctx, call{resource: resource, method: method, path: path, body: body, auth: true})
	if err != nil {
		return err
	}

	if err := c.cache.Invalidate(ctx, tag); err != nil {
		logging.WithRequestID(ctx, slog.Default()).Error("cache invalidation failed",
			slog.String("tag", tag), slog.Any("error", err))
	}

	if dst == nil || !hasData(env) {
		return nil
	}
	return decodeData(env, dst)
}

func hasData(env *envelope) bool {
	d := bytes.TrimSpace(env.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

func decodeData(env *envelope, dst any) error {
	if !hasData(env) {
		return &Error{Kind: KindNotFound, Message: "Not found", Status: http.StatusOK}
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return networkError(fmt.Errorf("decode data: %w", err))
	}
	return nil
}
