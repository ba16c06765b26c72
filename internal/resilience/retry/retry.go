// Package retry repeats content API reads that failed for a transient
// reason, waiting a little longer before each new attempt.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"syscall"
	"time"

	"portfolio-dashboard/internal/observability/logging"
)

// Config describes how often and how patiently to retry.
type Config struct {
	// MaxAttempts counts the first call too; 1 disables retrying.
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// Multiplier grows the delay after every failure. Values below 1 keep it flat.
	Multiplier float64
	// JitterFraction adds up to this share of the delay at random, clamped to [0, 1].
	JitterFraction float64
}

// UpstreamReadConfig keeps retries short: an admin is waiting for the page.
func UpstreamReadConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   200 * time.Millisecond,
		MaxDelay:       2 * time.Second,
		Multiplier:     2,
		JitterFraction: 0.1,
	}
}

// Delay is the wait after the given failed attempt (1-based).
func (c Config) Delay(attempt int) time.Duration {
	factor := c.Multiplier
	if factor < 1 {
		factor = 1
	}
	d := float64(c.InitialDelay) * math.Pow(factor, float64(attempt-1))
	if c.MaxDelay > 0 && d > float64(c.MaxDelay) {
		d = float64(c.MaxDelay)
	}
	return jitter(time.Duration(d), c.JitterFraction)
}

// StatusError reports an upstream status that may succeed on a later try.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

// Do calls fn until it succeeds, fails permanently or runs out of attempts.
// fn receives the 1-based attempt number. A permanent error is returned as
// is; exhausting the attempts wraps the last error.
func Do(ctx context.Context, cfg Config, fn func(attempt int) error) error {
	logger := logging.FromContext(ctx)
	for attempt := 1; ; attempt++ {
		err := fn(attempt)
		if err == nil || !Transient(err) {
			return err
		}
		if attempt >= cfg.MaxAttempts {
			return fmt.Errorf("gave up after %d attempts: %w", attempt, err)
		}

		wait := cfg.Delay(attempt)
		logger.Debug("retrying content api call",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.Any("error", err))

		t := time.NewTimer(wait)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}
	}
}

// Transient reports whether err is worth another attempt: timeouts,
// refused or reset connections, 5xx, 408 and 429. Cancellation never is.
func Transient(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ETIMEDOUT),
		errors.Is(err, syscall.ENETUNREACH):
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status >= http.StatusInternalServerError ||
			se.Status == http.StatusTooManyRequests ||
			se.Status == http.StatusRequestTimeout
	}
	return false
}

func jitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 || d <= 0 {
		return d
	}
	fraction = min(fraction, 1)
	// #nosec G404 -- spreading retries needs no cryptographic randomness.
	return d + time.Duration(rand.Float64()*fraction*float64(d))
}
