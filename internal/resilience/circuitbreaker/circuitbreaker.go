// Package circuitbreaker stops calling the content API while it keeps
// failing, on top of github.com/sony/gobreaker.
package circuitbreaker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker"
)

var stateGauge = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "content_api_circuit_state",
		Help: "Content API circuit state: 0 closed, 1 half-open, 2 open.",
	},
	[]string{"circuit"},
)

// Config tunes a CircuitBreaker.
type Config struct {
	Name string
	// MaxRequests may pass while half-open.
	MaxRequests uint32
	// Interval clears the counts while closed.
	Interval time.Duration
	// Timeout is how long the circuit stays open before letting a probe through.
	Timeout time.Duration
	// FailureThreshold is the failure ratio that opens the circuit once
	// at least MinRequests calls were counted.
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultConfig returns conservative settings under name.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          time.Minute,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// UpstreamConfig reopens quickly: an admin is usually retrying by hand.
func UpstreamConfig() Config {
	cfg := DefaultConfig("content-api")
	cfg.MaxRequests = 2
	cfg.Timeout = 15 * time.Second
	return cfg
}

func (c Config) tripped(counts gobreaker.Counts) bool {
	if counts.Requests < c.MinRequests {
		return false
	}
	return float64(counts.TotalFailures) >= c.FailureThreshold*float64(counts.Requests)
}

// CircuitBreaker guards one upstream.
type CircuitBreaker struct {
	cb *gobreaker.CircuitBreaker
}

// New builds a closed breaker and publishes its state gauge.
func New(cfg Config) *CircuitBreaker {
	stateGauge.WithLabelValues(cfg.Name).Set(float64(gobreaker.StateClosed))
	return &CircuitBreaker{cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:          cfg.Name,
		MaxRequests:   cfg.MaxRequests,
		Interval:      cfg.Interval,
		Timeout:       cfg.Timeout,
		ReadyToTrip:   cfg.tripped,
		IsSuccessful:  countsAsSuccess,
		OnStateChange: report,
	})}
}

// countsAsSuccess keeps an admin abandoning a page from counting against the API.
func countsAsSuccess(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

func report(name string, from, to gobreaker.State) {
	slog.Warn("content api circuit changed state",
		slog.String("circuit", name),
		slog.String("from", from.String()),
		slog.String("to", to.String()))
	stateGauge.WithLabelValues(name).Set(float64(to))
}

// Run calls fn unless the circuit is open. fn's error is returned unchanged.
func (c *CircuitBreaker) Run(fn func() error) error {
	_, err := c.cb.Execute(func() (any, error) { return nil, fn() })
	return err
}

// State is the current gobreaker state.
func (c *CircuitBreaker) State() gobreaker.State { return c.cb.State() }

// IsOpen reports whether calls are currently rejected.
func (c *CircuitBreaker) IsOpen() bool { return c.State() == gobreaker.StateOpen }

// IsRejection reports whether err came from the breaker rather than the call.
func IsRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
