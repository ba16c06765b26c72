// Package probe checks the dashboard's dependencies in the background and
// keeps the result for the readiness endpoint.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"portfolio-dashboard/internal/infra/restapi"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Check confirms one dependency answers.
type Check func(ctx context.Context) error

// Ping lets a Check serve as a health-endpoint pinger.
func (c Check) Ping(ctx context.Context) error { return c(ctx) }

// APICheck reads path from the content API. Any answer below 500 counts,
// including 401 and 404: the API is reachable, which is all readiness needs.
func APICheck(c *restapi.Client, path string) Check {
	return func(ctx context.Context) error {
		err := c.Ping(ctx, path)
		if err == nil {
			return nil
		}
		var apiErr *restapi.Error
		if errors.As(err, &apiErr) && apiErr.Kind != restapi.KindNetwork && apiErr.Status < http.StatusInternalServerError {
			return nil
		}
		return err
	}
}

// Config tunes a Probe.
type Config struct {
	// Timeout bounds one run across all checks.
	Timeout time.Duration
	// FailureThreshold is how many consecutive failed runs flip the probe
	// to not ready. A single success flips it back.
	FailureThreshold int
}

// Probe runs named checks and remembers the outcome.
type Probe struct {
	cfg    Config
	names  []string
	checks map[string]Check
	logger *slog.Logger
	now    func() time.Time

	mu        sync.RWMutex
	ready     bool
	failures  int
	lastErr   error
	checkedAt time.Time
}

// New creates a probe that is not ready until its first successful run.
func New(cfg Config, logger *slog.Logger) *Probe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = 2
	}
	return &Probe{
		cfg:    cfg,
		checks: make(map[string]Check),
		logger: logger,
		now:    time.Now,
	}
}

// Add registers a check. Not safe to call after Run has started.
func (p *Probe) Add(name string, c Check) *Probe {
	if _, dup := p.checks[name]; !dup {
		p.names = append(p.names, name)
	}
	p.checks[name] = c
	return p
}

// Run executes every check concurrently and records the combined result.
func (p *Probe) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range p.names {
		check := p.checks[name]
		g.Go(func() error {
			if err := check(gctx); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	err := g.Wait()
	observeRun(err == nil, time.Since(start))

	p.mu.Lock()
	defer p.mu.Unlock()
	p.checkedAt = p.now()
	p.lastErr = err
	was := p.ready
	if err == nil {
		p.failures = 0
		p.ready = true
	} else {
		p.failures++
		if p.failures >= p.cfg.FailureThreshold {
			p.ready = false
		}
	}
	setReady(p.ready)

	if was != p.ready {
		p.logger.Info("readiness changed", slog.Bool("ready", p.ready))
	}
	if err != nil {
		p.logger.Warn("probe failed",
			slog.Int("consecutive_failures", p.failures),
			slog.Any("error", err))
	}
	return err
}

// Schedule registers Run on spec (standard five-field cron) without
// starting the scheduler.
func (p *Probe) Schedule(spec string, loc *time.Location) (*cron.Cron, error) {
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(spec, func() { _ = p.Run(context.Background()) }); err != nil {
		return nil, fmt.Errorf("schedule probe %q: %w", spec, err)
	}
	return c, nil
}

// Ready reports the current readiness.
func (p *Probe) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ready
}

// LastError returns the error of the latest run, nil after a success.
func (p *Probe) LastError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

// CheckedAt returns when the latest run finished; zero before the first.
func (p *Probe) CheckedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.checkedAt
}
