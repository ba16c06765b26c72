package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"portfolio-dashboard/internal/config"
	"portfolio-dashboard/internal/domain/entity"
	"portfolio-dashboard/internal/infra/probe"
	"portfolio-dashboard/internal/infra/restapi"
	"portfolio-dashboard/internal/infra/tagcache"
	"portfolio-dashboard/internal/observability/tracing"
	"portfolio-dashboard/internal/session"
	"portfolio-dashboard/internal/usecase/auth"
	"portfolio-dashboard/internal/usecase/dashboard"
	"portfolio-dashboard/internal/usecase/resource"
	"portfolio-dashboard/internal/web"
	"portfolio-dashboard/pkg/security/csp"

	hhttp "portfolio-dashboard/internal/handler/http"
	"portfolio-dashboard/internal/handler/http/csrf"
	"portfolio-dashboard/internal/handler/http/guard"
	"portfolio-dashboard/internal/handler/http/requestid"
	"portfolio-dashboard/internal/handler/http/screen"
)

const maxBodyBytes = 1 << 20

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			shutdownTracing := tracing.Setup()
			defer func() {
				if err := shutdownTracing(context.Background()); err != nil {
					logger.Warn("tracer shutdown failed", slog.Any("error", err))
				}
			}()

			components, err := setupServer(logger, cfg)
			if err != nil {
				return err
			}
			return runServer(logger, cfg, components)
		},
	}
}

// ServerComponents holds everything runServer starts and stops.
type ServerComponents struct {
	Handler   http.Handler
	Scheduler *cron.Cron
	Probe     *probe.Probe
	Throttle  *hhttp.LoginThrottle
	Cache     tagcache.Store
}

// setupServer builds the whole object graph without starting anything.
func setupServer(logger *slog.Logger, cfg *config.Config) (*ServerComponents, error) {
	cache, err := newCache(cfg)
	if err != nil {
		return nil, err
	}
	client := newAPIClient(cfg, cache)

	p := newProbe(cfg, client, cache, logger)
	scheduler, err := p.Schedule(cfg.Probe.Schedule, cfg.ProbeLocation())
	if err != nil {
		return nil, err
	}

	throttle := hhttp.NewLoginThrottle(cfg.LoginThrottle.Interval, cfg.LoginThrottle.Burst)
	sessions := session.NewAccessor(session.DefaultCookieName, cfg.CookieSecure)

	mux, err := setupRoutes(logger, cfg, client, cache, p, sessions, throttle)
	if err != nil {
		return nil, err
	}

	return &ServerComponents{
		Handler:   applyMiddleware(logger, cfg, sessions, mux),
		Scheduler: scheduler,
		Probe:     p,
		Throttle:  throttle,
		Cache:     cache,
	}, nil
}

func newCache(cfg *config.Config) (tagcache.Store, error) {
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		return tagcache.NewRedis(rdb), nil
	case config.CacheMemory, "":
		return tagcache.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func newAPIClient(cfg *config.Config, cache tagcache.Store) *restapi.Client {
	apiCfg := restapi.DefaultConfig(cfg.API.BaseURL)
	apiCfg.AuthScheme = cfg.API.AuthScheme
	apiCfg.Timeout = cfg.API.Timeout
	apiCfg.CacheTTL = cfg.Cache.TTL
	apiCfg.RequestsPerSecond = cfg.API.RateLimit
	apiCfg.Burst = cfg.API.Burst
	return restapi.NewClient(apiCfg, cache)
}

func newProbe(cfg *config.Config, client *restapi.Client, cache tagcache.Store, logger *slog.Logger) *probe.Probe {
	return probe.New(probe.Config{Timeout: cfg.Probe.Timeout}, logger).
		Add("content_api", probe.APICheck(client, cfg.Probe.Path)).
		Add("cache", probe.Check(cache.Ping))
}

// setupRoutes mounts the operational endpoints and every screen.
func setupRoutes(
	logger *slog.Logger,
	cfg *config.Config,
	client *restapi.Client,
	cache tagcache.Store,
	p *probe.Probe,
	sessions *session.Accessor,
	throttle *hhttp.LoginThrottle,
) (*http.ServeMux, error) {
	renderer, err := screen.NewRenderer(web.Templates(), cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	d := screen.Deps{
		Render: renderer,
		Logger: logger,
		Hooks:  screen.Hooks{Mutation: hhttp.RecordMutation},
	}

	projects := screen.Projects(resource.NewService("project",
		restapi.NewResource[entity.Project](client, "projects", "PROJECT"), (*entity.Project).Validate))
	skills := screen.Skills(resource.NewService("skill",
		restapi.NewResource[entity.Skill](client, "skills", "SKILL"), (*entity.Skill).Validate))
	blogs := screen.Blogs(resource.NewService("blog",
		restapi.NewResource[entity.Blog](client, "blogs", "BLOG"), (*entity.Blog).Validate))
	contacts := screen.Contacts(resource.NewReadOnlyService[entity.Contact]("contact",
		restapi.NewResource[entity.Contact](client, "contacts", "CONTACT")))

	mux := http.NewServeMux()

	// Operational endpoints; the guard lets these through.
	mux.Handle("GET /health", &hhttp.HealthHandler{
		API:         probe.APICheck(client, cfg.Probe.Path),
		Cache:       cache,
		BreakerOpen: client.BreakerOpen,
		Version:     cfg.Version,
		Timeout:     cfg.Probe.Timeout,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Probe: p})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	screen.Register(mux, projects, d)
	screen.Register(mux, skills, d)
	screen.Register(mux, blogs, d)
	screen.Register(mux, contacts, d)

	screen.RegisterAuth(mux,
		screen.LoginHandler{
			Auth:     auth.NewService(restapi.NewAuth(client)),
			Sessions: sessions,
			Deps:     d,
			Result:   hhttp.RecordLogin,
		},
		screen.LogoutHandler{Sessions: sessions},
		screen.HomeHandler{Deps: d, Sources: []dashboard.Source{
			{Name: projects.Title, Href: projects.Base(), Counter: projects.Service},
			{Name: skills.Title, Href: skills.Base(), Counter: skills.Service},
			{Name: blogs.Title, Href: blogs.Base(), Counter: blogs.Service},
			{Name: contacts.Title, Href: contacts.Base(), Counter: contacts.Service},
		}},
		throttle.Limit,
	)
	mux.Handle("/", screen.NotFound(d))

	logger.Info("routes registered",
		slog.String("api", client.BaseURL()),
		slog.String("cache", cfg.Cache.Backend))
	return mux, nil
}

// applyMiddleware wraps the mux. Outermost first:
//  1. Request ID
//  2. Recovery
//  3. Logging
//  4. Input validation and body size limit
//  5. Security headers (CSP)
//  6. Tracing
//  7. Metrics
//  8. Route guard (session)
//  9. CSRF
func applyMiddleware(logger *slog.Logger, cfg *config.Config, sessions *session.Accessor, handler http.Handler) http.Handler {
	g := guard.New(sessions, cfg.LoginURL, logger)
	g.Public = append(slices.Clone(guard.DefaultPublic), cfg.PublicPaths...)
	g.OnRedirect = hhttp.RecordGuardRedirect
	protector := csrf.New(cfg.CookieSecure, logger)

	chain := handler
	chain = protector.Middleware(chain)
	chain = g.Middleware(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.SecurityHeaders(csp.DashboardPolicy())(chain)
	chain = hhttp.LimitRequestBody(maxBodyBytes)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and the background jobs, and blocks until
// SIGINT or SIGTERM.
func runServer(logger *slog.Logger, cfg *config.Config, c *ServerComponents) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go c.Throttle.StartCleanup(ctx, time.Minute)

	// First probe right away so /ready does not wait for the schedule.
	go func() { _ = c.Probe.Run(ctx) }()
	c.Scheduler.Start()
	logger.Info("readiness probe scheduled", slog.String("schedule", cfg.Probe.Schedule))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           c.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.ListenAddr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			logger.Error("server failed", slog.Any("error", err))
			return err
		}
	case <-quit:
		logger.Info("shutting down server...")
	}

	<-c.Scheduler.Stop().Done()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
