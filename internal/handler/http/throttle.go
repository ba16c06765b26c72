package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ThrottleMessage is shown when a client submits the login form too often.
const ThrottleMessage = "Too many login attempts. Please wait a moment and try again."

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginThrottle limits POSTs per client IP. Other methods pass through so
// the login page itself always renders.
type LoginThrottle struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    rate.Limit
	burst    int
	now      func() time.Time
}

// NewLoginThrottle allows burst attempts, refilled at one per interval.
func NewLoginThrottle(interval time.Duration, burst int) *LoginThrottle {
	return &LoginThrottle{
		visitors: make(map[string]*visitor),
		every:    rate.Every(interval),
		burst:    burst,
		now:      time.Now,
	}
}

func (t *LoginThrottle) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	v, ok := t.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(t.every, t.burst)}
		t.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Limit wraps the login handler.
func (t *LoginThrottle) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && !t.allow(extractIP(r)) {
			slog.Warn("login throttled", slog.String("ip", extractIP(r)))
			w.Header().Set("Retry-After", "60")
			http.Error(w, ThrottleMessage, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Sweep forgets clients idle for longer than maxIdle and returns how many
// were removed.
func (t *LoginThrottle) Sweep(maxIdle time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-maxIdle)
	removed := 0
	for ip, v := range t.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(t.visitors, ip)
			removed++
		}
	}
	return removed
}

// StartCleanup sweeps every interval until ctx is canceled.
func (t *LoginThrottle) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := t.Sweep(2 * interval); n > 0 {
				slog.Debug("login throttle swept", slog.Int("removed", n))
			}
		}
	}
}

// extractIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the connection address.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
