package http

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-dashboard/internal/handler/http/requestid"
	"portfolio-dashboard/internal/infra/restapi"
	"portfolio-dashboard/internal/observability/logging"
	"portfolio-dashboard/pkg/security/csp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ───────── Logging ───────── */

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/projects/create-project?x=1", nil)
	req.Header.Set(requestid.RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"msg":"request completed"`)
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"bytes":7`)
	assert.Contains(t, out, `"query":"x=1"`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestLogging_ServerErrorLogsAtError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/skills", nil))

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestLogging_RequestLoggerOnContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("inside handler")
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.RequestIDHeader, "req-7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	first, _, _ := strings.Cut(buf.String(), "\n")
	assert.Contains(t, first, `"msg":"inside handler"`)
	assert.Contains(t, first, `"request_id":"req-7"`)
}

/* ───────── Recover ───────── */

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	for name, value := range map[string]any{
		"string": "boom",
		"error":  errors.New("token eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig leaked"),
		"number": 42,
	} {
		t.Run(name, func(t *testing.T) {
			buf.Reset()
			h := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(value)
			}))
			rr := httptest.NewRecorder()

			require.NotPanics(t, func() {
				h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			})
			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Contains(t, rr.Body.String(), restapi.GenericMessage)
			assert.Contains(t, buf.String(), "panic recovered")
			assert.NotContains(t, buf.String(), "eyJzdWIiOiIxIn0")
		})
	}
}

func TestRecover_AfterHeaderWritten(t *testing.T) {
	h := Recover(slog.New(slog.NewTextHandler(io.Discard, nil)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("partial"))
		panic("late")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "partial", rr.Body.String())
}

func TestRecover_AbortHandlerRepanics(t *testing.T) {
	h := Recover(slog.New(slog.NewTextHandler(io.Discard, nil)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

/* ───────── request limits ───────── */

func TestLimitRequestBody(t *testing.T) {
	h := LimitRequestBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, "too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("definitely too large")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestInputValidation(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := InputValidation()(ok)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/"+strings.Repeat("a", maxPathLength), nil))
	assert.Equal(t, http.StatusRequestURITooLong, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", "accessToken="+strings.Repeat("x", maxCookieHeader))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusRequestHeaderFieldsTooLarge, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/projects", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

/* ───────── SecurityHeaders ───────── */

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(csp.DashboardPolicy())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "same-origin", rr.Header().Get("Referrer-Policy"))
}

func TestSecurityHeaders_ReportOnly(t *testing.T) {
	h := SecurityHeaders(csp.DashboardPolicy().ReportOnly(true))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy-Report-Only"))
}
