package routing

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeptools/medoc/metrics"
	"github.com/zeptools/medoc/sec"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type tagWrapper struct {
	tag   string
	trace *[]string
}

func (t tagWrapper) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*t.trace = append(*t.trace, t.tag)
		inner.ServeHTTP(w, r)
	})
}

func TestGroupWrapperOrder(t *testing.T) {
	var trace []string
	router := NewBaseRouter()
	router.Group("/api/", func(api *RouteGroup) {
		api.Group("v1/", func(v1 *RouteGroup) {
			v1.HandleFunc("GET ping", func(w http.ResponseWriter, _ *http.Request) {
				trace = append(trace, "handler")
				w.WriteHeader(http.StatusNoContent)
			}, tagWrapper{"route", &trace})
		}, tagWrapper{"v1", &trace})
	}, tagWrapper{"api", &trace})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"api", "v1", "route", "handler"}, trace)
}

func TestGroupRejectsDoubleSlash(t *testing.T) {
	router := NewBaseRouter()
	assert.Panics(t, func() {
		router.Group("/api/", func(api *RouteGroup) {
			api.HandleFunc("GET /x", func(http.ResponseWriter, *http.Request) {})
		})
	})
}

func TestRecoverWrapper(t *testing.T) {
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("negative advance")
	}), WrapperFunc(RecoverWrapper))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestRequestIDWrapper(t *testing.T) {
	var seen string
	h := RequestIDWrapper(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-1", seen)

	req.Header.Set(RequestIDHeader, strings.Repeat("x", 65))
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Len(t, seen, 36)
}

func TestAccessLogWrapper(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	collector := metrics.NewCollector("medoc", prometheus.NewRegistry())

	router := NewBaseRouter()
	router.HandleFunc("GET /docs/{number}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hi"))
	}, &AccessLogWrapper{Log: zap.New(core), Metrics: collector})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/1", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET /docs/{number}", fields["route"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, 2, fields["bytes"])
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.RequestsTotal.WithLabelValues("GET", "GET /docs/{number}", "418")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.InFlightGauge))
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (*sec.Claims, error) {
	if token == "good" {
		return &sec.Claims{Subject: "dr-7"}, nil
	}
	return nil, errors.New("bad signature")
}

func TestBearerAuthWrapper(t *testing.T) {
	var subject string
	h := (&BearerAuthWrapper{Verifier: fakeVerifier{}}).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		require.True(t, ok)
		subject = claims.Subject
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic Zm9v", http.StatusUnauthorized},
		{"invalid", "Bearer bad", http.StatusUnauthorized},
		{"valid", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
			}
		})
	}
	assert.Equal(t, "dr-7", subject)
}
