package routing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/zeptools/medoc/metrics"
	"github.com/zeptools/medoc/requests"
	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// AccessLogWrapper logs one line per request and feeds the HTTP collectors.
// Metrics may be nil.
type AccessLogWrapper struct {
	Log     *zap.Logger
	Metrics *metrics.Collector
}

func (a *AccessLogWrapper) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		if a.Metrics != nil {
			a.Metrics.InFlightGauge.Inc()
			defer a.Metrics.InFlightGauge.Dec()
		}

		inner.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(started)
		if a.Metrics != nil {
			a.Metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			a.Metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
		}
		if a.Log != nil {
			a.Log.Info("request",
				zap.String("requestID", RequestIDFrom(r.Context())),
				zap.String("method", r.Method),
				zap.String("url", requests.FullURL(r)),
				zap.String("route", route),
				zap.Int("status", rec.status),
				zap.Int("bytes", rec.bytes),
				zap.Duration("elapsed", elapsed),
				zap.String("clientIP", requests.GetClientIP(r)))
		}
	})
}
