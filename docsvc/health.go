package docsvc

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/zeptools/medoc/responses"
)

// Pinger is satisfied by the sql and kv clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler answers 200 when every dependency pings within timeout,
// 503 otherwise. Check errors are reported by name only.
func HealthHandler(deps map[string]Pinger, timeout time.Duration) http.HandlerFunc {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		report := healthReport{Status: "ok", Checks: map[string]string{}}
		for _, name := range names {
			if err := deps[name].Ping(ctx); err != nil {
				report.Status = "degraded"
				report.Checks[name] = "down"
				continue
			}
			report.Checks[name] = "up"
		}
		status := http.StatusOK
		if report.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		responses.EncodeWriteJSON(w, status, report)
	}
}
