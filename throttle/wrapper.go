package throttle

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/zeptools/medoc/requests"
	"github.com/zeptools/medoc/responses"
)

// ClientIPWrapper limits requests per client IP with the buckets of Group.
type ClientIPWrapper struct {
	Store    *BucketStore[string]
	Group    string
	Now      func() time.Time
	OnReject func(r *http.Request)
}

func (t *ClientIPWrapper) Wrap(inner http.Handler) http.Handler {
	now := t.Now
	if now == nil {
		now = time.Now
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := requests.GetClientIP(r)
		ts := now()
		if t.Store.Allow(t.Group, ip, ts) {
			inner.ServeHTTP(w, r)
			return
		}
		if t.OnReject != nil {
			t.OnReject(r)
		}
		if b, ok := t.Store.GetBucket(t.Group, ip); ok {
			secs := math.Ceil(b.RetryAfter(ts).Seconds())
			w.Header().Set("Retry-After", strconv.Itoa(max(1, int(secs))))
		}
		responses.WriteSimpleErrorJSON(w, http.StatusTooManyRequests, "too many requests")
	})
}
