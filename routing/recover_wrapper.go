package routing

import (
	"net/http"
	"runtime/debug"

	"github.com/zeptools/medoc/responses"
	"go.uber.org/zap"
)

func RecoverWrapper(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				zap.L().Named("routing").Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("requestID", RequestIDFrom(r.Context())),
					zap.ByteString("stack", debug.Stack()))
				responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		inner.ServeHTTP(w, r)
	})
}
