package routing

import (
	"context"
	"net/http"

	"github.com/zeptools/medoc/responses"
	"github.com/zeptools/medoc/sec"
	"go.uber.org/zap"
)

type TokenVerifier interface {
	Verify(signedToken string) (*sec.Claims, error)
}

// BearerAuthWrapper rejects requests without a valid bearer token and stores
// the verified claims in the request context.
type BearerAuthWrapper struct {
	Verifier TokenVerifier
	Log      *zap.Logger
}

func (a *BearerAuthWrapper) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sec.ExtractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="medoc"`)
			responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		claims, err := a.Verifier.Verify(token)
		if err != nil {
			if a.Log != nil {
				a.Log.Info("token rejected", zap.String("requestID", RequestIDFrom(r.Context())), zap.Error(err))
			}
			w.Header().Set("WWW-Authenticate", `Bearer realm="medoc", error="invalid_token"`)
			responses.WriteSimpleErrorJSON(w, http.StatusUnauthorized, "invalid bearer token")
			return
		}
		inner.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

func ClaimsFrom(ctx context.Context) (*sec.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*sec.Claims)
	return claims, ok
}
