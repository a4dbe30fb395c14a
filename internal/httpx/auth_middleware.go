package httpx

import (
	"net/http"
	"strings"

	"shelfapi/internal/platform/crypto"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the token's user in the request context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				Unauthorized(w, r)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				Unauthorized(w, r)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.UserID, claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
