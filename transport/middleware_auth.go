package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/kariago/kariago-backend/application/auth"
	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/utils/errors"
)

// AuthMiddleware returns a middleware that validates bearer tokens on the
// protected user surface. Signature and expiry checks are self-contained,
// no store lookup per request.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtectedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			userID, err := authApp.VerifyToken(token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID into context
			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isProtectedPath limits the token requirement to the user resource; the
// signup/login/reset flows stay public, as do the other resources.
func isProtectedPath(path string) bool {
	path = strings.TrimSuffix(path, "/")
	if !strings.HasPrefix(path, "/api/users") {
		return false
	}
	switch path {
	case "/api/users/signup", "/api/users/login",
		"/api/users/forgot-password", "/api/users/reset-password":
		return false
	}
	return true
}
