package middleware

import (
	"net/http"
	"strings"

	"remarket/internal/data/repository"
	"remarket/internal/usecase"
	"remarket/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the bearer token on protected routes. A missing
// credential is 401, an invalid or expired one is 403. The verified
// email is placed on the request context.
func AuthJWT(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := usecase.VerifyToken(parts[1], secret)
			if err != nil {
				logger.Warn("Invalid or expired token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetEmailContext(r.Context(), claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin allows only users whose stored status is Admin. It must run
// after AuthJWT.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := utils.GetEmailFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByEmail(r.Context(), email)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err),
					zap.String("email", email),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("email", email),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
