package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"modbot/internal/token"
)

// TokenValidator validates ops access tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*token.Claims, error)
}

type contextKeyOperator struct{}

// ContextKeyOperator is exported for use in handlers.
var ContextKeyOperator = contextKeyOperator{}

// GetOperator retrieves the authenticated operator from the context.
func GetOperator(ctx context.Context) string {
	operator, ok := ctx.Value(ContextKeyOperator).(string)
	if !ok {
		return ""
	}
	return operator
}

// RequireAuth rejects requests without a valid bearer token and stores the
// operator identity on the request context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			raw, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(raw)
			if err != nil {
				logger.DebugContext(r.Context(), "ops token rejected", "error", err)
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyOperator, claims.Operator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
