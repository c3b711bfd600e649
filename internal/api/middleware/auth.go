package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/auth"
)

const msgAuthRequired = "требуется аутентификация"

type contextKey struct{}

var claimsKey contextKey

// TokenValidator интерфейс проверки сессионных токенов
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer токен и кладет claims в контекст запроса
func Auth(validator TokenValidator, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				log.Warn("Auth: missing bearer token, path=%s", r.URL.Path)
				handlers.RespondForbidden(w, msgAuthRequired)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				log.Warn("Auth: invalid token, path=%s: %v", r.URL.Path, err)
				handlers.RespondForbidden(w, msgAuthRequired)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext достает claims сессии из контекста запроса
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// WithClaims кладет claims в контекст; используется в тестах handlers
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
