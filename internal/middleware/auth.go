package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/trsv-dev/espresso-idling-bridge/internal/api/response"
	"github.com/trsv-dev/espresso-idling-bridge/internal/auth"
	"github.com/trsv-dev/espresso-idling-bridge/internal/contextkeys"
	"github.com/trsv-dev/espresso-idling-bridge/internal/logger"
)

// RequireAuthMiddleware Проверяет JWT-токен из заголовка Authorization: Bearer <token>
// и кладёт subject токена в контекст запроса. Пустой JWTSecretKey отключает проверку.
func RequireAuthMiddleware(JWTSecretKey string, tokenBuilder auth.TokenBuilder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if JWTSecretKey == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(tokenString) == "" {
				logger.Log.Warn("Запрос без токена",
					logger.String("request_id", GetRequestID(r.Context())),
					logger.String("uri", r.RequestURI))
				response.ErrorJSON(w, http.StatusUnauthorized, "Требуется авторизация")
				return
			}

			claims, err := tokenBuilder.GetClaims(strings.TrimSpace(tokenString), JWTSecretKey)
			if err != nil {
				logger.Log.Warn("Недействительный токен",
					logger.String("request_id", GetRequestID(r.Context())),
					logger.String("err", err.Error()))
				response.ErrorJSON(w, http.StatusUnauthorized, "Недействительный токен")
				return
			}

			ctx := context.WithValue(r.Context(), contextkeys.Subject, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject Subject токена из контекста или пустая строка.
func GetSubject(ctx context.Context) string {
	subject, _ := ctx.Value(contextkeys.Subject).(string)
	return subject
}
