package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/trsv-dev/espresso-idling-bridge/internal/contextkeys"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware Берёт идентификатор запроса из заголовка X-Request-ID или генерирует новый
// и кладёт его в контекст и в заголовок ответа.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), contextkeys.RequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID Идентификатор запроса из контекста или пустая строка.
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(contextkeys.RequestID).(string)
	return requestID
}
