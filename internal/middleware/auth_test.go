package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/espresso-idling-bridge/internal/auth"
)

// TestRequireAuthMiddleware Проверяет middleware авторизации по Bearer токену.
func TestRequireAuthMiddleware(t *testing.T) {
	const secret = "test-secret"

	builder := auth.NewJWTTokenBuilder()
	validToken, err := builder.BuildJWTToken("ci-runner", secret, time.Hour)
	require.NoError(t, err)

	otherToken, err := builder.BuildJWTToken("ci-runner", "other-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		secret         string
		header         string
		wantStatus     int
		wantNextCalled bool
		wantSubject    string
	}{
		{
			name:           "авторизация отключена",
			secret:         "",
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "корректный токен",
			secret:         secret,
			header:         "Bearer " + validToken,
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
			wantSubject:    "ci-runner",
		},
		{
			name:       "заголовок отсутствует",
			secret:     secret,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "не Bearer схема",
			secret:     secret,
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "пустой токен",
			secret:     secret,
			header:     "Bearer   ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "токен подписан другим ключом",
			secret:     secret,
			header:     "Bearer " + otherToken,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotSubject string

			handler := RequireAuthMiddleware(tt.secret, builder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotSubject = GetSubject(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/idling-resources", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			assert.Equal(t, tt.wantSubject, gotSubject)
		})
	}
}
