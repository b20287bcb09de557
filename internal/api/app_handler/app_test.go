package app_handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/trsv-dev/espresso-idling-bridge/internal/auth"
	"github.com/trsv-dev/espresso-idling-bridge/internal/broadcast"
	broadcastMocks "github.com/trsv-dev/espresso-idling-bridge/internal/broadcast/mocks"
)

// TestNewAppHandler Проверяет заполнение зависимостей.
func TestNewAppHandler(t *testing.T) {
	builder := auth.NewJWTTokenBuilder()
	broadcaster := broadcast.NewNoopAdapter()

	h := NewAppHandler("secret", builder, broadcaster)

	assert.Equal(t, "secret", h.JWTSecretKey)
	assert.Same(t, builder, h.TokenBuilder)
	assert.Same(t, broadcaster, h.Broadcaster)
}

// TestEvents Проверяет что запрос передаётся в HTTP обработчик broadcaster.
func TestEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcaster := broadcastMocks.NewMockBroadcaster(ctrl)
	broadcaster.EXPECT().HTTPHandler().Return(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, broadcast.StatusTopic, r.URL.Query().Get("stream"))
		w.WriteHeader(http.StatusTeapot)
	}))

	h := NewAppHandler("", auth.NewJWTTokenBuilder(), broadcaster)

	rec := httptest.NewRecorder()
	h.Events(rec, httptest.NewRequest(http.MethodGet, "/api/events?stream=status", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

// TestEventsNoop Проверяет ответ в режиме без событий.
func TestEventsNoop(t *testing.T) {
	h := NewAppHandler("", auth.NewJWTTokenBuilder(), broadcast.NewNoopAdapter())

	rec := httptest.NewRecorder()
	h.Events(rec, httptest.NewRequest(http.MethodGet, "/api/events?stream=status", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
