package app_handler

import (
	"net/http"

	"github.com/trsv-dev/espresso-idling-bridge/internal/auth"
	"github.com/trsv-dev/espresso-idling-bridge/internal/broadcast"
)

// AppHandler Структура для передачи общих зависимостей.
type AppHandler struct {
	Broadcaster  broadcast.Broadcaster
	JWTSecretKey string
	TokenBuilder auth.TokenBuilder
}

// NewAppHandler Конструктор AppHandler.
func NewAppHandler(JWTSecretKey string, tokenBuilder auth.TokenBuilder, broadcaster broadcast.Broadcaster) *AppHandler {
	return &AppHandler{
		JWTSecretKey: JWTSecretKey,
		TokenBuilder: tokenBuilder,
		Broadcaster:  broadcaster,
	}
}

// Events Отдаёт SSE поток событий. Топик выбирается параметром ?stream=.
func (h *AppHandler) Events(w http.ResponseWriter, r *http.Request) {
	h.Broadcaster.HTTPHandler().ServeHTTP(w, r)
}
