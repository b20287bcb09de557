package health_handler

import (
	"net/http"
	"time"

	"github.com/trsv-dev/espresso-idling-bridge/internal/api/response"
	"github.com/trsv-dev/espresso-idling-bridge/internal/health_storage"
	"github.com/trsv-dev/espresso-idling-bridge/internal/logger"
	"github.com/trsv-dev/espresso-idling-bridge/internal/models"
)

// HealthHandler обрабатывает HTTP-запросы для проверки состояния Espresso сервера.
type HealthHandler struct {
	statusCache health_storage.StatusCacheStorage
	address     string
}

// NewHealthHandler Конструктор HealthHandler.
func NewHealthHandler(statusCache health_storage.StatusCacheStorage, address string) *HealthHandler {
	return &HealthHandler{
		statusCache: statusCache,
		address:     address,
	}
}

// GetHealth Возвращает последний известный статус Espresso сервера из кэша.
// HTTP 200, если статус OK, иначе HTTP 503.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status, ok := h.statusCache.Get(h.address)
	if !ok {
		logger.Log.Warn("Статус Espresso сервера отсутствует в кэше", logger.String("address", h.address))

		status = models.EspressoStatus{
			Address:   h.address,
			Status:    models.StatusUnknown,
			CheckedAt: time.Now(),
		}
	}

	if status.Status != models.StatusOK {
		response.JSON(w, http.StatusServiceUnavailable, status)
		return
	}

	response.JSON(w, http.StatusOK, status)
}
