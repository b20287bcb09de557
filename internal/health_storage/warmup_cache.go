package health_storage

import (
	"time"

	"github.com/trsv-dev/espresso-idling-bridge/internal/models"
)

// WarmUpStatusCache "Прогрев" in-memory хранилища: до первой проверки статус сервера неизвестен.
func WarmUpStatusCache(statusCache StatusCacheStorage, address string) {
	statusCache.Set(models.EspressoStatus{
		Address:   address,
		Status:    models.StatusUnknown,
		CheckedAt: time.Now(),
	})
}
