package health_storage

import "github.com/trsv-dev/espresso-idling-bridge/internal/models"

//go:generate mockgen -destination=mocks/status_cache_storage_mock.go -package=mocks . StatusCacheStorage

// StatusCacheStorage Хранилище последних статусов Espresso сервера.
type StatusCacheStorage interface {
	Set(s models.EspressoStatus) bool
	Get(address string) (models.EspressoStatus, bool)
}
