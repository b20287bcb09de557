package di_containers

import (
	"github.com/trsv-dev/espresso-idling-bridge/internal/api/app_handler"
	"github.com/trsv-dev/espresso-idling-bridge/internal/api/health_handler"
	"github.com/trsv-dev/espresso-idling-bridge/internal/api/idling_handler"
	"github.com/trsv-dev/espresso-idling-bridge/internal/auth"
	"github.com/trsv-dev/espresso-idling-bridge/internal/broadcast"
	"github.com/trsv-dev/espresso-idling-bridge/internal/config"
	"github.com/trsv-dev/espresso-idling-bridge/internal/driver"
	"github.com/trsv-dev/espresso-idling-bridge/internal/health_storage"
	"github.com/trsv-dev/espresso-idling-bridge/internal/idling"
)

// HandlersContainer Контейнер со всеми хендлерами приложения (и их зависимостями).
type HandlersContainer struct {
	IdlingHandler *idling_handler.IdlingHandler
	HealthHandler *health_handler.HealthHandler
	AppHandler    *app_handler.AppHandler
}

// NewHandlersContainer Конструктор контейнера с зависимостями для хендлеров.
// statusAddress - адрес Espresso сервера, под которым статус хранится в кэше.
func NewHandlersContainer(manager idling.Manager, statusCache health_storage.StatusCacheStorage, statusAddress string,
	srvConfig *config.Config, broadcaster broadcast.Broadcaster, tokenBuilder auth.TokenBuilder) *HandlersContainer {
	executor := driver.NewExecutor(manager)

	return &HandlersContainer{
		IdlingHandler: idling_handler.NewIdlingHandler(manager, executor),
		HealthHandler: health_handler.NewHealthHandler(statusCache, statusAddress),
		AppHandler:    app_handler.NewAppHandler(srvConfig.JWTSecretKey, tokenBuilder, broadcaster),
	}
}
