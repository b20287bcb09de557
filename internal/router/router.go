package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/espresso-idling-bridge/internal/di_containers"
	"github.com/trsv-dev/espresso-idling-bridge/internal/middleware"
)

// Router Роутер.
func Router(h *di_containers.HandlersContainer) chi.Router {
	router := chi.NewRouter()

	// идентификатор запроса и логгер всех запросов
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LogMiddleware)

	// публичные маршруты
	router.Get("/api/health", h.HealthHandler.GetHealth)

	// маршруты, требующие авторизацию (если задан JWT ключ)
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuthMiddleware(h.AppHandler.JWTSecretKey, h.AppHandler.TokenBuilder))

		r.Get("/api/idling-resources", h.IdlingHandler.ListIdlingResources)
		r.Post("/api/idling-resources", h.IdlingHandler.RegisterIdlingResources)
		r.Delete("/api/idling-resources", h.IdlingHandler.UnregisterIdlingResources)

		r.Post("/api/ui-thread/sync", h.IdlingHandler.WaitForUIThread)
		r.Post("/api/execute", h.IdlingHandler.Execute)

		// SSE поток событий, ?stream=status
		r.Get("/api/events", h.AppHandler.Events)
	})

	return router
}
