package api

import (
	_ "github.com/Ejo3h9612/currencyDemo/docs"
	"github.com/Ejo3h9612/currencyDemo/internal/forex/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(forexHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Post("/api/forex/fetch", forexHandler.FetchRates)
	router.Post("/api/forex/history", forexHandler.History)
	return router
}
