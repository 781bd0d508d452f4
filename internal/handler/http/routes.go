package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/analyze", h.analyze)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
