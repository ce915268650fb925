package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.healthCheck)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Route("/api/replicache", func(r chi.Router) {
		r.Use(h.auth)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			r.Post("/push", h.push)
			r.Post("/pull", h.pull)
		})

		// a websocket handshake must not pass through the gzip writer
		r.Get("/poke", h.poke)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
