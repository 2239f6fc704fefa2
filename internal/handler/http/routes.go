package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(middleware.RequestLogger(accessLogFormatter{}))
	router.Use(middleware.Recoverer)
	router.Use(withCORS)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/user", h.getUser)
	router.Post("/user", h.registerUser)

	router.Get("/reviews", h.getReviews)
	router.Post("/reviews", h.addReview)

	router.Get("/healthz", h.health)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
