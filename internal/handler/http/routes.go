package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.corsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))

	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// uploaded images
	router.Post("/api/upload", h.upload)
	router.Method(http.MethodGet, "/images/*", http.StripPrefix("/images/", h.images()))

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/{id}", h.getUser)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Put("/update/{id}", h.updateUser)
			r.Delete("/delete/{id}", h.deleteUser)
		})
	})

	router.Route("/api/posts", func(r chi.Router) {
		r.Get("/{id}", h.getPost)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listPosts)
			r.Post("/createpost", h.createPost)
			r.Put("/update/{id}", h.updatePost)
			r.Delete("/delete/{id}", h.deletePost)
		})
	})

	return router
}
