package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mateoroldos/personal-blog/backend/internal/setup"
	mw "github.com/mateoroldos/personal-blog/shared/middleware"
	"github.com/mateoroldos/personal-blog/shared/middleware/metrics"
)

// New creates the chi router with every site API route.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()
	cfg := deps.Config.Public

	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.Compress(5, "application/json", "application/rss+xml"))
	r.Use(mw.SecurityHeaders(cfg.Secure, mw.APIContentSecurityPolicy))

	// the site posts forms from its own origin and from the dev server
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CorsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", mw.RequestIDHeader},
		ExposedHeaders: []string{mw.RequestIDHeader},
		MaxAge:         300,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/rss.xml", h.RSS)

	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", h.Contact)
		r.Post("/subscribe", h.Subscribe)

		r.Get("/tags", h.GetTags)
		r.Get("/tags/{tag}", h.GetTag)
		r.Get("/projects.json", h.GetProjects)
	})

	return r
}
