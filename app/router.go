// Package app assembles the HTTP API from the generated modules.
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"movingdata.com/p/apiscaffold/modelutil"
)

// ========== AUTO-REGISTER START ==========
import (
	"movingdata.com/p/apiscaffold/app/modules/auth"
	"movingdata.com/p/apiscaffold/app/modules/category"
	"movingdata.com/p/apiscaffold/app/modules/customer"
	"movingdata.com/p/apiscaffold/app/modules/product"
)

// registerRoutes mounts every generated module router.
func registerRoutes(r chi.Router, deps *modelutil.Deps) {
	r.Mount("/auth", auth.Routes(deps))
	r.Mount("/categories", category.Routes(deps))
	r.Mount("/customers", customer.Routes(deps))
	r.Mount("/products", product.Routes(deps))
}
// ========== AUTO-REGISTER END ==========

// NewRouter returns the application handler. Generated modules are mounted
// under /api; metrics may be nil.
func NewRouter(deps *modelutil.Deps, metrics *modelutil.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	if metrics != nil {
		r.Use(metrics.Middleware)
		r.Handle("/metrics", metrics.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		modelutil.Success(w, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, deps)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		modelutil.NotFound(w, "Not found")
	})

	return r
}
