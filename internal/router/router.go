// Package router sets up all HTTP routes and middleware chains for the
// Vitrine API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"vitrine/internal/auth"
	"vitrine/internal/handlers"
	"vitrine/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. allowedOrigins feeds the CORS allow-list;
// "*" keeps the API open to every origin.
func New(tokens *auth.TokenStore, admin *handlers.Admin, authH *handlers.Auth, public *handlers.Public, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// One limiter shared by every abuse-prone public write endpoint.
	limiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check, used by deployment tooling. No auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Public marketing-site reads.
		r.Get("/blogs", public.BlogsList)
		r.Get("/blogs/{id}", public.BlogByID)
		r.Get("/products", public.ProductsList)
		r.Get("/products/{id}", public.ProductByID)

		// Public form submissions, rate limited.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/contact", public.ContactCreate)
			r.Post("/send-application", public.SendApplication)
		})

		r.Route("/admin", func(r chi.Router) {
			// Credential endpoints: no token yet, rate limited.
			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/login", authH.Login)
				r.Post("/setup", authH.Setup)
			})
			r.Get("/check", authH.Check)

			// Token-gated admin area.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireToken(tokens))

				r.Post("/logout", authH.Logout)
				r.Post("/2fa/setup", authH.TwoFASetup)
				r.Post("/2fa/verify", authH.TwoFAVerify)

				r.Route("/blogs", func(r chi.Router) {
					r.Get("/", admin.BlogsList)
					r.Post("/", admin.BlogCreate)
					r.Put("/{id}", admin.BlogUpdate)
					r.Put("/{id}/publish", admin.BlogTogglePublish)
					r.Delete("/{id}", admin.BlogDelete)
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", admin.ProductsList)
					r.Post("/", admin.ProductCreate)
					r.Put("/{id}", admin.ProductUpdate)
					r.Delete("/{id}", admin.ProductDelete)
				})

				r.Route("/contacts", func(r chi.Router) {
					r.Get("/", admin.ContactsList)
					r.Put("/{id}/read", admin.ContactMarkRead)
					r.Delete("/{id}", admin.ContactDelete)
				})
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
