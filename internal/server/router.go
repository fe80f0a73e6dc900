package server

import (
	"net/http"

	"dailytask-backend/internal/handlers"
	customMiddleware "dailytask-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps carries everything the router needs, wired by the composition root.
type Deps struct {
	Auth     *handlers.AuthHandler
	Tasks    *handlers.TaskHandler
	Users    *handlers.UserHandler
	Verifier customMiddleware.TokenVerifier
}

func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness string, not a health-check protocol
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Daily Task is Active"))
	})

	r.Post("/jwt", deps.Auth.IssueToken)

	// Only the owner-scoped task listing requires a bearer token; the other
	// task and user routes are deliberately left open to match the existing
	// API contract.
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.Auth(deps.Verifier))
		r.Get("/task", deps.Tasks.List)
	})

	r.Post("/task", deps.Tasks.Create)
	r.Put("/task/{id}", deps.Tasks.Update)
	r.Delete("/task/{id}", deps.Tasks.Delete)

	r.Get("/users", deps.Users.List)
	r.Post("/users", deps.Users.Create)

	return r
}
