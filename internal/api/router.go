package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/forestshield/forestshield-be/internal/api/handlers"
	"github.com/forestshield/forestshield-be/internal/auth"
	"github.com/forestshield/forestshield-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(userService services.UserServiceProvider, weatherService services.WeatherServiceProvider, tokenManager *auth.Manager, allowedOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the dashboard origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokenManager)
	weatherHandler := handlers.NewWeatherHandler(weatherService)

	// Liveness banner, kept from the original deployment
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Servidor ForestShield funcionando"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/usuarios", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Register)
			r.Post("/login", userHandler.Login)
		})

		r.Route("/clima", func(r chi.Router) {
			r.Get("/", weatherHandler.List)
			// Writes require a valid token; reads stay open.
			r.With(tokenManager.Middleware()).Post("/", weatherHandler.Create)
		})
	})

	return r
}
