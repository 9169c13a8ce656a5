package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/api/handlers"
	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/auth"
	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/config"
	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, userService services.UserServiceProvider, itemService services.ItemServiceProvider, eventService services.EventServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, cfg.JWTSecret, cfg.TokenTTL)
	itemHandler := handlers.NewItemHandler(itemService)
	eventHandler := handlers.NewEventHandler(eventService)

	requireAuth := auth.Middleware(cfg.JWTSecret)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.With(requireAuth).Get("/me", userHandler.GetMe)
		})

		r.Route("/items", func(r chi.Router) {
			// The board is globally browsable; only mutation needs auth.
			r.Get("/", itemHandler.List)
			r.With(requireAuth).Post("/", itemHandler.Create)
			r.With(requireAuth).Get("/user/my-items", itemHandler.ListMine)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", itemHandler.Get)
				r.With(requireAuth).Put("/", itemHandler.Update)
				r.With(requireAuth).Delete("/", itemHandler.Delete)
			})
		})

		r.With(requireAuth).Get("/events/recent", eventHandler.GetRecent)
	})

	return r
}
