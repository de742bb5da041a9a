// Package server assembles the chi router and runs the HTTP server
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	groceryapp "github.com/mealhaven/api/internal/application/grocery"
	ingredientapp "github.com/mealhaven/api/internal/application/ingredient"
	mealapp "github.com/mealhaven/api/internal/application/meal"
	mealplanapp "github.com/mealhaven/api/internal/application/mealplan"
	suggestionapp "github.com/mealhaven/api/internal/application/suggestion"
	"github.com/mealhaven/api/internal/infrastructure/config"
	"github.com/mealhaven/api/internal/infrastructure/http/handlers"
	"github.com/mealhaven/api/internal/infrastructure/http/middleware"
)

// Services bundles the application services the server exposes
type Services struct {
	Meals       *mealapp.Service
	MealPlans   *mealplanapp.Service
	Ingredients *ingredientapp.Service
	Grocery     *groceryapp.Service
	Suggestions *suggestionapp.Service
}

// Server is the HTTP server for the API
type Server struct {
	cfg        config.Config
	router     chi.Router
	httpServer *http.Server
	logger     *zap.Logger
}

// New creates a fully routed server. Each server carries its own metrics
// registry, so several instances can live in one process.
func New(cfg config.Config, services Services, logger *zap.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger.Named("http-server"),
	}
	s.router = s.buildRouter(services)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

func (s *Server) buildRouter(services Services) chi.Router {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.CORS(s.cfg.Server.AllowedOrigins))
	r.Use(metrics.Middleware)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	meals := handlers.NewMealHandler(services.Meals, s.logger)
	plans := handlers.NewMealPlanHandler(services.MealPlans, s.logger)
	ingredients := handlers.NewIngredientHandler(services.Ingredients, s.logger)
	grocery := handlers.NewGroceryHandler(services.Grocery, s.logger)
	suggestions := handlers.NewSuggestionHandler(services.Suggestions, services.Meals, s.logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.JSONOnly)

		r.Route("/meals", func(r chi.Router) {
			r.Get("/", meals.List)
			r.Post("/", meals.Create)
			r.Get("/{id}", meals.Get)
			r.Put("/{id}", meals.Update)
			r.Delete("/{id}", meals.Delete)
		})

		r.Route("/meal-plans", func(r chi.Router) {
			r.Get("/", plans.List)
			r.Post("/", plans.Upsert)
			r.Get("/{date}", plans.GetByDate)
			r.Put("/{date}", plans.PatchSlot)
		})

		r.Get("/family-members", handlers.FamilyMembers)

		r.Route("/ingredients", func(r chi.Router) {
			r.Post("/", ingredients.Track)
			r.Post("/search", ingredients.Search)
			r.Get("/popular", ingredients.Popular)
			r.Post("/seed", ingredients.Seed)
		})

		r.Route("/grocery-lists", func(r chi.Router) {
			r.Get("/", grocery.List)
			r.Post("/", grocery.Create)
			r.Get("/{id}", grocery.Get)
			r.Put("/{id}", grocery.Update)
			r.Delete("/{id}", grocery.Delete)
			r.Post("/{id}/items", grocery.AddItem)
			r.Put("/{id}/items/{itemId}", grocery.UpdateItem)
			r.Delete("/{id}/items/{itemId}", grocery.DeleteItem)
		})

		r.Post("/suggest-recipe", suggestions.Suggest)
		r.Post("/create-meal-from-suggestion", suggestions.CreateMeal)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":%q,"version":%q}`,
		s.cfg.App.Name, s.cfg.App.Version)
}

// Router returns the assembled handler, used by tests to drive requests
// without a listening socket.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the server until the listener fails or Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
