// MealHaven API server entry point
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	groceryapp "github.com/mealhaven/api/internal/application/grocery"
	ingredientapp "github.com/mealhaven/api/internal/application/ingredient"
	mealapp "github.com/mealhaven/api/internal/application/meal"
	mealplanapp "github.com/mealhaven/api/internal/application/mealplan"
	suggestionapp "github.com/mealhaven/api/internal/application/suggestion"
	"github.com/mealhaven/api/internal/infrastructure/ai/openai"
	"github.com/mealhaven/api/internal/infrastructure/config"
	"github.com/mealhaven/api/internal/infrastructure/http/server"
	"github.com/mealhaven/api/internal/infrastructure/persistence/database"
	persistence "github.com/mealhaven/api/internal/infrastructure/persistence/gorm"
	"github.com/mealhaven/api/internal/infrastructure/persistence/memory"
	"github.com/mealhaven/api/internal/ports/outbound"
	"github.com/mealhaven/api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to configuration file")
	flag.Parse()

	// Optional .env file for local development
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.App.Environment == "development",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting MealHaven API",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.String("database_driver", cfg.Database.Driver),
	)

	repos, err := buildRepositories(cfg)
	if err != nil {
		return err
	}

	ingredients := ingredientapp.NewService(repos.ingredients, log)
	meals := mealapp.NewService(repos.meals, ingredients, log)
	mealPlans := mealplanapp.NewService(repos.plans, log)
	grocery := groceryapp.NewService(repos.lists, repos.plans, repos.meals, ingredients, log)
	suggestions := suggestionapp.NewService(openai.NewClient(cfg.AI, log), log)

	srv := server.New(*cfg, server.Services{
		Meals:       meals,
		MealPlans:   mealPlans,
		Ingredients: ingredients,
		Grocery:     grocery,
		Suggestions: suggestions,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

type repositories struct {
	meals       outbound.MealRepository
	plans       outbound.MealPlanRepository
	ingredients outbound.IngredientRepository
	lists       outbound.GroceryListRepository
}

func buildRepositories(cfg *config.Config) (*repositories, error) {
	if cfg.Database.Driver == "memory" {
		return &repositories{
			meals:       memory.NewMealRepository(),
			plans:       memory.NewMealPlanRepository(),
			ingredients: memory.NewIngredientRepository(),
			lists:       memory.NewGroceryListRepository(),
		}, nil
	}

	db, err := database.Setup(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}
	return &repositories{
		meals:       persistence.NewMealRepository(db),
		plans:       persistence.NewMealPlanRepository(db),
		ingredients: persistence.NewIngredientRepository(db),
		lists:       persistence.NewGroceryListRepository(db),
	}, nil
}
