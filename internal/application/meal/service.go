// Package meal provides the application layer for meal CRUD. Creating a meal
// feeds every distinct ingredient into the catalog as a best-effort side
// effect; replacing an existing meal does not touch the catalog.
package meal

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/mealhaven/api/internal/domain/ingredient"
	"github.com/mealhaven/api/internal/domain/meal"
	"github.com/mealhaven/api/internal/ports/outbound"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

// Catalog is the slice of the ingredient catalog the meal service needs:
// usage tracking for ingredients referenced by meals.
type Catalog interface {
	FindOrIncrement(ctx context.Context, rawName string, category ingredient.Category) (*ingredient.Ingredient, error)
}

// CreateMealInput carries the fields of a meal create or full replace.
type CreateMealInput struct {
	Name              string
	Ingredients       []string
	Recipe            string
	FamilyPreferences []string
}

// Service implements the meal store use cases.
type Service struct {
	repo    outbound.MealRepository
	catalog Catalog
	logger  *zap.Logger
}

// NewService creates a new meal service.
func NewService(repo outbound.MealRepository, catalog Catalog, logger *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger.Named("meal-service"),
	}
}

// Create validates and stores a new meal, then records catalog usage for each
// distinct ingredient. A failed usage update is logged and swallowed: it must
// not fail meal creation.
func (s *Service) Create(ctx context.Context, input CreateMealInput) (*meal.Meal, error) {
	entity, err := meal.New(input.Name, input.Ingredients, input.Recipe, input.FamilyPreferences)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, apperrors.NewDatabaseError("create meal", err)
	}

	s.recordIngredientUsage(ctx, entity)

	s.logger.Info("Meal created",
		zap.String("meal_id", entity.ID.String()),
		zap.String("name", entity.Name),
		zap.Int("ingredients", len(entity.Ingredients)),
	)
	return entity, nil
}

// List returns all stored meals.
func (s *Service) List(ctx context.Context) ([]*meal.Meal, error) {
	meals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list meals", err)
	}
	return meals, nil
}

// Get returns one meal by ID.
func (s *Service) Get(ctx context.Context, id string) (*meal.Meal, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperrors.NewMealNotFoundError(id)
		}
		return nil, apperrors.NewDatabaseError("find meal", err)
	}
	return entity, nil
}

// Update fully replaces a meal's fields under the same validation as Create,
// preserving its identity and creation time.
func (s *Service) Update(ctx context.Context, id string, input CreateMealInput) (*meal.Meal, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement, err := meal.New(input.Name, input.Ingredients, input.Recipe, input.FamilyPreferences)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, replacement); err != nil {
		return nil, apperrors.NewDatabaseError("update meal", err)
	}
	return replacement, nil
}

// Delete removes a meal. Meal-plan slots referencing it are left dangling by
// design; readers treat them as unavailable data.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return apperrors.NewMealNotFoundError(id)
		}
		return apperrors.NewDatabaseError("delete meal", err)
	}
	return nil
}

func (s *Service) recordIngredientUsage(ctx context.Context, entity *meal.Meal) {
	seen := make(map[string]bool)
	for _, name := range entity.Ingredients {
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		if _, err := s.catalog.FindOrIncrement(ctx, name, ingredient.CategoryNone); err != nil {
			s.logger.Warn("Failed to record ingredient usage",
				zap.String("meal_id", entity.ID.String()),
				zap.String("ingredient", name),
				zap.Error(err),
			)
		}
	}
}
