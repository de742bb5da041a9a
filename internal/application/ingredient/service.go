// Package ingredient provides the application layer for the ingredient
// catalog: usage tracking, search and common-ingredient seeding.
package ingredient

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mealhaven/api/internal/domain/ingredient"
	"github.com/mealhaven/api/internal/ports/outbound"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

// DefaultSearchLimit bounds search results when the caller does not ask for
// a specific limit.
const DefaultSearchLimit = 20

// Service implements the ingredient catalog use cases.
type Service struct {
	repo   outbound.IngredientRepository
	logger *zap.Logger
}

// NewService creates a new ingredient catalog service.
func NewService(repo outbound.IngredientRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("ingredient-service"),
	}
}

// FindOrIncrement normalizes a raw name, bumps the usage counter of the
// matching catalog entry, or creates the entry with usage 1 when the name is
// new. The increment is read-modify-write; concurrent callers may undercount,
// which the catalog accepts.
func (s *Service) FindOrIncrement(ctx context.Context, rawName string, category ingredient.Category) (*ingredient.Ingredient, error) {
	name := ingredient.Normalize(rawName)
	if name == "" {
		return nil, apperrors.NewValidationError(ingredient.ErrNameRequired.Error())
	}

	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		existing.UsageCount++
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, apperrors.NewDatabaseError("update ingredient usage", err)
		}
		return existing, nil
	case errors.Is(err, outbound.ErrNotFound):
		entry, err := ingredient.New(name, category, false, 1)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := s.repo.Create(ctx, entry); err != nil {
			return nil, apperrors.NewDatabaseError("create ingredient", err)
		}
		return entry, nil
	default:
		return nil, apperrors.NewDatabaseError("find ingredient", err)
	}
}

// Search matches catalog names by case-insensitive substring, ordered by
// usage count, common flag, then name.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*ingredient.Ingredient, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	results, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError("search ingredients", err)
	}
	return results, nil
}

// Popular returns the most used catalog entries: an empty-query search.
func (s *Service) Popular(ctx context.Context, limit int) ([]*ingredient.Ingredient, error) {
	return s.Search(ctx, "", limit)
}

// SeedCommon inserts every canonical name not already present, flagged as
// common with usage 0 and a category from the seed word lists. Re-running
// adds only missing names, so the operation is idempotent. It returns how
// many entries were added.
func (s *Service) SeedCommon(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		names = ingredient.CommonCanon()
	}

	added := 0
	for _, raw := range names {
		name := ingredient.Normalize(raw)
		if name == "" {
			continue
		}

		_, err := s.repo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, outbound.ErrNotFound) {
			return added, apperrors.NewDatabaseError("find ingredient", err)
		}

		entry, err := ingredient.New(name, ingredient.SeedCategory(name), true, 0)
		if err != nil {
			continue
		}
		if err := s.repo.Create(ctx, entry); err != nil {
			return added, apperrors.NewDatabaseError("create common ingredient", err)
		}
		added++
	}

	s.logger.Info("Seeded common ingredients", zap.Int("added", added))
	return added, nil
}

// CategoryForName resolves a grocery category for an ingredient name: the
// catalog entry's category when one is set, otherwise the keyword fallback
// classifier. Lookup failures degrade to the classifier.
func (s *Service) CategoryForName(ctx context.Context, name string) ingredient.Category {
	entry, err := s.repo.FindByName(ctx, ingredient.Normalize(name))
	if err == nil && entry.Category != ingredient.CategoryNone {
		return entry.Category
	}
	return ingredient.Classify(name)
}
