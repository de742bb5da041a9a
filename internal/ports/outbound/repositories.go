// Package outbound defines the driven ports: persistence and external
// service interfaces implemented by the infrastructure layer.
package outbound

import (
	"context"
	"errors"

	"github.com/mealhaven/api/internal/domain/grocery"
	"github.com/mealhaven/api/internal/domain/ingredient"
	"github.com/mealhaven/api/internal/domain/meal"
	"github.com/mealhaven/api/internal/domain/mealplan"
)

// ErrNotFound is returned by repositories when a record does not exist.
// Implementations translate their driver-specific miss into this sentinel.
var ErrNotFound = errors.New("record not found")

// MealRepository persists meal records.
type MealRepository interface {
	Create(ctx context.Context, m *meal.Meal) error
	FindByID(ctx context.Context, id string) (*meal.Meal, error)
	// FindByIDs resolves meal references in bulk. IDs with no backing record
	// are silently absent from the result; callers treat dangling references
	// as unavailable data.
	FindByIDs(ctx context.Context, ids []string) ([]*meal.Meal, error)
	FindAll(ctx context.Context) ([]*meal.Meal, error)
	Update(ctx context.Context, m *meal.Meal) error
	Delete(ctx context.Context, id string) error
}

// MealPlanRepository persists one plan record per calendar date.
type MealPlanRepository interface {
	FindByDate(ctx context.Context, date string) (*mealplan.Plan, error)
	// FindByDateRange returns plans with date in [start, end] inclusive,
	// ordered by date. Bounds compare lexicographically on the ISO date.
	FindByDateRange(ctx context.Context, start, end string) ([]*mealplan.Plan, error)
	FindAll(ctx context.Context) ([]*mealplan.Plan, error)
	// Upsert inserts the plan or replaces the existing record for its date.
	Upsert(ctx context.Context, p *mealplan.Plan) error
}

// IngredientRepository persists the ingredient catalog. Name lookups are
// case-insensitive; the usage-count increment is read-modify-write and two
// concurrent writers may race, which the catalog accepts as best effort.
type IngredientRepository interface {
	Create(ctx context.Context, ing *ingredient.Ingredient) error
	Update(ctx context.Context, ing *ingredient.Ingredient) error
	FindByName(ctx context.Context, name string) (*ingredient.Ingredient, error)
	// Search matches names by case-insensitive substring; an empty query
	// matches everything. Results are ordered by usage count descending,
	// common flag descending, then name ascending, capped at limit.
	Search(ctx context.Context, query string, limit int) ([]*ingredient.Ingredient, error)
}

// GroceryListRepository persists grocery lists with their embedded items.
type GroceryListRepository interface {
	Create(ctx context.Context, l *grocery.List) error
	FindByID(ctx context.Context, id string) (*grocery.List, error)
	FindAll(ctx context.Context) ([]*grocery.List, error)
	Update(ctx context.Context, l *grocery.List) error
	Delete(ctx context.Context, id string) error
}

// TextGenerator is the external text-completion collaborator used for recipe
// suggestions. It is a black box: send prompts, receive text expected to
// contain a JSON object.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
