// Package memory provides in-memory repository implementations. They back
// the memory database driver and double as test fixtures; all methods are
// safe for concurrent use and hand out copies, never shared pointers.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mealhaven/api/internal/domain/meal"
	"github.com/mealhaven/api/internal/ports/outbound"
)

// MealRepository is an in-memory meal store.
type MealRepository struct {
	mu    sync.RWMutex
	meals map[string]*meal.Meal
}

// NewMealRepository creates an empty in-memory meal store.
func NewMealRepository() *MealRepository {
	return &MealRepository{meals: make(map[string]*meal.Meal)}
}

func (r *MealRepository) Create(ctx context.Context, m *meal.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meals[m.ID.String()] = copyMeal(m)
	return nil
}

func (r *MealRepository) FindByID(ctx context.Context, id string) (*meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meals[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return copyMeal(m), nil
}

func (r *MealRepository) FindByIDs(ctx context.Context, ids []string) ([]*meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meals := make([]*meal.Meal, 0, len(ids))
	for _, id := range ids {
		if m, ok := r.meals[id]; ok {
			meals = append(meals, copyMeal(m))
		}
	}
	return meals, nil
}

func (r *MealRepository) FindAll(ctx context.Context) ([]*meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meals := make([]*meal.Meal, 0, len(r.meals))
	for _, m := range r.meals {
		meals = append(meals, copyMeal(m))
	}
	sort.Slice(meals, func(i, j int) bool {
		return meals[i].CreatedAt.After(meals[j].CreatedAt)
	})
	return meals, nil
}

func (r *MealRepository) Update(ctx context.Context, m *meal.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meals[m.ID.String()]; !ok {
		return outbound.ErrNotFound
	}
	r.meals[m.ID.String()] = copyMeal(m)
	return nil
}

func (r *MealRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meals[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(r.meals, id)
	return nil
}

func copyMeal(m *meal.Meal) *meal.Meal {
	clone := *m
	clone.Ingredients = append([]string(nil), m.Ingredients...)
	clone.FamilyPreferences = append([]meal.FamilyMember(nil), m.FamilyPreferences...)
	return &clone
}
