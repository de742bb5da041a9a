package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/mealhaven/api/internal/domain/ingredient"
	"github.com/mealhaven/api/internal/ports/outbound"
)

// IngredientRepository is an in-memory ingredient catalog keyed by
// lowercase name.
type IngredientRepository struct {
	mu      sync.RWMutex
	entries map[string]*ingredient.Ingredient
}

// NewIngredientRepository creates an empty in-memory catalog.
func NewIngredientRepository() *IngredientRepository {
	return &IngredientRepository{entries: make(map[string]*ingredient.Ingredient)}
}

func (r *IngredientRepository) Create(ctx context.Context, ing *ingredient.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[strings.ToLower(ing.Name)] = copyIngredient(ing)
	return nil
}

func (r *IngredientRepository) Update(ctx context.Context, ing *ingredient.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(ing.Name)
	if _, ok := r.entries[key]; !ok {
		return outbound.ErrNotFound
	}
	r.entries[key] = copyIngredient(ing)
	return nil
}

func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*ingredient.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[strings.ToLower(name)]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return copyIngredient(entry), nil
}

func (r *IngredientRepository) Search(ctx context.Context, query string, limit int) ([]*ingredient.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	var results []*ingredient.Ingredient
	for key, entry := range r.entries {
		if needle == "" || strings.Contains(key, needle) {
			results = append(results, copyIngredient(entry))
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].UsageCount != results[j].UsageCount {
			return results[i].UsageCount > results[j].UsageCount
		}
		if results[i].IsCommon != results[j].IsCommon {
			return results[i].IsCommon
		}
		return results[i].Name < results[j].Name
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func copyIngredient(ing *ingredient.Ingredient) *ingredient.Ingredient {
	clone := *ing
	return &clone
}
