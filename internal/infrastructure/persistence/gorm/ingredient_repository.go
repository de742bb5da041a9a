package gorm

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mealhaven/api/internal/domain/ingredient"
	"github.com/mealhaven/api/internal/ports/outbound"
)

// IngredientRepository implements the ingredient catalog repository using GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new GORM ingredient repository
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create persists a new catalog entry
func (r *IngredientRepository) Create(ctx context.Context, ing *ingredient.Ingredient) error {
	return r.db.WithContext(ctx).Create(IngredientToModel(ing)).Error
}

// Update replaces the mutable fields of a stored catalog entry
func (r *IngredientRepository) Update(ctx context.Context, ing *ingredient.Ingredient) error {
	result := r.db.WithContext(ctx).
		Model(&IngredientModel{}).
		Where("id = ?", ing.ID.String()).
		Select("name", "category", "is_common", "usage_count").
		Updates(IngredientToModel(ing))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}

// FindByName retrieves a catalog entry by case-insensitive exact name
func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*ingredient.Ingredient, error) {
	var model IngredientModel
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	return ModelToIngredient(&model), nil
}

// Search matches names by case-insensitive substring, ordered by usage count
// descending, common flag descending, then name ascending. An empty query
// matches everything.
func (r *IngredientRepository) Search(ctx context.Context, query string, limit int) ([]*ingredient.Ingredient, error) {
	tx := r.db.WithContext(ctx).Model(&IngredientModel{})
	if query != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var models []IngredientModel
	err := tx.Order("usage_count DESC").
		Order("is_common DESC").
		Order("name ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*ingredient.Ingredient, len(models))
	for i := range models {
		entries[i] = ModelToIngredient(&models[i])
	}
	return entries, nil
}
