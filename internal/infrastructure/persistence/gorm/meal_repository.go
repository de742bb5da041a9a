package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mealhaven/api/internal/domain/meal"
	"github.com/mealhaven/api/internal/ports/outbound"
)

// MealRepository implements the meal repository using GORM
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new GORM meal repository
func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

// Create persists a new meal
func (r *MealRepository) Create(ctx context.Context, m *meal.Meal) error {
	return r.db.WithContext(ctx).Create(MealToModel(m)).Error
}

// FindByID retrieves a meal by its ID
func (r *MealRepository) FindByID(ctx context.Context, id string) (*meal.Meal, error) {
	var model MealModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	return ModelToMeal(&model), nil
}

// FindByIDs retrieves meals in bulk; missing IDs are absent from the result
func (r *MealRepository) FindByIDs(ctx context.Context, ids []string) ([]*meal.Meal, error) {
	if len(ids) == 0 {
		return []*meal.Meal{}, nil
	}

	var models []MealModel
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error
	if err != nil {
		return nil, err
	}

	meals := make([]*meal.Meal, len(models))
	for i := range models {
		meals[i] = ModelToMeal(&models[i])
	}
	return meals, nil
}

// FindAll retrieves all meals, newest first
func (r *MealRepository) FindAll(ctx context.Context) ([]*meal.Meal, error) {
	var models []MealModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	meals := make([]*meal.Meal, len(models))
	for i := range models {
		meals[i] = ModelToMeal(&models[i])
	}
	return meals, nil
}

// Update replaces a stored meal
func (r *MealRepository) Update(ctx context.Context, m *meal.Meal) error {
	result := r.db.WithContext(ctx).
		Model(&MealModel{}).
		Where("id = ?", m.ID.String()).
		Select("name", "ingredients", "recipe", "family_preferences").
		Updates(MealToModel(m))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}

// Delete removes a meal by ID
func (r *MealRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MealModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}
