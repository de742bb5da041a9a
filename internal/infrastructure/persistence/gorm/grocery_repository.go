package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mealhaven/api/internal/domain/grocery"
	"github.com/mealhaven/api/internal/ports/outbound"
)

// GroceryListRepository implements the grocery list repository using GORM
type GroceryListRepository struct {
	db *gorm.DB
}

// NewGroceryListRepository creates a new GORM grocery list repository
func NewGroceryListRepository(db *gorm.DB) *GroceryListRepository {
	return &GroceryListRepository{db: db}
}

// Create persists a new grocery list with its embedded items
func (r *GroceryListRepository) Create(ctx context.Context, l *grocery.List) error {
	return r.db.WithContext(ctx).Create(ListToModel(l)).Error
}

// FindByID retrieves a grocery list by its ID
func (r *GroceryListRepository) FindByID(ctx context.Context, id string) (*grocery.List, error) {
	var model GroceryListModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	return ModelToList(&model), nil
}

// FindAll retrieves all grocery lists, newest first
func (r *GroceryListRepository) FindAll(ctx context.Context) ([]*grocery.List, error) {
	var models []GroceryListModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	lists := make([]*grocery.List, len(models))
	for i := range models {
		lists[i] = ModelToList(&models[i])
	}
	return lists, nil
}

// Update replaces a stored grocery list including its items
func (r *GroceryListRepository) Update(ctx context.Context, l *grocery.List) error {
	result := r.db.WithContext(ctx).
		Model(&GroceryListModel{}).
		Where("id = ?", l.ID.String()).
		Select("name", "week_start", "items", "collaborators", "is_shared", "updated_at").
		Updates(ListToModel(l))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}

// Delete removes a grocery list by ID
func (r *GroceryListRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&GroceryListModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}
