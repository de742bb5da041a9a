package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mealhaven/api/internal/domain/mealplan"
	"github.com/mealhaven/api/internal/ports/outbound"
)

// MealPlanRepository implements the meal plan repository using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new GORM meal plan repository
func NewMealPlanRepository(db *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// FindByDate retrieves the plan for a calendar date
func (r *MealPlanRepository) FindByDate(ctx context.Context, date string) (*mealplan.Plan, error) {
	var model MealPlanModel
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	return ModelToPlan(&model), nil
}

// FindByDateRange retrieves plans with date in [start, end], ordered by date.
// ISO dates compare lexicographically, so plain string bounds suffice.
func (r *MealPlanRepository) FindByDateRange(ctx context.Context, start, end string) ([]*mealplan.Plan, error) {
	var models []MealPlanModel
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	plans := make([]*mealplan.Plan, len(models))
	for i := range models {
		plans[i] = ModelToPlan(&models[i])
	}
	return plans, nil
}

// FindAll retrieves all plans ordered by date
func (r *MealPlanRepository) FindAll(ctx context.Context) ([]*mealplan.Plan, error) {
	var models []MealPlanModel
	err := r.db.WithContext(ctx).Order("date ASC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	plans := make([]*mealplan.Plan, len(models))
	for i := range models {
		plans[i] = ModelToPlan(&models[i])
	}
	return plans, nil
}

// Upsert inserts the plan or replaces the slot values of the record already
// stored for its date, keyed on the date unique index.
func (r *MealPlanRepository) Upsert(ctx context.Context, p *mealplan.Plan) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"breakfast", "morning_snack", "lunch", "dinner", "evening_snack",
			}),
		}).
		Create(PlanToModel(p)).Error
}
