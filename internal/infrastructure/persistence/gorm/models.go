// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mealhaven/api/internal/domain/grocery"
	"github.com/mealhaven/api/internal/domain/ingredient"
	"github.com/mealhaven/api/internal/domain/meal"
	"github.com/mealhaven/api/internal/domain/mealplan"
)

// MealModel represents the GORM model for meals
type MealModel struct {
	ID                uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Name              string      `gorm:"type:varchar(255);not null;index"`
	Ingredients       StringSlice `gorm:"type:json"`
	Recipe            string      `gorm:"type:text"`
	FamilyPreferences StringSlice `gorm:"type:json"`
	CreatedAt         time.Time   `gorm:"index"`
}

// TableName overrides the table name
func (MealModel) TableName() string { return "meals" }

// MealPlanModel represents the GORM model for per-date meal plans.
// Slot columns hold weak references to meal IDs and may dangle.
type MealPlanModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Date         string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Breakfast    *string   `gorm:"type:char(36)"`
	MorningSnack *string   `gorm:"type:char(36)"`
	Lunch        *string   `gorm:"type:char(36)"`
	Dinner       *string   `gorm:"type:char(36)"`
	EveningSnack *string   `gorm:"type:char(36)"`
	CreatedAt    time.Time
}

// TableName overrides the table name
func (MealPlanModel) TableName() string { return "meal_plans" }

// IngredientModel represents the GORM model for catalog entries
type IngredientModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category   string    `gorm:"type:varchar(50)"`
	IsCommon   bool      `gorm:"default:false"`
	UsageCount int       `gorm:"default:0;index"`
	CreatedAt  time.Time
}

// TableName overrides the table name
func (IngredientModel) TableName() string { return "ingredients" }

// GroceryListModel represents the GORM model for grocery lists. Items are
// embedded as a JSON column: they are owned by exactly one list and never
// referenced independently.
type GroceryListModel struct {
	ID            uuid.UUID    `gorm:"type:char(36);primaryKey"`
	Name          string       `gorm:"type:varchar(255);not null"`
	WeekStart     string       `gorm:"type:varchar(10);index"`
	Items         GroceryItems `gorm:"type:json"`
	Collaborators StringSlice  `gorm:"type:json"`
	IsShared      bool         `gorm:"default:false"`
	CreatedAt     time.Time    `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName overrides the table name
func (GroceryListModel) TableName() string { return "grocery_lists" }

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// GroceryItems custom type for handling embedded grocery items in JSON
type GroceryItems []grocery.Item

// Scan implements the sql.Scanner interface
func (g *GroceryItems) Scan(value interface{}) error {
	if value == nil {
		*g = GroceryItems{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	default:
		return fmt.Errorf("cannot scan %T into GroceryItems", value)
	}
}

// Value implements the driver.Valuer interface
func (g GroceryItems) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	data, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Mapping between domain entities and models

// MealToModel converts a domain meal to its GORM model
func MealToModel(m *meal.Meal) *MealModel {
	prefs := make(StringSlice, len(m.FamilyPreferences))
	for i, p := range m.FamilyPreferences {
		prefs[i] = string(p)
	}
	return &MealModel{
		ID:                m.ID,
		Name:              m.Name,
		Ingredients:       StringSlice(m.Ingredients),
		Recipe:            m.Recipe,
		FamilyPreferences: prefs,
		CreatedAt:         m.CreatedAt,
	}
}

// ModelToMeal converts a GORM model to a domain meal
func ModelToMeal(model *MealModel) *meal.Meal {
	prefs := make([]meal.FamilyMember, 0, len(model.FamilyPreferences))
	for _, p := range model.FamilyPreferences {
		member := meal.FamilyMember(p)
		if member.IsValid() {
			prefs = append(prefs, member)
		}
	}
	return &meal.Meal{
		ID:                model.ID,
		Name:              model.Name,
		Ingredients:       []string(model.Ingredients),
		Recipe:            model.Recipe,
		FamilyPreferences: prefs,
		CreatedAt:         model.CreatedAt,
	}
}

// PlanToModel converts a domain meal plan to its GORM model
func PlanToModel(p *mealplan.Plan) *MealPlanModel {
	return &MealPlanModel{
		ID:           p.ID,
		Date:         p.Date,
		Breakfast:    p.Breakfast,
		MorningSnack: p.MorningSnack,
		Lunch:        p.Lunch,
		Dinner:       p.Dinner,
		EveningSnack: p.EveningSnack,
		CreatedAt:    p.CreatedAt,
	}
}

// ModelToPlan converts a GORM model to a domain meal plan
func ModelToPlan(model *MealPlanModel) *mealplan.Plan {
	return &mealplan.Plan{
		ID:           model.ID,
		Date:         model.Date,
		Breakfast:    model.Breakfast,
		MorningSnack: model.MorningSnack,
		Lunch:        model.Lunch,
		Dinner:       model.Dinner,
		EveningSnack: model.EveningSnack,
		CreatedAt:    model.CreatedAt,
	}
}

// IngredientToModel converts a domain catalog entry to its GORM model
func IngredientToModel(ing *ingredient.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:         ing.ID,
		Name:       ing.Name,
		Category:   string(ing.Category),
		IsCommon:   ing.IsCommon,
		UsageCount: ing.UsageCount,
		CreatedAt:  ing.CreatedAt,
	}
}

// ModelToIngredient converts a GORM model to a domain catalog entry
func ModelToIngredient(model *IngredientModel) *ingredient.Ingredient {
	return &ingredient.Ingredient{
		ID:         model.ID,
		Name:       model.Name,
		Category:   ingredient.Category(model.Category),
		IsCommon:   model.IsCommon,
		UsageCount: model.UsageCount,
		CreatedAt:  model.CreatedAt,
	}
}

// ListToModel converts a domain grocery list to its GORM model
func ListToModel(l *grocery.List) *GroceryListModel {
	return &GroceryListModel{
		ID:            l.ID,
		Name:          l.Name,
		WeekStart:     l.WeekStart,
		Items:         GroceryItems(l.Items),
		Collaborators: StringSlice(l.Collaborators),
		IsShared:      l.IsShared,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// ModelToList converts a GORM model to a domain grocery list
func ModelToList(model *GroceryListModel) *grocery.List {
	items := model.Items
	if items == nil {
		items = GroceryItems{}
	}
	collaborators := model.Collaborators
	if collaborators == nil {
		collaborators = StringSlice{}
	}
	return &grocery.List{
		ID:            model.ID,
		Name:          model.Name,
		WeekStart:     model.WeekStart,
		Items:         []grocery.Item(items),
		Collaborators: []string(collaborators),
		IsShared:      model.IsShared,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
