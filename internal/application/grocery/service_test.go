package grocery

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	ingredientapp "github.com/mealhaven/api/internal/application/ingredient"
	"github.com/mealhaven/api/internal/domain/grocery"
	"github.com/mealhaven/api/internal/domain/ingredient"
	"github.com/mealhaven/api/internal/domain/meal"
	"github.com/mealhaven/api/internal/domain/mealplan"
	"github.com/mealhaven/api/internal/infrastructure/persistence/memory"
	"github.com/mealhaven/api/internal/ports/outbound"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

type fixture struct {
	service *Service
	meals   outbound.MealRepository
	plans   outbound.MealPlanRepository
}

func newFixture() *fixture {
	logger := zap.NewNop()
	meals := memory.NewMealRepository()
	plans := memory.NewMealPlanRepository()
	lists := memory.NewGroceryListRepository()
	catalog := ingredientapp.NewService(memory.NewIngredientRepository(), logger)
	return &fixture{
		service: NewService(lists, plans, meals, catalog, logger),
		meals:   meals,
		plans:   plans,
	}
}

func (f *fixture) addMeal(t *testing.T, name string, ingredients ...string) string {
	t.Helper()
	m, err := meal.New(name, ingredients, "", nil)
	require.NoError(t, err)
	require.NoError(t, f.meals.Create(context.Background(), m))
	return m.ID.String()
}

func (f *fixture) plan(t *testing.T, date string, slots map[string]string) {
	t.Helper()
	plan, err := f.plans.FindByDate(context.Background(), date)
	if err != nil {
		plan = mealplan.EmptyForDate(date)
	}
	for slot, mealID := range slots {
		id := mealID
		switch slot {
		case "breakfast":
			plan.Breakfast = &id
		case "morning_snack":
			plan.MorningSnack = &id
		case "lunch":
			plan.Lunch = &id
		case "dinner":
			plan.Dinner = &id
		case "evening_snack":
			plan.EveningSnack = &id
		}
	}
	require.NoError(t, f.plans.Upsert(context.Background(), plan))
}

func TestCreateEmptyWeek(t *testing.T) {
	f := newFixture()

	list, err := f.service.Create(context.Background(), CreateListInput{
		WeekStart:    "2025-06-02",
		AutoGenerate: true,
	})
	require.NoError(t, err)

	assert.Empty(t, list.Items)
	assert.Equal(t, "Groceries for week of 2025-06-02", list.Name)
	assert.Equal(t, "2025-06-02", list.WeekStart)
}

func TestCreateBadWeekStart(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), CreateListInput{WeekStart: "soon"})
	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
}

func TestCreateAggregatesWeek(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	omelette := f.addMeal(t, "Omelette", "Egg", "Milk")
	f.plan(t, "2025-06-02", map[string]string{
		"breakfast": omelette,
		"lunch":     omelette,
	})

	list, err := f.service.Create(ctx, CreateListInput{
		WeekStart:    "2025-06-02",
		AutoGenerate: true,
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	// dairy sorts before protein
	milk, egg := list.Items[0], list.Items[1]
	assert.Equal(t, "Milk", milk.Name)
	assert.Equal(t, ingredient.CategoryDairy, milk.Category)
	assert.Equal(t, "Egg", egg.Name)
	assert.Equal(t, ingredient.CategoryProtein, egg.Category)

	// same meal in two slots counts twice
	for _, item := range list.Items {
		assert.Equal(t, "Used in 2 recipes", item.Quantity)
		assert.Equal(t, "For: Omelette", item.Notes)
		assert.Equal(t, grocery.AddedByAutoGenerated, item.AddedBy)
	}
}

func TestCreateNotesCapMealNames(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	for i := 0; i < 5; i++ {
		id := f.addMeal(t, fmt.Sprintf("Meal %d", i), "Salt")
		f.plan(t, fmt.Sprintf("2025-06-0%d", i+2), map[string]string{"dinner": id})
	}

	list, err := f.service.Create(ctx, CreateListInput{
		WeekStart:    "2025-06-02",
		AutoGenerate: true,
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	assert.Equal(t, "Used in 5 recipes", list.Items[0].Quantity)
	assert.Equal(t, "For: Meal 0, Meal 1, Meal 2 +2 more", list.Items[0].Notes)
}

func TestCreateSkipsDanglingReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	id := f.addMeal(t, "Soup", "Carrot")
	f.plan(t, "2025-06-02", map[string]string{
		"lunch":  id,
		"dinner": "deleted-meal-id",
	})

	list, err := f.service.Create(ctx, CreateListInput{
		WeekStart:    "2025-06-02",
		AutoGenerate: true,
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Carrot", list.Items[0].Name)
	assert.Equal(t, "", list.Items[0].Quantity)
}

func TestItemMutations(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	list, err := f.service.Create(ctx, CreateListInput{WeekStart: "2025-06-02", Name: "Weekly"})
	require.NoError(t, err)
	before := list.UpdatedAt

	t.Run("add item classifies by keyword", func(t *testing.T) {
		updated, err := f.service.AddItem(ctx, list.ID.String(), ItemInput{Name: "Cheddar"})
		require.NoError(t, err)
		require.Len(t, updated.Items, 1)
		assert.Equal(t, ingredient.CategoryDairy, updated.Items[0].Category)
		assert.True(t, updated.UpdatedAt.After(before) || updated.UpdatedAt.Equal(before))
	})

	t.Run("add item rejects blank name", func(t *testing.T) {
		_, err := f.service.AddItem(ctx, list.ID.String(), ItemInput{Name: "  "})
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	})

	t.Run("check off an item", func(t *testing.T) {
		current, err := f.service.Get(ctx, list.ID.String())
		require.NoError(t, err)
		itemID := current.Items[0].ID.String()

		checked := true
		updated, err := f.service.UpdateItem(ctx, list.ID.String(), itemID, UpdateItemInput{Checked: &checked})
		require.NoError(t, err)
		assert.True(t, updated.Items[0].Checked)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		_, err := f.service.UpdateItem(ctx, list.ID.String(), "missing", UpdateItemInput{})
		assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	})

	t.Run("delete item", func(t *testing.T) {
		current, err := f.service.Get(ctx, list.ID.String())
		require.NoError(t, err)

		updated, err := f.service.DeleteItem(ctx, list.ID.String(), current.Items[0].ID.String())
		require.NoError(t, err)
		assert.Empty(t, updated.Items)
	})
}

func TestUpdateMetaAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	list, err := f.service.Create(ctx, CreateListInput{WeekStart: "2025-06-02"})
	require.NoError(t, err)

	name := "Shared groceries"
	shared := true
	updated, err := f.service.UpdateMeta(ctx, list.ID.String(), UpdateListInput{
		Name:     &name,
		IsShared: &shared,
	})
	require.NoError(t, err)
	assert.Equal(t, "Shared groceries", updated.Name)
	assert.True(t, updated.IsShared)

	blank := "  "
	_, err = f.service.UpdateMeta(ctx, list.ID.String(), UpdateListInput{Name: &blank})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))

	require.NoError(t, f.service.Delete(ctx, list.ID.String()))
	_, err = f.service.Get(ctx, list.ID.String())
	assert.True(t, apperrors.Is(err, apperrors.CodeGroceryListNotFound))

	err = f.service.Delete(ctx, list.ID.String())
	assert.True(t, apperrors.Is(err, apperrors.CodeGroceryListNotFound))
}
