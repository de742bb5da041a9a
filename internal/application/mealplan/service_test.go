package mealplan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mealhaven/api/internal/infrastructure/persistence/memory"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

func newTestService() *Service {
	return NewService(memory.NewMealPlanRepository(), zap.NewNop())
}

func ref(s string) *string { return &s }

func TestGetByDate(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	t.Run("unknown date yields synthetic empty plan", func(t *testing.T) {
		plan, err := service.GetByDate(ctx, "2025-06-02")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-02", plan.Date)
		assert.Nil(t, plan.Breakfast)

		// the synthetic plan is not persisted
		again, err := service.GetByDate(ctx, "2025-06-02")
		require.NoError(t, err)
		assert.NotEqual(t, plan.ID, again.ID)
	})

	t.Run("bad date is a bad request", func(t *testing.T) {
		_, err := service.GetByDate(ctx, "june 2nd")
		assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
	})
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	plan, err := service.Upsert(ctx, UpsertInput{
		Date:      "2025-06-02",
		Breakfast: ref("meal-1"),
		Dinner:    ref("meal-2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "meal-1", *plan.Breakfast)
	assert.Nil(t, plan.Lunch)

	// replacing keeps the record identity
	replaced, err := service.Upsert(ctx, UpsertInput{
		Date:  "2025-06-02",
		Lunch: ref("meal-3"),
	})
	require.NoError(t, err)
	assert.Equal(t, plan.ID, replaced.ID)
	assert.Nil(t, replaced.Breakfast)
	assert.Equal(t, "meal-3", *replaced.Lunch)

	_, err = service.Upsert(ctx, UpsertInput{Date: "bad"})
	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
}

func TestPatchSlot(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	t.Run("creates record on first patch", func(t *testing.T) {
		plan, err := service.PatchSlot(ctx, "2025-06-02", "dinner", ref("meal-1"))
		require.NoError(t, err)
		assert.Equal(t, "meal-1", *plan.Dinner)

		stored, err := service.GetByDate(ctx, "2025-06-02")
		require.NoError(t, err)
		assert.Equal(t, plan.ID, stored.ID)
	})

	t.Run("patching another slot keeps existing ones", func(t *testing.T) {
		plan, err := service.PatchSlot(ctx, "2025-06-02", "breakfast", ref("meal-2"))
		require.NoError(t, err)
		assert.Equal(t, "meal-2", *plan.Breakfast)
		assert.Equal(t, "meal-1", *plan.Dinner)
	})

	t.Run("null clears the slot", func(t *testing.T) {
		plan, err := service.PatchSlot(ctx, "2025-06-02", "dinner", nil)
		require.NoError(t, err)
		assert.Nil(t, plan.Dinner)
		assert.Equal(t, "meal-2", *plan.Breakfast)
	})

	t.Run("bad slot name is rejected", func(t *testing.T) {
		_, err := service.PatchSlot(ctx, "2025-06-02", "brunch", ref("meal-1"))
		assert.True(t, apperrors.Is(err, apperrors.CodeInvalidMealSlot))
	})

	t.Run("bad date is a bad request", func(t *testing.T) {
		_, err := service.PatchSlot(ctx, "someday", "dinner", ref("meal-1"))
		assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	for _, date := range []string{"2025-06-02", "2025-06-08", "2025-06-09"} {
		_, err := service.PatchSlot(ctx, date, "lunch", ref("meal-1"))
		require.NoError(t, err)
	}

	t.Run("week window is inclusive", func(t *testing.T) {
		plans, err := service.List(ctx, "2025-06-02")
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, "2025-06-02", plans[0].Date)
		assert.Equal(t, "2025-06-08", plans[1].Date)
	})

	t.Run("empty week start lists everything", func(t *testing.T) {
		plans, err := service.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, plans, 3)
	})

	t.Run("bad week start is a bad request", func(t *testing.T) {
		_, err := service.List(ctx, "next week")
		assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
	})
}
