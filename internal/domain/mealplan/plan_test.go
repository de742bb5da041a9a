package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2025-06-02"))
	assert.ErrorIs(t, ValidateDate("06/02/2025"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("2025-13-01"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate(""), ErrInvalidDate)
}

func TestWeekRange(t *testing.T) {
	start, end, err := WeekRange("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", start)
	assert.Equal(t, "2025-06-08", end)

	// month boundary
	start, end, err = WeekRange("2025-06-28")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-28", start)
	assert.Equal(t, "2025-07-04", end)

	_, _, err = WeekRange("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseSlot(t *testing.T) {
	for _, slot := range Slots() {
		parsed, err := ParseSlot(string(slot))
		require.NoError(t, err)
		assert.Equal(t, slot, parsed)
	}

	_, err := ParseSlot("brunch")
	assert.Error(t, err)
	_, err = ParseSlot("")
	assert.Error(t, err)
}

func TestPlanSlots(t *testing.T) {
	plan := EmptyForDate("2025-06-02")
	assert.Empty(t, plan.MealRefs())

	id := "meal-1"
	plan.SetSlot(SlotBreakfast, &id)
	plan.SetSlot(SlotLunch, &id)
	assert.Equal(t, &id, plan.SlotRef(SlotBreakfast))
	assert.Nil(t, plan.SlotRef(SlotDinner))

	// one ref per occupied slot, duplicates kept
	assert.Equal(t, []string{"meal-1", "meal-1"}, plan.MealRefs())

	plan.SetSlot(SlotBreakfast, nil)
	assert.Equal(t, []string{"meal-1"}, plan.MealRefs())
}

func TestEmptyForDate(t *testing.T) {
	plan := EmptyForDate("2025-06-02")
	assert.Equal(t, "2025-06-02", plan.Date)
	assert.Nil(t, plan.Breakfast)
	assert.Nil(t, plan.MorningSnack)
	assert.Nil(t, plan.Lunch)
	assert.Nil(t, plan.Dinner)
	assert.Nil(t, plan.EveningSnack)
}
