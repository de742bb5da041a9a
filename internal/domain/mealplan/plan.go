// Package mealplan contains the core domain logic for calendar-date meal
// plans: one record per date with five optional meal slots.
package mealplan

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used as the plan key. ISO 8601 dates
// sort lexicographically, which the week-range queries rely on.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a plan date is not a valid ISO date.
var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

// Plan assigns meals to the five daily eating slots for one calendar date.
// Slot values are weak references to meal IDs: resolution may fail and a
// dangling ID means the meal data is unavailable, not an error.
type Plan struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	Breakfast    *string   `json:"breakfast"`
	MorningSnack *string   `json:"morning_snack"`
	Lunch        *string   `json:"lunch"`
	Dinner       *string   `json:"dinner"`
	EveningSnack *string   `json:"evening_snack"`
	CreatedAt    time.Time `json:"created_at"`
}

// EmptyForDate builds the synthetic all-slots-empty plan returned for dates
// that have no stored record. It is never persisted by the lookup path.
func EmptyForDate(date string) *Plan {
	return &Plan{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

// ValidateDate checks that a date string is a well-formed ISO calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// WeekRange computes the inclusive [weekStart, weekStart+6d] date range.
func WeekRange(weekStart string) (string, string, error) {
	start, err := time.Parse(DateLayout, weekStart)
	if err != nil {
		return "", "", ErrInvalidDate
	}
	return weekStart, start.AddDate(0, 0, 6).Format(DateLayout), nil
}

// SlotRef returns the meal reference currently held by a slot.
func (p *Plan) SlotRef(slot Slot) *string {
	switch slot {
	case SlotBreakfast:
		return p.Breakfast
	case SlotMorningSnack:
		return p.MorningSnack
	case SlotLunch:
		return p.Lunch
	case SlotDinner:
		return p.Dinner
	case SlotEveningSnack:
		return p.EveningSnack
	}
	return nil
}

// SetSlot assigns a meal reference (or nil to clear) to a slot.
func (p *Plan) SetSlot(slot Slot, mealID *string) {
	switch slot {
	case SlotBreakfast:
		p.Breakfast = mealID
	case SlotMorningSnack:
		p.MorningSnack = mealID
	case SlotLunch:
		p.Lunch = mealID
	case SlotDinner:
		p.Dinner = mealID
	case SlotEveningSnack:
		p.EveningSnack = mealID
	}
}

// MealRefs returns the non-empty slot references of the plan in slot order.
// One entry is returned per occupied slot, so a meal planned twice appears
// twice.
func (p *Plan) MealRefs() []string {
	refs := make([]string, 0, 5)
	for _, slot := range Slots() {
		if ref := p.SlotRef(slot); ref != nil && *ref != "" {
			refs = append(refs, *ref)
		}
	}
	return refs
}
