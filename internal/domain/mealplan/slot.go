package mealplan

import "fmt"

// Slot identifies one of the five daily eating slots. The set is closed;
// ParseSlot is the only way to obtain a Slot from untrusted input.
type Slot string

const (
	SlotBreakfast    Slot = "breakfast"
	SlotMorningSnack Slot = "morning_snack"
	SlotLunch        Slot = "lunch"
	SlotDinner       Slot = "dinner"
	SlotEveningSnack Slot = "evening_snack"
)

// Slots returns all meal slots in daily order.
func Slots() []Slot {
	return []Slot{SlotBreakfast, SlotMorningSnack, SlotLunch, SlotDinner, SlotEveningSnack}
}

// ParseSlot validates an untrusted slot name.
func ParseSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotBreakfast, SlotMorningSnack, SlotLunch, SlotDinner, SlotEveningSnack:
		return Slot(s), nil
	}
	return "", fmt.Errorf("invalid meal slot %q", s)
}
