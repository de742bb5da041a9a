// Package grocery contains the grocery list domain: categorized shopping
// items derived from a week of meal plans, plus their ordering rules.
package grocery

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mealhaven/api/internal/domain/ingredient"
)

// AddedByAutoGenerated marks items produced by the week aggregation rather
// than added by hand.
const AddedByAutoGenerated = "auto_generated"

// Domain errors for grocery list operations

var (
	ErrItemNameRequired = errors.New("grocery item name is required")
	ErrItemNotFound     = errors.New("grocery item not found")
)

// Item is one entry of a grocery list. Items are owned by exactly one list
// and their IDs are only unique within it.
type Item struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	Category ingredient.Category `json:"category,omitempty"`
	Checked  bool                `json:"checked"`
	Quantity string              `json:"quantity,omitempty"`
	Notes    string              `json:"notes,omitempty"`
	AddedBy  string              `json:"added_by,omitempty"`
}

// List is a categorized, deduplicated shopping list for one week.
type List struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	WeekStart     string    `json:"week_start"`
	Items         []Item    `json:"items"`
	Collaborators []string  `json:"collaborators"`
	IsShared      bool      `json:"is_shared"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewList creates an empty grocery list for a week.
func NewList(name, weekStart string, collaborators []string, shared bool) *List {
	now := time.Now().UTC()
	if collaborators == nil {
		collaborators = []string{}
	}
	return &List{
		ID:            uuid.New(),
		Name:          name,
		WeekStart:     weekStart,
		Items:         []Item{},
		Collaborators: collaborators,
		IsShared:      shared,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Touch bumps the last-updated timestamp after a mutation.
func (l *List) Touch() {
	l.UpdatedAt = time.Now().UTC()
}

// FindItem returns the index of an item by ID, or -1.
func (l *List) FindItem(itemID string) int {
	for i := range l.Items {
		if l.Items[i].ID.String() == itemID {
			return i
		}
	}
	return -1
}
