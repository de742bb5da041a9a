// Package ingredient contains the ingredient catalog domain: normalized
// names, usage counters and the keyword category classifiers.
package ingredient

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNameRequired is returned when a catalog name is empty after trimming.
var ErrNameRequired = errors.New("ingredient name is required")

var titleCaser = cases.Title(language.English)

// Ingredient is one catalog entry. The invariant is at most one entry per
// case-insensitive name; Name always holds the normalized form.
type Ingredient struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   Category  `json:"category,omitempty"`
	IsCommon   bool      `json:"is_common"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Normalize trims and title-cases a raw ingredient name.
func Normalize(raw string) string {
	return titleCaser.String(strings.TrimSpace(raw))
}

// New validates and creates a catalog entry with a normalized name.
func New(rawName string, category Category, isCommon bool, usageCount int) (*Ingredient, error) {
	name := Normalize(rawName)
	if name == "" {
		return nil, ErrNameRequired
	}
	return &Ingredient{
		ID:         uuid.New(),
		Name:       name,
		Category:   category,
		IsCommon:   isCommon,
		UsageCount: usageCount,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
