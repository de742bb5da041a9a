// Package meal contains the core domain logic for meal records.
package meal

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meal represents a named dish with its ingredients, recipe text and
// household-preference tags.
type Meal struct {
	ID                uuid.UUID      `json:"id"`
	Name              string         `json:"name"`
	Ingredients       []string       `json:"ingredients"`
	Recipe            string         `json:"recipe"`
	FamilyPreferences []FamilyMember `json:"family_preferences"`
	CreatedAt         time.Time      `json:"created_at"`
}

// New validates the input and creates a new Meal. The ingredient list is
// trimmed entry by entry and blank entries are dropped; the meal is rejected
// when nothing valid remains. The recipe is optional but must not be
// whitespace-only. Unknown family-preference tags are discarded so the stored
// set always stays within the closed household-member set.
func New(name string, ingredients []string, recipe string, preferences []string) (*Meal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	cleaned := CleanIngredients(ingredients)
	if len(cleaned) == 0 {
		return nil, ErrNoIngredients
	}

	if recipe != "" && strings.TrimSpace(recipe) == "" {
		return nil, ErrBlankRecipe
	}

	prefs := make([]FamilyMember, 0, len(preferences))
	seen := make(map[FamilyMember]bool)
	for _, p := range preferences {
		member := FamilyMember(strings.TrimSpace(p))
		if member.IsValid() && !seen[member] {
			prefs = append(prefs, member)
			seen[member] = true
		}
	}

	return &Meal{
		ID:                uuid.New(),
		Name:              name,
		Ingredients:       cleaned,
		Recipe:            recipe,
		FamilyPreferences: prefs,
		CreatedAt:         time.Now().UTC(),
	}, nil
}

// CleanIngredients trims every entry and drops the ones that are blank,
// preserving the original order.
func CleanIngredients(ingredients []string) []string {
	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		ing = strings.TrimSpace(ing)
		if ing != "" {
			cleaned = append(cleaned, ing)
		}
	}
	return cleaned
}
