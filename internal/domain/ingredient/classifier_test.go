package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		expected Category
	}{
		{"Red Onion", CategoryProduce},
		{"Cheddar Cheese", CategoryDairy},
		{"Chicken Breast", CategoryProtein},
		{"Whole Wheat Flour", CategoryGrain},
		{"Ground Cumin", CategorySpice},
		{"Soy Sauce", CategoryCondiment},
		{"Lemon", CategoryFruit},
		{"Mystery Powder", CategoryOther},
		{"", CategoryOther},
		// eggplant must match produce before protein's "egg"
		{"Eggplant", CategoryProduce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.name))
		})
	}
}

func TestSeedCategory(t *testing.T) {
	assert.Equal(t, CategorySpice, SeedCategory("Salt"))
	assert.Equal(t, CategoryProtein, SeedCategory("chicken breast"))
	assert.Equal(t, CategoryOil, SeedCategory("Olive Oil"))
	assert.Equal(t, CategoryNut, SeedCategory("peanut butter"))

	// exact membership only, no substring matching
	assert.Equal(t, CategoryNone, SeedCategory("chicken"))
	assert.Equal(t, CategoryNone, SeedCategory("dragon fruit"))
}

func TestCommonCanon(t *testing.T) {
	canon := CommonCanon()
	assert.NotEmpty(t, canon)

	seen := make(map[string]bool)
	for _, name := range canon {
		assert.False(t, seen[name], "duplicate canon entry %q", name)
		seen[name] = true
		assert.NotEqual(t, CategoryNone, SeedCategory(name), name)
	}
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{
		"", "produce", "vegetable", "dairy", "protein", "grain",
		"spice", "condiment", "oil", "fruit", "nut", "other",
	} {
		parsed, err := ParseCategory(valid)
		assert.NoError(t, err, valid)
		assert.Equal(t, Category(valid), parsed)
	}

	_, err := ParseCategory("dessert")
	assert.Error(t, err)
	_, err = ParseCategory("Produce")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Olive Oil", Normalize("  olive oil "))
	assert.Equal(t, "Eggs", Normalize("EGGS"))
	assert.Equal(t, "", Normalize("   "))
}

func TestNew(t *testing.T) {
	ing, err := New(" brown sugar ", CategoryNone, true, 0)
	assert.NoError(t, err)
	assert.Equal(t, "Brown Sugar", ing.Name)
	assert.True(t, ing.IsCommon)
	assert.Equal(t, 0, ing.UsageCount)

	_, err = New("  ", CategoryNone, false, 1)
	assert.ErrorIs(t, err, ErrNameRequired)
}
