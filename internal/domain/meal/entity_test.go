package meal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid meal", func(t *testing.T) {
		m, err := New("Pancakes", []string{"Flour", "Eggs", "Milk"}, "Mix and cook.", []string{"dad", "mom"})
		require.NoError(t, err)

		assert.NotEqual(t, "", m.ID.String())
		assert.Equal(t, "Pancakes", m.Name)
		assert.Equal(t, []string{"Flour", "Eggs", "Milk"}, m.Ingredients)
		assert.Equal(t, "Mix and cook.", m.Recipe)
		assert.Equal(t, []FamilyMember{MemberDad, MemberMom}, m.FamilyPreferences)
		assert.False(t, m.CreatedAt.IsZero())
	})

	t.Run("trims name and ingredients", func(t *testing.T) {
		m, err := New("  Soup  ", []string{" carrot ", "", "  ", "onion"}, "", nil)
		require.NoError(t, err)

		assert.Equal(t, "Soup", m.Name)
		assert.Equal(t, []string{"carrot", "onion"}, m.Ingredients)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := New("   ", []string{"rice"}, "", nil)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("rejects empty ingredient list", func(t *testing.T) {
		_, err := New("Toast", nil, "", nil)
		assert.ErrorIs(t, err, ErrNoIngredients)
	})

	t.Run("rejects all-blank ingredients", func(t *testing.T) {
		_, err := New("Toast", []string{"  ", ""}, "", nil)
		assert.ErrorIs(t, err, ErrNoIngredients)
	})

	t.Run("rejects whitespace-only recipe", func(t *testing.T) {
		_, err := New("Toast", []string{"bread"}, "   ", nil)
		assert.ErrorIs(t, err, ErrBlankRecipe)
	})

	t.Run("drops unknown and duplicate family tags", func(t *testing.T) {
		m, err := New("Toast", []string{"bread"}, "", []string{"dad", "uncle", "dad", "baby"})
		require.NoError(t, err)

		assert.Equal(t, []FamilyMember{MemberDad, MemberBaby}, m.FamilyPreferences)
	})
}

func TestCleanIngredients(t *testing.T) {
	assert.Empty(t, CleanIngredients(nil))
	assert.Equal(t, []string{"a", "b"}, CleanIngredients([]string{" a ", "", "b", "  "}))
}

func TestFamilyMember(t *testing.T) {
	assert.Len(t, Members(), 7)
	for _, m := range Members() {
		assert.True(t, m.IsValid(), string(m))
		assert.NotEmpty(t, m.Glyph(), string(m))
	}
	assert.False(t, FamilyMember("uncle").IsValid())
	assert.Empty(t, FamilyMember("uncle").Glyph())
}
