package suggestion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/mealhaven/api/pkg/errors"
)

// stubGenerator returns a canned reply and records the prompts it was given.
type stubGenerator struct {
	reply      string
	err        error
	systemSeen string
	userSeen   string
}

func (g *stubGenerator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	g.systemSeen = systemPrompt
	g.userSeen = userPrompt
	return g.reply, g.err
}

const validReply = `{
	"name": "Veggie Stir Fry",
	"ingredients": ["Broccoli", "Soy Sauce", "Rice"],
	"recipe": "Fry the vegetables, add sauce, serve over rice.",
	"family_preferences": ["mom"],
	"cuisine_type": "asian",
	"difficulty": "easy",
	"cooking_time": "20 minutes"
}`

func TestSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a direct JSON reply", func(t *testing.T) {
		gen := &stubGenerator{reply: validReply}
		service := NewService(gen, zap.NewNop())

		suggestion, err := service.Suggest(ctx, Request{Prompt: "something quick"})
		require.NoError(t, err)
		assert.Equal(t, "Veggie Stir Fry", suggestion.Name)
		assert.Len(t, suggestion.Ingredients, 3)
		assert.Equal(t, "easy", suggestion.Difficulty)
	})

	t.Run("extracts JSON wrapped in prose", func(t *testing.T) {
		gen := &stubGenerator{reply: "Sure! Here is a recipe:\n" + validReply + "\nEnjoy!"}
		service := NewService(gen, zap.NewNop())

		suggestion, err := service.Suggest(ctx, Request{Prompt: "something quick"})
		require.NoError(t, err)
		assert.Equal(t, "Veggie Stir Fry", suggestion.Name)
	})

	t.Run("constraints land in the user prompt", func(t *testing.T) {
		gen := &stubGenerator{reply: validReply}
		service := NewService(gen, zap.NewNop())

		_, err := service.Suggest(ctx, Request{
			Prompt:             "weeknight dinner",
			DietaryPreferences: []string{"vegetarian", "nut-free"},
			CuisineType:        "italian",
			Difficulty:         "easy",
		})
		require.NoError(t, err)

		assert.Contains(t, gen.userSeen, "weeknight dinner")
		assert.Contains(t, gen.userSeen, "vegetarian, nut-free")
		assert.Contains(t, gen.userSeen, "Cuisine: italian")
		assert.Contains(t, gen.userSeen, "Difficulty: easy")
		assert.Contains(t, gen.systemSeen, "JSON")
	})

	t.Run("blank prompt is a validation error", func(t *testing.T) {
		service := NewService(&stubGenerator{}, zap.NewNop())

		_, err := service.Suggest(ctx, Request{Prompt: "   "})
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	})

	t.Run("generator failure surfaces as suggestion failure", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("upstream timeout")}
		service := NewService(gen, zap.NewNop())

		_, err := service.Suggest(ctx, Request{Prompt: "anything"})
		assert.True(t, apperrors.Is(err, apperrors.CodeSuggestionFailed))
	})

	t.Run("reply without JSON fails", func(t *testing.T) {
		gen := &stubGenerator{reply: "I cannot help with that."}
		service := NewService(gen, zap.NewNop())

		_, err := service.Suggest(ctx, Request{Prompt: "anything"})
		assert.True(t, apperrors.Is(err, apperrors.CodeSuggestionFailed))
	})

	t.Run("reply missing name fails", func(t *testing.T) {
		gen := &stubGenerator{reply: `{"name": " ", "ingredients": ["rice"]}`}
		service := NewService(gen, zap.NewNop())

		_, err := service.Suggest(ctx, Request{Prompt: "anything"})
		assert.True(t, apperrors.Is(err, apperrors.CodeSuggestionFailed))
	})

	t.Run("reply with only blank ingredients fails", func(t *testing.T) {
		gen := &stubGenerator{reply: `{"name": "Thing", "ingredients": ["  ", ""]}`}
		service := NewService(gen, zap.NewNop())

		_, err := service.Suggest(ctx, Request{Prompt: "anything"})
		assert.True(t, apperrors.Is(err, apperrors.CodeSuggestionFailed))
	})
}
