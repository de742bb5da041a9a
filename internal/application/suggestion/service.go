// Package suggestion provides the recipe suggestion gateway: it assembles a
// prompt from user constraints, calls the external text-generation service
// and parses the reply into a validated recipe suggestion.
package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mealhaven/api/internal/domain/meal"
	"github.com/mealhaven/api/internal/ports/outbound"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

// systemPrompt fixes the required reply shape. The generator is expected to
// answer with a single JSON object and nothing else; the parser still
// tolerates surrounding prose.
const systemPrompt = `You are a family meal planning assistant. Suggest one recipe suited to a busy household.

CRITICAL: Respond with ONLY a valid JSON object in exactly this format, no explanatory text or markdown:
{
  "name": "Recipe Name",
  "ingredients": ["ingredient 1", "ingredient 2"],
  "recipe": "Step-by-step cooking instructions as plain text",
  "family_preferences": ["dad", "mom"],
  "cuisine_type": "cuisine name",
  "difficulty": "easy|medium|hard",
  "cooking_time": "30 minutes"
}

family_preferences may only contain: dad, mom, brother, sister, baby, grandpa, grandma.`

// Request carries the user-supplied suggestion constraints.
type Request struct {
	Prompt             string
	DietaryPreferences []string
	CuisineType        string
	Difficulty         string
}

// Suggestion is a parsed, shape-validated recipe proposal. It can be turned
// into a stored meal through the regular meal creation path.
type Suggestion struct {
	Name              string   `json:"name"`
	Ingredients       []string `json:"ingredients"`
	Recipe            string   `json:"recipe"`
	FamilyPreferences []string `json:"family_preferences"`
	CuisineType       string   `json:"cuisine_type"`
	Difficulty        string   `json:"difficulty"`
	CookingTime       string   `json:"cooking_time"`
}

// Service implements the recipe suggestion gateway.
type Service struct {
	generator outbound.TextGenerator
	logger    *zap.Logger
}

// NewService creates a new suggestion service.
func NewService(generator outbound.TextGenerator, logger *zap.Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logger.Named("suggestion-service"),
	}
}

// Suggest asks the text-generation collaborator for a recipe matching the
// request. Upstream failures, unparseable output and shape violations all
// surface as generation failures; there are no retries at this layer.
func (s *Service) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, apperrors.NewValidationError("prompt is required")
	}

	raw, err := s.generator.Complete(ctx, systemPrompt, buildUserPrompt(prompt, req))
	if err != nil {
		return nil, apperrors.NewSuggestionFailedError("text generation call failed", err)
	}

	suggestion, err := parseSuggestion(raw)
	if err != nil {
		s.logger.Error("Unusable generator output",
			zap.Error(err),
			zap.Int("response_len", len(raw)),
		)
		return nil, apperrors.NewSuggestionFailedError(err.Error(), err)
	}

	s.logger.Info("Recipe suggested",
		zap.String("name", suggestion.Name),
		zap.Int("ingredients", len(suggestion.Ingredients)),
	)
	return suggestion, nil
}

// buildUserPrompt concatenates the free-text request and the optional
// constraints as a sequence of clauses.
func buildUserPrompt(prompt string, req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest a recipe for: %s", prompt)
	if len(req.DietaryPreferences) > 0 {
		fmt.Fprintf(&b, "\nDietary preferences: %s", strings.Join(req.DietaryPreferences, ", "))
	}
	if req.CuisineType != "" {
		fmt.Fprintf(&b, "\nCuisine: %s", req.CuisineType)
	}
	if req.Difficulty != "" {
		fmt.Fprintf(&b, "\nDifficulty: %s", req.Difficulty)
	}
	return b.String()
}

// parseSuggestion decodes the generator reply. A direct JSON parse is tried
// first; on failure the first {...} span is extracted and parsed, since
// models sometimes wrap the object in prose. The result must carry a
// non-blank name and at least one non-blank ingredient.
func parseSuggestion(raw string) (*Suggestion, error) {
	raw = strings.TrimSpace(raw)

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(raw), &suggestion); err != nil {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start == -1 || end <= start {
			return nil, fmt.Errorf("no JSON object found in generator output")
		}
		if err := json.Unmarshal([]byte(raw[start:end+1]), &suggestion); err != nil {
			return nil, fmt.Errorf("failed to parse generator output: %w", err)
		}
	}

	suggestion.Name = strings.TrimSpace(suggestion.Name)
	suggestion.Ingredients = meal.CleanIngredients(suggestion.Ingredients)
	if suggestion.Name == "" {
		return nil, fmt.Errorf("generated recipe has no name")
	}
	if len(suggestion.Ingredients) == 0 {
		return nil, fmt.Errorf("generated recipe has no ingredients")
	}
	return &suggestion, nil
}
