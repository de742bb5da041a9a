package handlers

import (
	"net/http"

	"go.uber.org/zap"

	mealapp "github.com/mealhaven/api/internal/application/meal"
	suggestionapp "github.com/mealhaven/api/internal/application/suggestion"
)

// SuggestionHandler serves the recipe suggestion endpoints
type SuggestionHandler struct {
	suggestions *suggestionapp.Service
	meals       *mealapp.Service
	logger      *zap.Logger
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestions *suggestionapp.Service, meals *mealapp.Service, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions, meals: meals, logger: logger}
}

// SuggestRequest carries the free-text prompt and optional constraints
type SuggestRequest struct {
	Prompt             string   `json:"prompt" validate:"required"`
	DietaryPreferences []string `json:"dietary_preferences"`
	CuisineType        string   `json:"cuisine_type"`
	Difficulty         string   `json:"difficulty"`
}

// FromSuggestionRequest is a suggestion-shaped meal creation payload
type FromSuggestionRequest struct {
	Name              string   `json:"name" validate:"required"`
	Ingredients       []string `json:"ingredients" validate:"required,min=1"`
	Recipe            string   `json:"recipe"`
	FamilyPreferences []string `json:"family_preferences"`
}

// Suggest handles POST /suggest-recipe
func (h *SuggestionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	suggestion, err := h.suggestions.Suggest(r.Context(), suggestionapp.Request{
		Prompt:             req.Prompt,
		DietaryPreferences: req.DietaryPreferences,
		CuisineType:        req.CuisineType,
		Difficulty:         req.Difficulty,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

// CreateMeal handles POST /create-meal-from-suggestion. The payload goes
// through the same validation path as direct meal creation.
func (h *SuggestionHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req FromSuggestionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	created, err := h.meals.Create(r.Context(), mealapp.CreateMealInput{
		Name:              req.Name,
		Ingredients:       req.Ingredients,
		Recipe:            req.Recipe,
		FamilyPreferences: req.FamilyPreferences,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}
