package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	mealapp "github.com/mealhaven/api/internal/application/meal"
)

// MealHandler serves the meal CRUD endpoints
type MealHandler struct {
	service *mealapp.Service
	logger  *zap.Logger
}

// NewMealHandler creates a new meal handler
func NewMealHandler(service *mealapp.Service, logger *zap.Logger) *MealHandler {
	return &MealHandler{service: service, logger: logger}
}

// MealRequest is the create and full-replace payload for meals
type MealRequest struct {
	Name              string   `json:"name" validate:"required"`
	Ingredients       []string `json:"ingredients" validate:"required,min=1"`
	Recipe            string   `json:"recipe"`
	FamilyPreferences []string `json:"family_preferences"`
}

// Create handles POST /meals
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req MealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	created, err := h.service.Create(r.Context(), mealapp.CreateMealInput{
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

// List handles GET /meals
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	meals, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

// Get handles GET /meals/{id}
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	entity, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

// Update handles PUT /meals/{id}
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req MealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), mealapp.CreateMealInput{
		Name:              req.Name,
		Ingredients:       req.Ingredients,
		Recipe:            req.Recipe,
		FamilyPreferences: req.FamilyPreferences,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /meals/{id}
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Meal deleted successfully"})
}
