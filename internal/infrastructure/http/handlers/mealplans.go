package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	mealplanapp "github.com/mealhaven/api/internal/application/mealplan"
)

// MealPlanHandler serves the date-keyed meal plan endpoints
type MealPlanHandler struct {
	service *mealplanapp.Service
	logger  *zap.Logger
}

// NewMealPlanHandler creates a new meal plan handler
func NewMealPlanHandler(service *mealplanapp.Service, logger *zap.Logger) *MealPlanHandler {
	return &MealPlanHandler{service: service, logger: logger}
}

// UpsertPlanRequest carries a create-or-replace of a date's full slot set
type UpsertPlanRequest struct {
	Date         string  `json:"date" validate:"required"`
	Breakfast    *string `json:"breakfast"`
	MorningSnack *string `json:"morning_snack"`
	Lunch        *string `json:"lunch"`
	Dinner       *string `json:"dinner"`
	EveningSnack *string `json:"evening_snack"`
}

// PatchSlotRequest carries a single-slot update; a null meal_id clears the slot
type PatchSlotRequest struct {
	MealSlot string  `json:"meal_slot" validate:"required"`
	MealID   *string `json:"meal_id"`
}

// List handles GET /meal-plans. With week_start it returns the seven-day
// window; without it, every stored plan.
func (h *MealPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.List(r.Context(), r.URL.Query().Get("week_start"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

// GetByDate handles GET /meal-plans/{date}
func (h *MealPlanHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.GetByDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// Upsert handles POST /meal-plans
func (h *MealPlanHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	plan, err := h.service.Upsert(r.Context(), mealplanapp.UpsertInput{
		Date:         req.Date,
		Breakfast:    req.Breakfast,
		MorningSnack: req.MorningSnack,
		Lunch:        req.Lunch,
		Dinner:       req.Dinner,
		EveningSnack: req.EveningSnack,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// PatchSlot handles PUT /meal-plans/{date}
func (h *MealPlanHandler) PatchSlot(w http.ResponseWriter, r *http.Request) {
	var req PatchSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	plan, err := h.service.PatchSlot(r.Context(), chi.URLParam(r, "date"), req.MealSlot, req.MealID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
