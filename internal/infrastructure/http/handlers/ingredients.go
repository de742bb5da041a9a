package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	ingredientapp "github.com/mealhaven/api/internal/application/ingredient"
	"github.com/mealhaven/api/internal/domain/ingredient"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

// IngredientHandler serves the ingredient catalog endpoints
type IngredientHandler struct {
	service *ingredientapp.Service
	logger  *zap.Logger
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(service *ingredientapp.Service, logger *zap.Logger) *IngredientHandler {
	return &IngredientHandler{service: service, logger: logger}
}

// TrackRequest records one usage of an ingredient name
type TrackRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
}

// SearchRequest is the catalog search payload
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// SeedRequest optionally overrides the built-in common-ingredient canon
type SeedRequest struct {
	Names []string `json:"names"`
}

// Track handles POST /ingredients
func (h *IngredientHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req TrackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	category, err := ingredient.ParseCategory(req.Category)
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError(err.Error()))
		return
	}

	entry, err := h.service.FindOrIncrement(r.Context(), req.Name, category)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Search handles POST /ingredients/search
func (h *IngredientHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	results, err := h.service.Search(r.Context(), req.Query, req.Limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Popular handles GET /ingredients/popular?limit=
func (h *IngredientHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := h.service.Popular(r.Context(), limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Seed handles POST /ingredients/seed. An empty body or empty names list
// seeds the built-in canon.
func (h *IngredientHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req SeedRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, h.logger, err)
			return
		}
	}

	added, err := h.service.SeedCommon(r.Context(), req.Names)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"added": added})
}
