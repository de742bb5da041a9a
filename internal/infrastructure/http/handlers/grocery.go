package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	groceryapp "github.com/mealhaven/api/internal/application/grocery"
	"github.com/mealhaven/api/internal/domain/ingredient"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

// GroceryHandler serves the grocery list endpoints
type GroceryHandler struct {
	service *groceryapp.Service
	logger  *zap.Logger
}

// NewGroceryHandler creates a new grocery list handler
func NewGroceryHandler(service *groceryapp.Service, logger *zap.Logger) *GroceryHandler {
	return &GroceryHandler{service: service, logger: logger}
}

// CreateListRequest is the grocery list creation payload
type CreateListRequest struct {
	Name          string   `json:"name"`
	WeekStart     string   `json:"week_start" validate:"required"`
	Collaborators []string `json:"collaborators"`
	IsShared      bool     `json:"is_shared"`
	AutoGenerate  bool     `json:"auto_generate"`
}

// UpdateListRequest is the partial list-metadata update payload
type UpdateListRequest struct {
	Name          *string   `json:"name"`
	Collaborators *[]string `json:"collaborators"`
	IsShared      *bool     `json:"is_shared"`
}

// ItemRequest is the manual item-add payload
type ItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes"`
}

// UpdateItemRequest is the partial item update payload
type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Checked  *bool   `json:"checked"`
	Quantity *string `json:"quantity"`
	Notes    *string `json:"notes"`
}

// Create handles POST /grocery-lists
func (h *GroceryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	list, err := h.service.Create(r.Context(), groceryapp.CreateListInput{
		Name:          req.Name,
		WeekStart:     req.WeekStart,
		Collaborators: req.Collaborators,
		IsShared:      req.IsShared,
		AutoGenerate:  req.AutoGenerate,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// List handles GET /grocery-lists
func (h *GroceryHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// Get handles GET /grocery-lists/{id}
func (h *GroceryHandler) Get(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Update handles PUT /grocery-lists/{id}
func (h *GroceryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	list, err := h.service.UpdateMeta(r.Context(), chi.URLParam(r, "id"), groceryapp.UpdateListInput{
		Name:          req.Name,
		Collaborators: req.Collaborators,
		IsShared:      req.IsShared,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Delete handles DELETE /grocery-lists/{id}
func (h *GroceryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Grocery list deleted successfully"})
}

// AddItem handles POST /grocery-lists/{id}/items
func (h *GroceryHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	category, err := ingredient.ParseCategory(req.Category)
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError(err.Error()))
		return
	}

	list, err := h.service.AddItem(r.Context(), chi.URLParam(r, "id"), groceryapp.ItemInput{
		Name:     req.Name,
		Category: category,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// UpdateItem handles PUT /grocery-lists/{id}/items/{itemId}
func (h *GroceryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	input := groceryapp.UpdateItemInput{
		Name:     req.Name,
		Checked:  req.Checked,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	}
	if req.Category != nil {
		category, err := ingredient.ParseCategory(*req.Category)
		if err != nil {
			writeError(w, r, h.logger, apperrors.NewBadRequestError(err.Error()))
			return
		}
		input.Category = &category
	}

	list, err := h.service.UpdateItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), input)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DeleteItem handles DELETE /grocery-lists/{id}/items/{itemId}
func (h *GroceryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.DeleteItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
