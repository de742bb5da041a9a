// Package grocery provides the application layer for grocery lists: the
// week aggregation builder and item-level CRUD on stored lists.
package grocery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealhaven/api/internal/domain/grocery"
	"github.com/mealhaven/api/internal/domain/ingredient"
	"github.com/mealhaven/api/internal/domain/meal"
	"github.com/mealhaven/api/internal/domain/mealplan"
	"github.com/mealhaven/api/internal/ports/outbound"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

// maxNotedMeals caps how many meal names the item note spells out before
// collapsing the rest into a "+K more" suffix.
const maxNotedMeals = 3

// CategoryResolver resolves a grocery category for an ingredient name,
// preferring catalog data over the keyword fallback.
type CategoryResolver interface {
	CategoryForName(ctx context.Context, name string) ingredient.Category
}

// CreateListInput carries a grocery list creation request.
type CreateListInput struct {
	Name          string
	WeekStart     string
	Collaborators []string
	IsShared      bool
	AutoGenerate  bool
}

// UpdateListInput carries a partial update of list metadata.
type UpdateListInput struct {
	Name          *string
	Collaborators *[]string
	IsShared      *bool
}

// ItemInput carries a manual item add.
type ItemInput struct {
	Name     string
	Category ingredient.Category
	Quantity string
	Notes    string
}

// UpdateItemInput carries a partial update of one item.
type UpdateItemInput struct {
	Name     *string
	Category *ingredient.Category
	Checked  *bool
	Quantity *string
	Notes    *string
}

// Service implements the grocery list use cases.
type Service struct {
	lists      outbound.GroceryListRepository
	plans      outbound.MealPlanRepository
	meals      outbound.MealRepository
	categories CategoryResolver
	logger     *zap.Logger
}

// NewService creates a new grocery list service.
func NewService(
	lists outbound.GroceryListRepository,
	plans outbound.MealPlanRepository,
	meals outbound.MealRepository,
	categories CategoryResolver,
	logger *zap.Logger,
) *Service {
	return &Service{
		lists:      lists,
		plans:      plans,
		meals:      meals,
		categories: categories,
		logger:     logger.Named("grocery-service"),
	}
}

// Create builds a grocery list for a week. When auto-generation is requested
// the list is populated from the week's meal plans; a week with no plans
// yields an empty list, not an error. The aggregation reads each store once
// with no transactional wrapping, so concurrent edits may be partially seen.
func (s *Service) Create(ctx context.Context, input CreateListInput) (*grocery.List, error) {
	start, end, err := mealplan.WeekRange(input.WeekStart)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = fmt.Sprintf("Groceries for week of %s", input.WeekStart)
	}

	list := grocery.NewList(name, input.WeekStart, input.Collaborators, input.IsShared)

	if input.AutoGenerate {
		items, err := s.aggregateWeek(ctx, start, end)
		if err != nil {
			return nil, err
		}
		list.Items = items
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return nil, apperrors.NewDatabaseError("create grocery list", err)
	}

	s.logger.Info("Grocery list created",
		zap.String("list_id", list.ID.String()),
		zap.String("week_start", list.WeekStart),
		zap.Int("items", len(list.Items)),
		zap.Bool("auto_generated", input.AutoGenerate),
	)
	return list, nil
}

// aggregateWeek turns the week's meal plans into sorted, annotated items:
// fetch plans, resolve referenced meals, count ingredient occurrences per
// (plan, slot) reference, attach categories, then sort by category bucket.
func (s *Service) aggregateWeek(ctx context.Context, start, end string) ([]grocery.Item, error) {
	plans, err := s.plans.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, apperrors.NewDatabaseError("load meal plans", err)
	}

	distinct := make(map[string]bool)
	var ids []string
	for _, plan := range plans {
		for _, ref := range plan.MealRefs() {
			if !distinct[ref] {
				distinct[ref] = true
				ids = append(ids, ref)
			}
		}
	}

	meals, err := s.meals.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewDatabaseError("load meals", err)
	}
	byID := make(map[string]*meal.Meal, len(meals))
	for _, m := range meals {
		byID[m.ID.String()] = m
	}

	type bucket struct {
		name      string
		category  ingredient.Category
		count     int
		mealNames []string
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, plan := range plans {
		for _, ref := range plan.MealRefs() {
			m, ok := byID[ref]
			if !ok {
				// Dangling reference: the meal was deleted after planning.
				continue
			}
			for _, ingName := range m.Ingredients {
				key := strings.ToLower(ingName)
				b, ok := buckets[key]
				if !ok {
					b = &bucket{
						name:     ingName,
						category: s.categories.CategoryForName(ctx, ingName),
					}
					buckets[key] = b
					order = append(order, key)
				}
				b.count++
				if !containsString(b.mealNames, m.Name) {
					b.mealNames = append(b.mealNames, m.Name)
				}
			}
		}
	}

	items := make([]grocery.Item, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		items = append(items, grocery.Item{
			ID:       uuid.New(),
			Name:     b.name,
			Category: b.category,
			Quantity: quantityNote(b.count),
			Notes:    mealNote(b.mealNames),
			AddedBy:  grocery.AddedByAutoGenerated,
		})
	}

	grocery.SortItems(items)
	return items, nil
}

func quantityNote(count int) string {
	if count > 1 {
		return fmt.Sprintf("Used in %d recipes", count)
	}
	return ""
}

func mealNote(names []string) string {
	if len(names) == 0 {
		return ""
	}
	note := "For: " + strings.Join(names[:min(len(names), maxNotedMeals)], ", ")
	if extra := len(names) - maxNotedMeals; extra > 0 {
		note += fmt.Sprintf(" +%d more", extra)
	}
	return note
}

// List returns all stored grocery lists.
func (s *Service) List(ctx context.Context) ([]*grocery.List, error) {
	lists, err := s.lists.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list grocery lists", err)
	}
	return lists, nil
}

// Get returns one grocery list by ID.
func (s *Service) Get(ctx context.Context, id string) (*grocery.List, error) {
	list, err := s.lists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, apperrors.NewGroceryListNotFoundError(id)
		}
		return nil, apperrors.NewDatabaseError("find grocery list", err)
	}
	return list, nil
}

// UpdateMeta patches list metadata (name, collaborators, shared flag).
func (s *Service) UpdateMeta(ctx context.Context, id string, input UpdateListInput) (*grocery.List, error) {
	list, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("grocery list name must not be blank")
		}
		list.Name = name
	}
	if input.Collaborators != nil {
		list.Collaborators = *input.Collaborators
	}
	if input.IsShared != nil {
		list.IsShared = *input.IsShared
	}
	list.Touch()

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, apperrors.NewDatabaseError("update grocery list", err)
	}
	return list, nil
}

// Delete removes a grocery list and its embedded items.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.lists.Delete(ctx, id); err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return apperrors.NewGroceryListNotFoundError(id)
		}
		return apperrors.NewDatabaseError("delete grocery list", err)
	}
	return nil
}

// AddItem appends a manually entered item to a stored list. Aggregation is
// not re-run; the item's category falls back to the keyword classifier when
// none is given.
func (s *Service) AddItem(ctx context.Context, listID string, input ItemInput) (*grocery.List, error) {
	list, err := s.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError(grocery.ErrItemNameRequired.Error())
	}

	category := input.Category
	if category == ingredient.CategoryNone {
		category = ingredient.Classify(name)
	}

	list.Items = append(list.Items, grocery.Item{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Quantity: input.Quantity,
		Notes:    input.Notes,
	})
	list.Touch()

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, apperrors.NewDatabaseError("update grocery list", err)
	}
	return list, nil
}

// UpdateItem patches one item of a stored list.
func (s *Service) UpdateItem(ctx context.Context, listID, itemID string, input UpdateItemInput) (*grocery.List, error) {
	list, err := s.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	idx := list.FindItem(itemID)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError("grocery item").WithMetadata("item_id", itemID)
	}

	item := &list.Items[idx]
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.NewValidationError(grocery.ErrItemNameRequired.Error())
		}
		item.Name = name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Checked != nil {
		item.Checked = *input.Checked
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}
	list.Touch()

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, apperrors.NewDatabaseError("update grocery list", err)
	}
	return list, nil
}

// DeleteItem removes one item from a stored list.
func (s *Service) DeleteItem(ctx context.Context, listID, itemID string) (*grocery.List, error) {
	list, err := s.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	idx := list.FindItem(itemID)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError("grocery item").WithMetadata("item_id", itemID)
	}

	list.Items = append(list.Items[:idx], list.Items[idx+1:]...)
	list.Touch()

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, apperrors.NewDatabaseError("update grocery list", err)
	}
	return list, nil
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
