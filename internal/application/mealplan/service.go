// Package mealplan provides the application layer for date-keyed meal plans.
package mealplan

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mealhaven/api/internal/domain/mealplan"
	"github.com/mealhaven/api/internal/ports/outbound"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

// UpsertInput carries the five slot references for a create-or-replace of a
// plan date. Nil slots are stored as empty.
type UpsertInput struct {
	Date         string
	Breakfast    *string
	MorningSnack *string
	Lunch        *string
	Dinner       *string
	EveningSnack *string
}

// Service implements the meal plan store use cases.
type Service struct {
	repo   outbound.MealPlanRepository
	logger *zap.Logger
}

// NewService creates a new meal plan service.
func NewService(repo outbound.MealPlanRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("mealplan-service"),
	}
}

// GetByDate returns the stored plan for a date, or a synthetic all-empty plan
// when none exists. The synthetic plan is not persisted.
func (s *Service) GetByDate(ctx context.Context, date string) (*mealplan.Plan, error) {
	if err := mealplan.ValidateDate(date); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	plan, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return mealplan.EmptyForDate(date), nil
		}
		return nil, apperrors.NewDatabaseError("find meal plan", err)
	}
	return plan, nil
}

// Upsert creates the plan for a date or replaces the slot values of the
// existing record, preserving its identity.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*mealplan.Plan, error) {
	if err := mealplan.ValidateDate(input.Date); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	plan, err := s.GetByDate(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	plan.Breakfast = input.Breakfast
	plan.MorningSnack = input.MorningSnack
	plan.Lunch = input.Lunch
	plan.Dinner = input.Dinner
	plan.EveningSnack = input.EveningSnack

	if err := s.repo.Upsert(ctx, plan); err != nil {
		return nil, apperrors.NewDatabaseError("upsert meal plan", err)
	}
	return plan, nil
}

// PatchSlot sets a single slot of a date's plan to a meal reference (or nil
// to clear it) and persists the record, creating it when absent. The slot
// name is validated against the closed slot set.
func (s *Service) PatchSlot(ctx context.Context, date, slotName string, mealID *string) (*mealplan.Plan, error) {
	slot, err := mealplan.ParseSlot(slotName)
	if err != nil {
		return nil, apperrors.NewInvalidMealSlotError(slotName)
	}
	if err := mealplan.ValidateDate(date); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	plan, err := s.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	plan.SetSlot(slot, mealID)

	if err := s.repo.Upsert(ctx, plan); err != nil {
		return nil, apperrors.NewDatabaseError("upsert meal plan", err)
	}

	s.logger.Info("Meal plan slot updated",
		zap.String("date", date),
		zap.String("slot", string(slot)),
	)
	return plan, nil
}

// List returns stored plans. With a week start it returns the inclusive
// seven-day window; with an empty week start it returns everything.
func (s *Service) List(ctx context.Context, weekStart string) ([]*mealplan.Plan, error) {
	if weekStart == "" {
		plans, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, apperrors.NewDatabaseError("list meal plans", err)
		}
		return plans, nil
	}

	start, end, err := mealplan.WeekRange(weekStart)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	plans, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list meal plans", err)
	}
	return plans, nil
}
