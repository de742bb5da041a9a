package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mealhaven/api/internal/domain/mealplan"
	"github.com/mealhaven/api/internal/ports/outbound"
)

// MealPlanRepository is an in-memory meal plan store keyed by date.
type MealPlanRepository struct {
	mu    sync.RWMutex
	plans map[string]*mealplan.Plan
}

// NewMealPlanRepository creates an empty in-memory meal plan store.
func NewMealPlanRepository() *MealPlanRepository {
	return &MealPlanRepository{plans: make(map[string]*mealplan.Plan)}
}

func (r *MealPlanRepository) FindByDate(ctx context.Context, date string) (*mealplan.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[date]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return copyPlan(p), nil
}

func (r *MealPlanRepository) FindByDateRange(ctx context.Context, start, end string) ([]*mealplan.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var plans []*mealplan.Plan
	for date, p := range r.plans {
		if date >= start && date <= end {
			plans = append(plans, copyPlan(p))
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Date < plans[j].Date })
	return plans, nil
}

func (r *MealPlanRepository) FindAll(ctx context.Context) ([]*mealplan.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plans := make([]*mealplan.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		plans = append(plans, copyPlan(p))
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Date < plans[j].Date })
	return plans, nil
}

func (r *MealPlanRepository) Upsert(ctx context.Context, p *mealplan.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[p.Date] = copyPlan(p)
	return nil
}

func copyPlan(p *mealplan.Plan) *mealplan.Plan {
	clone := *p
	clone.Breakfast = copyRef(p.Breakfast)
	clone.MorningSnack = copyRef(p.MorningSnack)
	clone.Lunch = copyRef(p.Lunch)
	clone.Dinner = copyRef(p.Dinner)
	clone.EveningSnack = copyRef(p.EveningSnack)
	return &clone
}

func copyRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	v := *ref
	return &v
}
