// Package testutils provides test data factories
package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mealhaven/api/internal/domain/meal"
)

// MealFactory creates test meals with realistic data
type MealFactory struct {
	faker *gofakeit.Faker
}

// NewMealFactory creates a new meal factory with a fixed seed for
// reproducible test data
func NewMealFactory() *MealFactory {
	return &MealFactory{faker: gofakeit.New(42)}
}

// Name generates a plausible dish name
func (f *MealFactory) Name() string {
	return fmt.Sprintf("%s %s", f.faker.Adjective(), f.faker.Dinner())
}

// Ingredients generates a non-empty ingredient list
func (f *MealFactory) Ingredients(n int) []string {
	if n <= 0 {
		n = 3
	}
	ingredients := make([]string, n)
	for i := range ingredients {
		ingredients[i] = f.faker.Fruit()
	}
	return ingredients
}

// Build creates a valid domain meal
func (f *MealFactory) Build() *meal.Meal {
	m, err := meal.New(
		f.Name(),
		f.Ingredients(3),
		f.faker.Sentence(10),
		[]string{"dad", "mom"},
	)
	if err != nil {
		panic(fmt.Sprintf("meal factory produced invalid meal: %v", err))
	}
	return m
}
