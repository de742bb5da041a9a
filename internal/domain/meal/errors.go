package meal

import "errors"

// Domain errors for meal operations

var (
	ErrNameRequired  = errors.New("meal name is required")
	ErrNoIngredients = errors.New("at least one ingredient is required")
	ErrBlankRecipe   = errors.New("recipe must not be blank when provided")
)
