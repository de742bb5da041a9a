package ingredient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mealhaven/api/internal/domain/ingredient"
	"github.com/mealhaven/api/internal/infrastructure/persistence/memory"
	apperrors "github.com/mealhaven/api/pkg/errors"
)

func newTestService() *Service {
	return NewService(memory.NewIngredientRepository(), zap.NewNop())
}

func TestFindOrIncrement(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	t.Run("creates new entry with usage one", func(t *testing.T) {
		entry, err := service.FindOrIncrement(ctx, "olive oil", ingredient.CategoryNone)
		require.NoError(t, err)

		assert.Equal(t, "Olive Oil", entry.Name)
		assert.Equal(t, 1, entry.UsageCount)
		assert.False(t, entry.IsCommon)
	})

	t.Run("increments case-insensitively", func(t *testing.T) {
		entry, err := service.FindOrIncrement(ctx, "OLIVE OIL", ingredient.CategoryNone)
		require.NoError(t, err)

		assert.Equal(t, "Olive Oil", entry.Name)
		assert.Equal(t, 2, entry.UsageCount)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := service.FindOrIncrement(ctx, "   ", ingredient.CategoryNone)
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

func TestSearchOrdering(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	for i := 0; i < 3; i++ {
		_, err := service.FindOrIncrement(ctx, "tomato", ingredient.CategoryNone)
		require.NoError(t, err)
	}
	_, err := service.FindOrIncrement(ctx, "tomato paste", ingredient.CategoryNone)
	require.NoError(t, err)

	results, err := service.Search(ctx, "tomato", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Tomato", results[0].Name)
	assert.Equal(t, 3, results[0].UsageCount)
	assert.Equal(t, "Tomato Paste", results[1].Name)
}

func TestPopular(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	_, err := service.FindOrIncrement(ctx, "rice", ingredient.CategoryNone)
	require.NoError(t, err)
	_, err = service.FindOrIncrement(ctx, "rice", ingredient.CategoryNone)
	require.NoError(t, err)
	_, err = service.FindOrIncrement(ctx, "beans", ingredient.CategoryNone)
	require.NoError(t, err)

	results, err := service.Popular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Rice", results[0].Name)
}

func TestSeedCommon(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	added, err := service.SeedCommon(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, len(ingredient.CommonCanon()), added)

	// re-running adds nothing
	added, err = service.SeedCommon(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	entry, err := service.repo.FindByName(ctx, "Olive Oil")
	require.NoError(t, err)
	assert.True(t, entry.IsCommon)
	assert.Equal(t, 0, entry.UsageCount)
	assert.Equal(t, ingredient.CategoryOil, entry.Category)
}

func TestSeedCommonCustomNames(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	added, err := service.SeedCommon(ctx, []string{"dragon fruit", " ", "Dragon Fruit"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	entry, err := service.repo.FindByName(ctx, "dragon fruit")
	require.NoError(t, err)
	assert.Equal(t, ingredient.CategoryNone, entry.Category)
}

func TestCategoryForName(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	_, err := service.SeedCommon(ctx, []string{"olive oil"})
	require.NoError(t, err)

	// catalog category wins
	assert.Equal(t, ingredient.CategoryOil, service.CategoryForName(ctx, "olive oil"))
	// no catalog entry: keyword fallback
	assert.Equal(t, ingredient.CategoryProduce, service.CategoryForName(ctx, "red onion"))
	assert.Equal(t, ingredient.CategoryOther, service.CategoryForName(ctx, "mystery powder"))
}
