package grocery

import (
	"sort"
	"strings"

	"github.com/mealhaven/api/internal/domain/ingredient"
)

// categoryPriority fixes the shopping walk order of the category buckets.
// Categories outside this table sort after all named ones.
var categoryPriority = map[ingredient.Category]int{
	ingredient.CategoryProduce:   0,
	ingredient.CategoryDairy:     1,
	ingredient.CategoryProtein:   2,
	ingredient.CategoryGrain:     3,
	ingredient.CategorySpice:     4,
	ingredient.CategoryCondiment: 5,
	ingredient.CategoryOil:       6,
	ingredient.CategoryFruit:     7,
	ingredient.CategoryNut:       8,
	ingredient.CategoryOther:     9,
}

func priority(c ingredient.Category) int {
	if p, ok := categoryPriority[c]; ok {
		return p
	}
	return len(categoryPriority)
}

// SortItems orders items by category bucket, then alphabetically by name
// within each bucket. Unknown categories land after every named bucket,
// ordered by category name to keep the output deterministic.
func SortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := priority(items[i].Category), priority(items[j].Category)
		if pi != pj {
			return pi < pj
		}
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}
