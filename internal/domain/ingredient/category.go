package ingredient

import "fmt"

// Category is the closed set of grocery categories an ingredient can carry.
// CategoryNone marks a catalog entry that has not been categorized yet.
type Category string

const (
	CategoryNone      Category = ""
	CategoryProduce   Category = "produce"
	CategoryVegetable Category = "vegetable"
	CategoryDairy     Category = "dairy"
	CategoryProtein   Category = "protein"
	CategoryGrain     Category = "grain"
	CategorySpice     Category = "spice"
	CategoryCondiment Category = "condiment"
	CategoryOil       Category = "oil"
	CategoryFruit     Category = "fruit"
	CategoryNut       Category = "nut"
	CategoryOther     Category = "other"
)

// ParseCategory validates an untrusted category name. The empty string is
// accepted as CategoryNone.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryNone, CategoryProduce, CategoryVegetable, CategoryDairy,
		CategoryProtein, CategoryGrain, CategorySpice, CategoryCondiment,
		CategoryOil, CategoryFruit, CategoryNut, CategoryOther:
		return Category(s), nil
	}
	return "", fmt.Errorf("invalid ingredient category %q", s)
}
