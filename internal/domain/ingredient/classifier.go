package ingredient

import "strings"

// The two classifiers below are pure keyword lookups, independent of storage.
//
// Classify is the grocery-list fallback: substring matching against per
// category word lists, defaulting to CategoryOther. SeedCategory tags the
// pre-seeded common catalog: exact membership in the canon word lists,
// defaulting to CategoryNone.

// classifyOrder fixes the evaluation order so an ingredient matching several
// lists resolves deterministically (eggplant is produce, not protein).
var classifyOrder = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryProtein,
	CategoryGrain,
	CategorySpice,
	CategoryCondiment,
	CategoryFruit,
}

var classifyKeywords = map[Category][]string{
	CategoryProduce: {
		"onion", "garlic", "tomato", "potato", "carrot", "pepper", "lettuce",
		"spinach", "broccoli", "cucumber", "celery", "mushroom", "zucchini",
		"eggplant", "cabbage", "kale", "cauliflower", "avocado", "cilantro",
		"parsley", "basil", "ginger", "scallion", "leek", "corn", "pea", "bean",
	},
	CategoryDairy: {
		"milk", "cheese", "butter", "yogurt", "cream", "mozzarella", "parmesan",
		"cheddar", "feta", "ricotta",
	},
	CategoryProtein: {
		"chicken", "beef", "pork", "fish", "salmon", "tuna", "shrimp", "turkey",
		"tofu", "lamb", "bacon", "sausage", "ham", "egg", "steak",
	},
	CategoryGrain: {
		"flour", "rice", "pasta", "bread", "oat", "quinoa", "barley", "cereal",
		"tortilla", "noodle", "couscous", "breadcrumb",
	},
	CategorySpice: {
		"salt", "cumin", "paprika", "cinnamon", "oregano", "thyme", "rosemary",
		"chili powder", "turmeric", "nutmeg", "clove", "coriander", "curry",
		"cayenne", "vanilla",
	},
	CategoryCondiment: {
		"sauce", "ketchup", "mustard", "mayonnaise", "vinegar", "soy", "honey",
		"syrup", "jam", "dressing", "salsa", "pesto", "broth", "stock",
	},
	CategoryFruit: {
		"apple", "banana", "orange", "lemon", "lime", "berry", "strawberry",
		"blueberry", "raspberry", "grape", "mango", "peach", "pear", "pineapple",
		"melon", "cherry",
	},
}

// Classify resolves a grocery category for an ingredient name using substring
// keyword matching. Names matching no list are CategoryOther.
func Classify(name string) Category {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return CategoryOther
	}
	for _, category := range classifyOrder {
		for _, keyword := range classifyKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return CategoryOther
}

var seedMembership = map[Category][]string{
	CategorySpice: {
		"salt", "black pepper", "paprika", "cumin", "cinnamon", "oregano",
		"thyme", "chili powder", "curry powder", "turmeric",
	},
	CategoryProtein: {
		"chicken breast", "ground beef", "eggs", "salmon", "tofu", "bacon",
	},
	CategoryVegetable: {
		"onion", "garlic", "tomato", "potato", "carrot", "bell pepper",
		"spinach", "broccoli", "cucumber", "mushroom",
	},
	CategoryDairy: {
		"milk", "butter", "cheese", "yogurt", "heavy cream", "parmesan",
	},
	CategoryFruit: {
		"lemon", "lime", "apple", "banana", "orange",
	},
	CategoryGrain: {
		"flour", "rice", "pasta", "bread", "oats",
	},
	CategoryOil: {
		"olive oil", "vegetable oil", "sesame oil", "coconut oil",
	},
	CategoryCondiment: {
		"soy sauce", "ketchup", "mustard", "mayonnaise", "honey", "vinegar",
	},
	CategoryNut: {
		"almonds", "peanuts", "walnuts", "cashews", "peanut butter",
	},
}

// SeedCategory tags a canonical common-ingredient name by exact membership in
// the fixed word lists. Unmatched names stay uncategorized.
func SeedCategory(name string) Category {
	lower := strings.ToLower(strings.TrimSpace(name))
	for category, names := range seedMembership {
		for _, candidate := range names {
			if lower == candidate {
				return category
			}
		}
	}
	return CategoryNone
}

// CommonCanon is the built-in list of household staples seeded into the
// catalog by the seed operation.
func CommonCanon() []string {
	canon := make([]string, 0, 64)
	for _, category := range []Category{
		CategorySpice, CategoryProtein, CategoryVegetable, CategoryDairy,
		CategoryFruit, CategoryGrain, CategoryOil, CategoryCondiment, CategoryNut,
	} {
		canon = append(canon, seedMembership[category]...)
	}
	return canon
}
