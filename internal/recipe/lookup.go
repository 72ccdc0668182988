package recipe

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/hammamikhairi/shopmania/internal/domain"
)

// Fold returns the case-folded form of s for case-insensitive comparisons.
// A Caser carries state, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether two recipe names match ignoring case.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// IngredientAmount finds the first ingredient in r whose name contains query,
// ignoring case, and returns it. This is a loose lookup for answering "how
// much X does this recipe need"; shopping-list merging never uses it.
func IngredientAmount(query string, r domain.Recipe) (domain.Ingredient, bool) {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return domain.Ingredient{}, false
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(Fold(ing.Name), q) {
			return ing, true
		}
	}
	return domain.Ingredient{}, false
}
