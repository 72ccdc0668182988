// Package domain defines the core types and interfaces for the shopping-list
// generator. All other packages depend on domain; domain depends on nothing.
package domain

// Ingredient is one parsed ingredient line: "300 g peanuts" becomes
// {Amount: 300, Unit: "g", Name: "peanuts"}.
//
// Name is the identity used when merging entries. Unit is carried along but
// never reconciled, so the first unit seen for a name wins.
type Ingredient struct {
	Amount float64
	Unit   string // single token: "g", "tsp", "cup", "large", ...
	Name   string // may contain spaces, may be empty
}

// Recipe is a named, ordered list of ingredients.
type Recipe struct {
	Name        string
	Ingredients []Ingredient
}

// Clone returns a deep copy so callers can hand recipes out without
// exposing the backing ingredient slice.
func (r Recipe) Clone() Recipe {
	out := Recipe{Name: r.Name}
	if r.Ingredients != nil {
		out.Ingredients = make([]Ingredient, len(r.Ingredients))
		copy(out.Ingredients, r.Ingredients)
	}
	return out
}
