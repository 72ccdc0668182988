package shopping

import "github.com/hammamikhairi/shopmania/internal/domain"

// Aggregate folds the ingredients of every recipe, in order, into one list.
// Entries appear in the order their names were first seen across all
// recipes; later occurrences only add to the amount. The recipes are not
// modified, so calling Aggregate again on the same input yields the same
// list.
func Aggregate(recipes []domain.Recipe) List {
	var (
		out   List
		index = make(map[string]int)
	)
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			if i, ok := index[ing.Name]; ok {
				out[i].Amount += ing.Amount
				continue
			}
			index[ing.Name] = len(out)
			out = append(out, ing)
		}
	}
	return out
}
