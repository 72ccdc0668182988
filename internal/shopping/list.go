// Package shopping builds and edits consolidated shopping lists.
//
// A List holds at most one entry per ingredient name. Names match exactly
// and case-sensitively. Units are never converted: when two entries share a
// name the amounts are summed and the unit of the first entry is kept.
package shopping

import "github.com/hammamikhairi/shopmania/internal/domain"

// List is an ordered shopping list. Entry order is the order in which
// each name was first added.
type List []domain.Ingredient

// Removal describes what RemoveAmount did.
type Removal int

const (
	// RemovalNone means no entry had the given name.
	RemovalNone Removal = iota
	// RemovalPartial means the entry survived with a smaller amount.
	RemovalPartial
	// RemovalDeleted means the entry was used up and removed.
	RemovalDeleted
)

// String returns a human-readable removal outcome.
func (r Removal) String() string {
	switch r {
	case RemovalPartial:
		return "partial"
	case RemovalDeleted:
		return "deleted"
	default:
		return "none"
	}
}

// Add merges one record into the list. If an entry with the same name
// exists its amount grows by ing.Amount and its unit is kept; otherwise ing
// is appended unchanged.
func (l *List) Add(ing domain.Ingredient) {
	if i := l.index(ing.Name); i >= 0 {
		(*l)[i].Amount += ing.Amount
		return
	}
	*l = append(*l, ing)
}

// RemoveAmount takes amount of the named ingredient off the list. If the
// stored amount is larger the entry is decremented; otherwise it is deleted,
// since a negative balance is never kept. A missing name is a no-op.
func (l *List) RemoveAmount(name string, amount float64) Removal {
	i := l.index(name)
	if i < 0 {
		return RemovalNone
	}
	if (*l)[i].Amount > amount {
		(*l)[i].Amount -= amount
		return RemovalPartial
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
	return RemovalDeleted
}

// Get returns the entry with the given name.
func (l List) Get(name string) (domain.Ingredient, bool) {
	if i := l.index(name); i >= 0 {
		return l[i], true
	}
	return domain.Ingredient{}, false
}

// Len returns the number of entries.
func (l List) Len() int { return len(l) }

// Clone returns an independent copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

func (l List) index(name string) int {
	for i, ing := range l {
		if ing.Name == name {
			return i
		}
	}
	return -1
}
