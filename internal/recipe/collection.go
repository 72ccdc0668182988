// Package recipe provides the ordered recipe collection used for both the
// catalog and the meal plan, plus the built-in catalog.
package recipe

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/shopmania/internal/domain"
	"github.com/hammamikhairi/shopmania/internal/ingredient"
)

// Collection is an ordered sequence of recipes. Names are expected to be
// unique but this is not enforced. A Collection is not safe for concurrent
// use; the engine owns it.
type Collection struct {
	recipes []domain.Recipe
}

// NewCollection returns a collection holding copies of the given recipes.
func NewCollection(recipes ...domain.Recipe) *Collection {
	c := &Collection{}
	for _, r := range recipes {
		c.Add(r)
	}
	return c
}

// Add appends a recipe. It never fails and never checks for duplicates.
func (c *Collection) Add(r domain.Recipe) {
	c.recipes = append(c.recipes, r.Clone())
}

// Find returns the first recipe whose name equals name exactly.
func (c *Collection) Find(name string) (domain.Recipe, bool) {
	return c.FindFunc(func(n string) bool { return n == name })
}

// FindFunc returns the first recipe whose name satisfies match. Callers that
// want case-insensitive lookup normalise inside match.
func (c *Collection) FindFunc(match func(name string) bool) (domain.Recipe, bool) {
	for _, r := range c.recipes {
		if match(r.Name) {
			return r.Clone(), true
		}
	}
	return domain.Recipe{}, false
}

// Remove deletes the first recipe whose name equals name exactly. It reports
// whether anything was removed; an absent name is not an error.
func (c *Collection) Remove(name string) bool {
	for i, r := range c.recipes {
		if r.Name == name {
			c.recipes = append(c.recipes[:i], c.recipes[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a copy of the recipes in order.
func (c *Collection) All() []domain.Recipe {
	out := make([]domain.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Names returns the recipe names in order.
func (c *Collection) Names() []string {
	out := make([]string, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.Name
	}
	return out
}

// Len returns the number of recipes.
func (c *Collection) Len() int { return len(c.recipes) }

// Build assembles a recipe from a name and ingredient lines collected one at
// a time. Collection stops at the first empty line, matching the interactive
// "blank line ends the recipe" convention. Every consumed line must parse.
func Build(name string, lines []string) (domain.Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Recipe{}, domain.ErrEmptyRecipeName
	}

	r := domain.Recipe{Name: name}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			break
		}
		ing, err := ingredient.Parse(line)
		if err != nil {
			return domain.Recipe{}, fmt.Errorf("recipe %q line %d: %w", name, i+1, err)
		}
		r.Ingredients = append(r.Ingredients, ing)
	}
	return r, nil
}

// FromRaw builds a recipe from a name and its comma-joined ingredient string.
func FromRaw(name, raw string) (domain.Recipe, error) {
	ings, err := ingredient.Decode(raw)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("recipe %q: %w", name, err)
	}
	return domain.Recipe{Name: name, Ingredients: ings}, nil
}
