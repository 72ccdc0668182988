package recipe

import (
	"github.com/hammamikhairi/shopmania/internal/domain"
	"github.com/hammamikhairi/shopmania/internal/ingredient"
	"github.com/hammamikhairi/shopmania/internal/logger"
)

// Built-in recipe names.
const (
	ChocolatePeanutButterShake = "chocolate peanut butter banana shake"
	ChocolateBrownies          = "chocolate brownies"
	Seitan                     = "seitan"
	CinnamonRolls              = "cinnamon rolls"
	PeanutButter               = "peanut butter"
	Omelette                   = "omelette"
)

// builtins is the default cook book, in display order.
var builtins = []struct {
	name string
	raw  string
}{
	{ChocolatePeanutButterShake, "1 large banana,2 tbsp peanut butter,2 pitted dates,1 tbsp cacao powder,240 ml almond milk,0.5 cup ice,1 tbsp cocao nibs,1 tbsp flax seed"},
	{ChocolateBrownies, "1 tbsp flax seed,3 tbsp water,115 g Nuttelex,200 g dark chocolate,150 g sugar,1 tsp vanilla extract,125 g flour,30 g cacao powder,0.5 tsp salt"},
	{Seitan, "1 cup vital wheat gluten,0.25 cup nutritional yeast,1 tsp garlic powder,1 tsp onion powder,0.75 cup vegetable stock,2 tbsp soy sauce,1 tbsp oil"},
	{CinnamonRolls, "480 ml almond milk,115 g Nuttelex,50 g sugar,7 g active dry yeast,5.5 cup flour,1 tsp salt,170 g Nuttelex,165 g brown sugar,2 tbsp cinnamon,160 g powdered sugar,30 ml almond milk,0.5 tsp vanilla extract"},
	{PeanutButter, "300 g peanuts,0.5 tsp salt,2 tsp oil"},
	{Omelette, "1 cup mung bean,0.5 tsp salt,0.75 tsp pink salt,0.25 tsp garlic powder,0.25 tsp onion powder,0.125 tsp pepper,0.25 tsp turmeric,1 cup soy milk,1 tsp oil"},
}

// Builtins returns fresh copies of the built-in recipes.
func Builtins() []domain.Recipe {
	out := make([]domain.Recipe, 0, len(builtins))
	for _, b := range builtins {
		out = append(out, domain.Recipe{Name: b.name, Ingredients: ingredient.MustDecode(b.raw)})
	}
	return out
}

// CatalogOption configures NewCatalog.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	builtins bool
	extra    []domain.Recipe
}

// WithoutBuiltins starts the catalog empty instead of with the cook book.
func WithoutBuiltins() CatalogOption {
	return func(c *catalogConfig) { c.builtins = false }
}

// WithRecipes appends recipes after the built-ins, in order.
func WithRecipes(recipes ...domain.Recipe) CatalogOption {
	return func(c *catalogConfig) { c.extra = append(c.extra, recipes...) }
}

// NewCatalog creates the recipe catalog: the built-in cook book followed by
// any configured recipes.
func NewCatalog(log *logger.Logger, opts ...CatalogOption) *Collection {
	cfg := catalogConfig{builtins: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := NewCollection()
	if cfg.builtins {
		for _, r := range Builtins() {
			c.Add(r)
		}
	}
	for _, r := range cfg.extra {
		c.Add(r)
	}
	log.Debug("seeded catalog with %d recipes (builtins=%v, extra=%d)", c.Len(), cfg.builtins, len(cfg.extra))
	return c
}
