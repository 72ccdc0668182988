package shopping

import (
	"reflect"
	"testing"

	"github.com/hammamikhairi/shopmania/internal/domain"
	"github.com/hammamikhairi/shopmania/internal/recipe"
)

func mustRecipe(t *testing.T, name, raw string) domain.Recipe {
	t.Helper()
	r, err := recipe.FromRaw(name, raw)
	if err != nil {
		t.Fatalf("from raw %q: %v", name, err)
	}
	return r
}

func builtin(t *testing.T, name string) domain.Recipe {
	t.Helper()
	for _, r := range recipe.Builtins() {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no built-in recipe %q", name)
	return domain.Recipe{}
}

func TestAggregateSingleRecipe(t *testing.T) {
	pb := mustRecipe(t, "peanut butter", "300 g peanuts,0.5 tsp salt,2 tsp oil")

	got := Aggregate([]domain.Recipe{pb})
	want := List{
		{Amount: 300, Unit: "g", Name: "peanuts"},
		{Amount: 0.5, Unit: "tsp", Name: "salt"},
		{Amount: 2, Unit: "tsp", Name: "oil"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAggregateMergesSharedNames(t *testing.T) {
	a := mustRecipe(t, "a", "300 g peanuts,1 tsp salt")
	b := mustRecipe(t, "b", "2 cup rice,1200 g peanuts")

	got := Aggregate([]domain.Recipe{a, b})
	want := List{
		{Amount: 1500, Unit: "g", Name: "peanuts"},
		{Amount: 1, Unit: "tsp", Name: "salt"},
		{Amount: 2, Unit: "cup", Name: "rice"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAggregateFirstUnitWins(t *testing.T) {
	a := mustRecipe(t, "a", "1 cup flour")
	b := mustRecipe(t, "b", "250 g flour")

	got := Aggregate([]domain.Recipe{a, b})
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Unit != "cup" || got[0].Amount != 251 {
		t.Fatalf("expected (251, cup), got (%v, %s)", got[0].Amount, got[0].Unit)
	}
}

func TestAggregateIsCaseSensitive(t *testing.T) {
	a := mustRecipe(t, "a", "1 tsp Salt")
	b := mustRecipe(t, "b", "1 tsp salt")

	if got := Aggregate([]domain.Recipe{a, b}); len(got) != 2 {
		t.Fatalf("expected differently-cased names to stay separate, got %+v", got)
	}
}

func TestAggregateBuiltins(t *testing.T) {
	pb := builtin(t, recipe.PeanutButter)
	om := builtin(t, recipe.Omelette)

	tests := []struct {
		name    string
		recipes []domain.Recipe
		want    List
	}{
		{
			"peanut butter and omelette",
			[]domain.Recipe{pb, om},
			List{
				{Amount: 300, Unit: "g", Name: "peanuts"},
				{Amount: 1, Unit: "tsp", Name: "salt"},
				{Amount: 3, Unit: "tsp", Name: "oil"},
				{Amount: 1, Unit: "cup", Name: "mung bean"},
				{Amount: 0.75, Unit: "tsp", Name: "pink salt"},
				{Amount: 0.25, Unit: "tsp", Name: "garlic powder"},
				{Amount: 0.25, Unit: "tsp", Name: "onion powder"},
				{Amount: 0.125, Unit: "tsp", Name: "pepper"},
				{Amount: 0.25, Unit: "tsp", Name: "turmeric"},
				{Amount: 1, Unit: "cup", Name: "soy milk"},
			},
		},
		{
			"peanut butter twice and omelette",
			[]domain.Recipe{pb, pb, om},
			List{
				{Amount: 600, Unit: "g", Name: "peanuts"},
				{Amount: 1.5, Unit: "tsp", Name: "salt"},
				{Amount: 5, Unit: "tsp", Name: "oil"},
				{Amount: 1, Unit: "cup", Name: "mung bean"},
				{Amount: 0.75, Unit: "tsp", Name: "pink salt"},
				{Amount: 0.25, Unit: "tsp", Name: "garlic powder"},
				{Amount: 0.25, Unit: "tsp", Name: "onion powder"},
				{Amount: 0.125, Unit: "tsp", Name: "pepper"},
				{Amount: 0.25, Unit: "tsp", Name: "turmeric"},
				{Amount: 1, Unit: "cup", Name: "soy milk"},
			},
		},
		{"no recipes", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.recipes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	pb := mustRecipe(t, "peanut butter", "300 g peanuts,0.5 tsp salt")
	recipes := []domain.Recipe{pb, pb}

	first := Aggregate(recipes)
	first[0].Amount = 1

	second := Aggregate(recipes)
	if second[0].Amount != 600 {
		t.Fatalf("expected 600 on re-aggregation, got %v", second[0].Amount)
	}
	if recipes[0].Ingredients[0].Amount != 300 {
		t.Fatalf("input recipe was mutated: %v", recipes[0].Ingredients[0].Amount)
	}
}

func TestAggregateMatchesIncrementalAdd(t *testing.T) {
	a := mustRecipe(t, "a", "300 g peanuts,0.5 tsp salt,2 tsp oil")
	b := mustRecipe(t, "b", "1200 g peanuts,1000 g tofu")

	var incremental List
	for _, r := range []domain.Recipe{a, b} {
		for _, ing := range r.Ingredients {
			incremental.Add(ing)
		}
	}

	if got := Aggregate([]domain.Recipe{a, b}); !reflect.DeepEqual(got, incremental) {
		t.Fatalf("aggregate %+v differs from incremental %+v", got, incremental)
	}
}

func TestBuildThenAggregateRoundTrip(t *testing.T) {
	lines := []string{"480 ml almond milk", "7 g active dry yeast", "5.5 cup flour"}
	r, err := recipe.Build("rolls", lines)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	got := Aggregate([]domain.Recipe{r})
	if len(got) != len(lines) {
		t.Fatalf("expected %d entries, got %d", len(lines), len(got))
	}
	for i, line := range lines {
		want := mustRecipe(t, "x", line).Ingredients[0]
		if got[i] != want {
			t.Fatalf("entry %d: got %+v, want %+v", i, got[i], want)
		}
	}
}
