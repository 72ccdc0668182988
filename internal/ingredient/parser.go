// Package ingredient converts between ingredient text and domain.Ingredient.
//
// A line is "<amount> <unit> <name...>", e.g. "0.5 tsp coffee granules".
// A recipe's ingredient list is those lines joined with commas. Parsing is
// the only place this grammar is understood; the rest of the program works
// on parsed records.
package ingredient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/shopmania/internal/domain"
)

// Separator joins ingredient lines inside a recipe.
const Separator = ","

// Parse turns one ingredient line into a record. The first token must be
// numeric and a second (unit) token must be present; everything after the
// unit, re-joined with single spaces, is the name.
func Parse(line string) (domain.Ingredient, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return domain.Ingredient{}, &domain.ParseError{
			Line:   line,
			Reason: fmt.Sprintf("want at least an amount and a unit, got %d token(s)", len(fields)),
		}
	}

	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return domain.Ingredient{}, &domain.ParseError{
			Line:   line,
			Reason: fmt.Sprintf("amount %q is not a number", fields[0]),
			Err:    err,
		}
	}

	return domain.Ingredient{
		Amount: amount,
		Unit:   fields[1],
		Name:   strings.Join(fields[2:], " "),
	}, nil
}

// Decode parses a comma-joined ingredient string. It stops at the first
// malformed line; the error still matches domain.ErrMalformedIngredient.
func Decode(raw string) ([]domain.Ingredient, error) {
	lines := strings.Split(raw, Separator)
	out := make([]domain.Ingredient, 0, len(lines))
	for i, line := range lines {
		ing, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", i+1, err)
		}
		out = append(out, ing)
	}
	return out, nil
}

// MustDecode is Decode for built-in data; it panics on malformed input.
func MustDecode(raw string) []domain.Ingredient {
	out, err := Decode(raw)
	if err != nil {
		panic(err)
	}
	return out
}

// Encode joins records back into the comma-separated form. Decode(Encode(x))
// reproduces x for any records with single-token units and no commas.
func Encode(ings []domain.Ingredient) string {
	lines := make([]string, len(ings))
	for i, ing := range ings {
		lines[i] = EncodeLine(ing)
	}
	return strings.Join(lines, Separator)
}

// EncodeLine formats a single record as "<amount> <unit> <name>".
func EncodeLine(ing domain.Ingredient) string {
	amount := strconv.FormatFloat(ing.Amount, 'f', -1, 64)
	if ing.Name == "" {
		return amount + " " + ing.Unit
	}
	return amount + " " + ing.Unit + " " + ing.Name
}

// FormatAmount renders an amount the way the shopping table shows it:
// the shortest exact decimal, always with a fractional part ("300.0",
// "0.125").
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
