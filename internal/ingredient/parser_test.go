package ingredient

import (
	"errors"
	"strconv"
	"testing"

	"github.com/hammamikhairi/shopmania/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want domain.Ingredient
	}{
		{"300 g peanuts", domain.Ingredient{Amount: 300, Unit: "g", Name: "peanuts"}},
		{"0.5 tsp coffee granules", domain.Ingredient{Amount: 0.5, Unit: "tsp", Name: "coffee granules"}},
		{"  2   tbsp   peanut   butter ", domain.Ingredient{Amount: 2, Unit: "tbsp", Name: "peanut butter"}},
		{"1 large banana", domain.Ingredient{Amount: 1, Unit: "large", Name: "banana"}},
		{"3 pinch", domain.Ingredient{Amount: 3, Unit: "pinch", Name: ""}},
		{"1e2 ml water", domain.Ingredient{Amount: 100, Unit: "ml", Name: "water"}},
		{"5.5 cup flour", domain.Ingredient{Amount: 5.5, Unit: "cup", Name: "flour"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantNumErr bool
	}{
		{"empty", "", false},
		{"amount only", "300", false},
		{"non-numeric amount", "some g peanuts", true},
		{"unit first", "g 300 peanuts", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, domain.ErrMalformedIngredient) {
				t.Fatalf("expected ErrMalformedIngredient, got %v", err)
			}
			var pe *domain.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *domain.ParseError, got %T", err)
			}
			if pe.Line != tt.line {
				t.Fatalf("expected line %q, got %q", tt.line, pe.Line)
			}
			var numErr *strconv.NumError
			if got := errors.As(err, &numErr); got != tt.wantNumErr {
				t.Fatalf("wrapped NumError=%v, want %v", got, tt.wantNumErr)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode("300 g peanuts,0.5 tsp salt,2 tsp oil")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []domain.Ingredient{
		{Amount: 300, Unit: "g", Name: "peanuts"},
		{Amount: 0.5, Unit: "tsp", Name: "salt"},
		{Amount: 2, Unit: "tsp", Name: "oil"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d ingredients, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ingredient %d: got %+v, want %+v", i, got[i], want[i])
		}
	}

	if _, err := Decode("300 g peanuts,salt"); !errors.Is(err, domain.ErrMalformedIngredient) {
		t.Fatalf("expected ErrMalformedIngredient for bad second line, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	raws := []string{
		"300 g peanuts,0.5 tsp salt,2 tsp oil",
		"1 large banana,240 ml almond milk,0.125 tsp pepper",
		"7 g active dry yeast",
	}

	for _, raw := range raws {
		t.Run(raw, func(t *testing.T) {
			ings, err := Decode(raw)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := Encode(ings); got != raw {
				t.Fatalf("Encode(Decode(%q)) = %q", raw, got)
			}
			again, err := Decode(Encode(ings))
			if err != nil {
				t.Fatalf("re-decode: %v", err)
			}
			for i := range ings {
				if again[i] != ings[i] {
					t.Fatalf("ingredient %d changed: %+v -> %+v", i, ings[i], again[i])
				}
			}
		})
	}
}

func TestEncodeLineEmptyName(t *testing.T) {
	if got := EncodeLine(domain.Ingredient{Amount: 3, Unit: "pinch"}); got != "3 pinch" {
		t.Fatalf("got %q, want %q", got, "3 pinch")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{300, "300.0"},
		{1500, "1500.0"},
		{0.5, "0.5"},
		{0.125, "0.125"},
		{420, "420.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatAmount(tt.in); got != tt.want {
				t.Fatalf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
