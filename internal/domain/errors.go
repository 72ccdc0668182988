package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrMalformedIngredient = errors.New("malformed ingredient")
	ErrSessionNotActive    = errors.New("session is not active")
	ErrEmptyRecipeName     = errors.New("recipe name is empty")
)

// ParseError reports an ingredient line that does not follow the
// "<amount> <unit> <name...>" grammar.
type ParseError struct {
	Line   string
	Reason string
	Err    error // underlying cause, e.g. a *strconv.NumError
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing ingredient %q: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing ingredient %q: %s", e.Line, e.Reason)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrMalformedIngredient.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedIngredient }
