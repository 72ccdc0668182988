package domain

import "time"

// Session is the single owner of one run's mutable state: the meal plan the
// user is assembling and the shopping list last generated from it.
type Session struct {
	ID        string
	Plan      []Recipe     // recipes picked from the catalog, in pick order
	List      []Ingredient // held shopping list; edited by "rm -i"
	Generated bool         // true once List has been generated at least once
	Status    SessionStatus
	StartedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	out := *s
	out.Plan = make([]Recipe, len(s.Plan))
	for i, r := range s.Plan {
		out.Plan[i] = r.Clone()
	}
	out.List = make([]Ingredient, len(s.List))
	copy(out.List, s.List)
	return &out
}

// SessionStatus tracks the lifecycle of a session.
type SessionStatus int

const (
	SessionActive SessionStatus = iota
	SessionClosed
)

// String returns a human-readable session status.
func (s SessionStatus) String() string {
	switch s {
	case SessionActive:
		return "active"
	case SessionClosed:
		return "closed"
	default:
		return "unknown"
	}
}
