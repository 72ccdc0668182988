package domain

import "context"

// SessionStore keeps sessions for the lifetime of the process. Nothing is
// written to disk; persistence across runs is out of scope.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*Session, error)
}

// CommandParser converts a raw prompt line into a structured command.
type CommandParser interface {
	Parse(ctx context.Context, input string) (*Command, error)
}
