package session

import "context"

// Store keeps sessions between requests.
type Store interface {
	// Create stores a new session and returns its token
	Create(ctx context.Context, s *Session) (string, error)

	// With runs fn with exclusive access to the session identified by token
	With(ctx context.Context, token string, fn func(*Session) error) error

	// Delete removes a session by token
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all expired sessions
	DeleteExpired(ctx context.Context) error
}
