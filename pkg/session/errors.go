package session

import "errors"

var (
	// ErrInvalidSession indicates a nil session was handed to the store
	ErrInvalidSession = errors.New("session.invalid")

	// ErrSessionExpired indicates the session has expired
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionNotFound indicates no session was found
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrWrongType indicates an input was set that does not match the selected content type
	ErrWrongType = errors.New("session.wrong_input_type")

	// ErrStoreClosed indicates the store no longer accepts sessions
	ErrStoreClosed = errors.New("session.store_closed")
)
