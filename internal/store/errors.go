package store

import "errors"

// Sentinel errors returned by the store. Callers match them with errors.Is
// to choose a response status.
var (
	// account errors
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// room errors
	ErrInvalidRoomName   = errors.New("invalid room name")
	ErrForbiddenRoomName = errors.New("room name contains forbidden words")
	ErrRoomExists        = errors.New("room already exists")
	ErrRoomNotFound      = errors.New("room not found")

	// ErrInternal wraps failures of the store's own machinery, such as the
	// random source being unavailable. No state is mutated when it occurs.
	ErrInternal = errors.New("internal error")
)
