// Package store implements the concurrent in-memory state of the chat
// server: registered accounts, live sessions, and per-room message logs.
// All state is volatile and rebuilt empty on every start, with only the
// "general" room pre-created.
package store

import "chatto/internal/moderation"

// Store bundles the process-wide chat state. Construct one per server (or
// per test) and inject it into the request layer instead of sharing
// globals.
type Store struct {
	Credentials *CredentialStore
	Sessions    *SessionRegistry
	Rooms       *RoomRegistry
}

// New creates a fresh store. The forbidden word list feeds both the
// moderation filter and the room-name blocklist.
func New(forbiddenWords []string) *Store {
	return &Store{
		Credentials: NewCredentialStore(SaltedSHA256{}),
		Sessions:    NewSessionRegistry(),
		Rooms:       NewRoomRegistry(moderation.NewFilter(forbiddenWords), forbiddenWords),
	}
}
