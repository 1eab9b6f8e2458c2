package store

import (
	"sync"

	"github.com/google/uuid"
)

// SessionRegistry maps opaque bearer tokens to usernames. Tokens never
// expire and logging in again does not invalidate earlier tokens, so a user
// may hold any number of live sessions. All sessions vanish on restart.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]string)}
}

// Create issues a fresh random token owned by the given user.
func (s *SessionRegistry) Create(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = username
	s.mu.Unlock()
	return token
}

// Resolve returns the username that owns the token, if it was ever issued.
func (s *SessionRegistry) Resolve(token string) (string, bool) {
	s.mu.RLock()
	username, ok := s.sessions[token]
	s.mu.RUnlock()
	return username, ok
}
