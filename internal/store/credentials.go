package store

import (
	"crypto/subtle"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"chatto/internal/model"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// CredentialStore holds registered accounts keyed by lowercase username,
// so uniqueness is case-insensitive while the display case is preserved.
type CredentialStore struct {
	mu     sync.RWMutex
	users  map[string]model.User
	hasher PasswordHasher
}

// NewCredentialStore creates an empty store using the given hasher.
func NewCredentialStore(hasher PasswordHasher) *CredentialStore {
	return &CredentialStore{
		users:  make(map[string]model.User),
		hasher: hasher,
	}
}

// Register validates the requested account and creates it, returning the
// canonical (display-case) username. All validation happens before any
// mutation; a failed call leaves the store untouched.
func (c *CredentialStore) Register(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 20 || !usernamePattern.MatchString(username) {
		return "", ErrInvalidUsername
	}
	if len(password) < 6 {
		return "", ErrInvalidPassword
	}

	salt, err := c.hasher.NewSalt()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	user := model.User{
		Username:     username,
		PasswordHash: c.hasher.Hash(password, salt),
		Salt:         salt,
	}

	// Duplicate check and insert under one lock, so two concurrent
	// registrations of the same name cannot both win.
	key := strings.ToLower(username)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.users[key]; exists {
		return "", ErrUsernameTaken
	}
	c.users[key] = user
	return user.Username, nil
}

// Verify checks a password attempt and returns the canonical username. An
// unknown user and a wrong password are reported identically so the caller
// learns nothing about which accounts exist.
func (c *CredentialStore) Verify(username, password string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(username))
	c.mu.RLock()
	user, ok := c.users[key]
	c.mu.RUnlock()
	if !ok {
		return "", ErrInvalidCredentials
	}

	attempt := c.hasher.Hash(password, user.Salt)
	if subtle.ConstantTimeCompare([]byte(attempt), []byte(user.PasswordHash)) != 1 {
		return "", ErrInvalidCredentials
	}
	return user.Username, nil
}
