package store

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const saltLength = 16

// PasswordHasher derives the stored form of a password. The digest is
// swappable for a stronger key-derivation function without changing how
// CredentialStore registers or verifies accounts.
type PasswordHasher interface {
	// NewSalt returns a fresh cryptographically random salt.
	NewSalt() ([]byte, error)

	// Hash derives the stored hash of password under the given salt.
	Hash(password string, salt []byte) string
}

// SaltedSHA256 hashes passwords as base64(SHA-256(salt || password)).
// A single unstretched round, kept compatible with the existing account
// format; not a hardened KDF.
type SaltedSHA256 struct{}

// NewSalt returns a fresh 16-byte random salt.
func (SaltedSHA256) NewSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	return salt, nil
}

// Hash digests salt followed by the password bytes.
func (SaltedSHA256) Hash(password string, salt []byte) string {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
