package model

// User is a registered account. Username keeps the display case the user
// registered with; lookups are keyed by the lowercase form. Users are never
// mutated or deleted after registration.
type User struct {
	Username     string
	PasswordHash string
	Salt         []byte
}
