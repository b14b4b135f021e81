// internal/domain/user/entity.go
package user

import "strings"

// User represents an account record in the remote users collection. The
// password field carries the bcrypt hash; the plaintext is never stored
// or transmitted.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NormalizeEmail lower-cases and trims an email for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
