package users

import (
	"github.com/nexus-iam/sentinel/token"
)

// User is a human principal. The password is only ever stored hashed; the
// hash never leaves the service (boundary DTOs re-shape the record before
// responding).
type User struct {
	ID                string       `json:"id,omitempty"`
	Username          string       `json:"username,omitempty"` // unique
	PasswordHash      string       `json:"password_hash,omitempty"`
	Roles             []string     `json:"roles,omitempty"`
	AllowedTokenKinds []token.Kind `json:"allowed_token_kinds,omitempty"`
	Active            bool         `json:"active"`

	// Optional claims and additional metadata
	Department string `json:"department,omitempty"`
	Region     string `json:"region,omitempty"`
	Email      string `json:"email,omitempty"`
}

// HasRole checks for an exact role match.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
