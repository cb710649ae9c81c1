package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account. Password holds the bcrypt hash only;
// the plaintext never leaves the auth service. Token is the last session
// token issued at login — a best-effort cache, never consulted when
// deciding whether a presented token is valid (signature and expiry are).
type User struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Picture   string    `json:"picture,omitempty"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
