package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleStudent  = "student"
	RoleCustomer = "customer"
	RoleUser     = "user"
)

var ErrUserExists = errors.New("username already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrForbidden = errors.New("access forbidden")

// Token validation failures. Clients see a single unauthorized response;
// the distinction exists for logs and metrics.
var ErrTokenExpired = errors.New("token expired")
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")

// Account models a registered identity shared by every app in the suite.
// The username is the primary key; the plaintext password is never stored.
type Account struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
