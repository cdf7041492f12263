package domain

import (
	"errors"
	"time"
)

// ClaimDeleteVacancy is the named claim required by the vacancy delete policy.
const ClaimDeleteVacancy = "DeleteVacancy"

var ErrUserExists = errors.New("user already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid user or password")
var ErrUserLockedOut = errors.New("user blocked")

// User models a registered account. Claims holds the names of the custom
// claims embedded in every token issued for the account (e.g. "DeleteVacancy").
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Claims       []string  `json:"claims,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
