package ports

import (
	"context"

	"github.com/jobs4devs/vacancy-api/internal/core/domain"
)

// UserRepository defines persistence for registered accounts.
type UserRepository interface {
	// Create stores a new account. Returns domain.ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
