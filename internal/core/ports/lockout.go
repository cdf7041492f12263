package ports

import "context"

// LockoutPolicy tracks failed login attempts per account and reports when an
// account is temporarily blocked. Counters expire on their own after the
// lockout window.
type LockoutPolicy interface {
	IsLocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}
