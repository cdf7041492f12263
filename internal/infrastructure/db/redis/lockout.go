package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobs4devs/vacancy-api/internal/api/metrics"
)

// LockoutPolicy tracks failed login attempts in Redis.
// Key format: lockout:<email>, a counter that expires after the lockout
// window. Reaching maxAttempts blocks logins until the key expires.
type LockoutPolicy struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLockoutPolicy creates a LockoutPolicy wrapping the given Redis client.
func NewLockoutPolicy(client *redis.Client, maxAttempts int, window time.Duration) *LockoutPolicy {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &LockoutPolicy{client: client, maxAttempts: maxAttempts, window: window}
}

// IsLocked reports whether the account has reached the failure threshold.
func (p *LockoutPolicy) IsLocked(ctx context.Context, email string) (bool, error) {
	n, err := p.client.Get(ctx, p.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lockout check: %w", err)
	}
	return n >= int64(p.maxAttempts), nil
}

// RecordFailure increments the failure counter. The window TTL is set on the
// first failure only, so the block always expires relative to the first
// attempt in the burst.
func (p *LockoutPolicy) RecordFailure(ctx context.Context, email string) error {
	key := p.key(email)
	n, err := p.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("lockout incr: %w", err)
	}
	if n == 1 {
		if err := p.client.Expire(ctx, key, p.window).Err(); err != nil {
			return fmt.Errorf("lockout expire: %w", err)
		}
	}
	if n == int64(p.maxAttempts) {
		metrics.LockoutsTotal.Inc()
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (p *LockoutPolicy) Reset(ctx context.Context, email string) error {
	return p.client.Del(ctx, p.key(email)).Err()
}

func (p *LockoutPolicy) key(email string) string {
	return fmt.Sprintf("lockout:%s", email)
}
