// internal/pkg/ratelimit/rate_limiter.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckLoginAttempt checks if a login attempt is allowed. Allows up to 5
// attempts per 15 minutes per ip+email pair.
func (r *RateLimiter) CheckLoginAttempt(ctx context.Context, ip, email string) (bool, int64, error) {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment login attempt: %w", err)
	}

	if count == 1 {
		r.client.Expire(ctx, key, 15*time.Minute)
	}

	maxAttempts := int64(5)
	remaining := maxAttempts - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= maxAttempts, remaining, nil
}

// ResetLoginAttempts resets the login attempt counter after a successful
// login.
func (r *RateLimiter) ResetLoginAttempts(ctx context.Context, ip, email string) error {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)
	return r.client.Del(ctx, key).Err()
}

// CheckPasswordResetAttempt checks the password reset rate limit. Allows up
// to 3 resets per hour per email.
func (r *RateLimiter) CheckPasswordResetAttempt(ctx context.Context, email string) (bool, error) {
	key := fmt.Sprintf("ratelimit:password_reset:%s", email)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment password reset attempt: %w", err)
	}

	if count == 1 {
		r.client.Expire(ctx, key, 1*time.Hour)
	}

	return count <= 3, nil
}

// CheckAnalysisAttempt rate-limits image analysis calls. Allows up to 10
// analyses per 10 minutes per user; the upstream model call is metered, so
// the limit is intentionally tight.
func (r *RateLimiter) CheckAnalysisAttempt(ctx context.Context, userID int64) (bool, error) {
	key := fmt.Sprintf("ratelimit:analysis:%d", userID)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment analysis attempt: %w", err)
	}

	if count == 1 {
		r.client.Expire(ctx, key, 10*time.Minute)
	}

	return count <= 10, nil
}
