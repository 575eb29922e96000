package redis

import (
	"context"
	"time"

	redisclient "github.com/kariago/kariago-backend/cmd/redis"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetResetCode(ctx context.Context, userID, code string, ttl time.Duration) error
	GetResetCode(ctx context.Context, userID string) (string, error)
	DeleteResetCode(ctx context.Context, userID string) error
}

type redis struct {
	// *redis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// SetResetCode stores a one-time password-reset code with TTL
func (r *redis) SetResetCode(ctx context.Context, userID, code string, ttl time.Duration) error {
	return r.SetWithTTL(ctx, "reset:"+userID, code, ttl)
}

// GetResetCode retrieves the outstanding reset code for a user, if any
func (r *redis) GetResetCode(ctx context.Context, userID string) (string, error) {
	return r.Get(ctx, "reset:"+userID)
}

// DeleteResetCode invalidates a reset code after a successful use
func (r *redis) DeleteResetCode(ctx context.Context, userID string) error {
	return r.Delete(ctx, "reset:"+userID)
}
