package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetJSON reads key and unmarshals the cached JSON into dest. A missing key
// reports (false, nil). A payload that no longer unmarshals into dest (stale
// shape after a deploy) is treated as a miss and the key is dropped.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetJSON marshals v and stores it under key with the given TTL. A nil client
// makes it a no-op so code paths work without Redis.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside is the cache-aside read path: serve from Redis when possible,
// otherwise run fetch (which must fill dest) and store the result.
// Cache writes are best-effort; a failed SetJSON never fails the read.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}
