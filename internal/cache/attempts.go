package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Failure throttling uses two keys per (scope, identity): a raw attempt
// counter and a cooldown key whose TTL carries the remaining wait. The
// counter only matters while the cooldown is live; once the cooldown key
// expires the counter is discarded on the next check.
const (
	FailureLimit    = 5
	FailureCooldown = 2 * time.Minute

	attemptsKeyPrefix = "attempts:%s:%s"
	cooldownKeyPrefix = "cooldown:%s:%s"
)

func attemptsKey(scope, id string) string {
	return fmt.Sprintf(attemptsKeyPrefix, scope, id)
}

func cooldownKey(scope, id string) string {
	return fmt.Sprintf(cooldownKeyPrefix, scope, id)
}

// ThrottleState reports whether the identity is currently blocked in the
// given scope and, if so, how long until the cooldown expires. An expired
// cooldown resets the attempt counter.
func ThrottleState(ctx context.Context, scope, id string) (blocked bool, wait time.Duration, err error) {
	if client == nil {
		return false, 0, nil
	}

	attempts, err := client.Get(ctx, attemptsKey(scope, id)).Int64()
	if err != nil && err != redis.Nil {
		return false, 0, err
	}
	if attempts < FailureLimit {
		return false, 0, nil
	}

	ttl, err := client.TTL(ctx, cooldownKey(scope, id)).Result()
	if err != nil {
		return false, 0, err
	}
	if ttl > 0 {
		return true, ttl, nil
	}

	// Cooldown lapsed: forget old failures.
	client.Del(ctx, attemptsKey(scope, id))
	return false, 0, nil
}

// RegisterFailure records one failed attempt. When the failure limit is
// reached the cooldown window starts.
func RegisterFailure(ctx context.Context, scope, id string) error {
	if client == nil {
		return nil
	}

	cnt, err := client.Incr(ctx, attemptsKey(scope, id)).Result()
	if err != nil {
		return err
	}
	// Attempts expire on their own so abandoned counters do not pile up.
	client.Expire(ctx, attemptsKey(scope, id), 24*time.Hour)

	if cnt >= FailureLimit {
		return client.Set(ctx, cooldownKey(scope, id), 1, FailureCooldown).Err()
	}
	return nil
}

// ClearFailures resets the counter and cooldown, e.g. after a successful login.
func ClearFailures(ctx context.Context, scope, id string) {
	if client == nil {
		return
	}
	client.Del(ctx, attemptsKey(scope, id), cooldownKey(scope, id))
}
