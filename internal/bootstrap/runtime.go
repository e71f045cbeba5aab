// Package bootstrap wires the shared runtime pieces (database, Redis,
// schema) used by every command entry point.
package bootstrap

import (
	"context"
	"fmt"

	"chorus/internal/cache"
	"chorus/internal/config"
	"chorus/internal/database"
	"chorus/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// ApplySchema runs the migration/auto-migrate policy before returning.
	ApplySchema bool
	// SeedBuiltIns ensures the built-in labels exist.
	SeedBuiltIns bool
}

// InitRuntime connects to DB and Redis and optionally applies the schema and
// built-in seed data. The Redis client may be nil when the server is
// unreachable; callers degrade gracefully.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.ApplySchema {
		if err := database.ApplySchema(context.Background(), db, cfg); err != nil {
			return nil, nil, fmt.Errorf("schema apply failed: %w", err)
		}
	}

	if opts.SeedBuiltIns {
		if err := seed.Labels(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in labels: %w", err)
		}
	}

	return db, r, nil
}
