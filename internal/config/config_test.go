package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:        "development",
			Port:       "8380",
			JWTSecret:  "secure-secret-at-least-32-chars-long",
			DBPassword: "secure-password",
			DBSSLMode:  "disable",
			MediaDir:   "/tmp/chorus/media",
			RedisURL:   "localhost:6379",
		}
	}

	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing media dir", func(t *testing.T) {
		c := base()
		c.MediaDir = ""
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default JWT secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.DBSSLMode = "require"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects disabled SSL", func(t *testing.T) {
		c := base()
		c.Env = "production"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects weak DB password", func(t *testing.T) {
		c := base()
		c.Env = "prod"
		c.DBSSLMode = "require"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})

	t.Run("valid production config", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.DBSSLMode = "verify-full"
		assert.NoError(t, c.Validate())
	})
}
