package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8080")
	for _, key := range []string{
		"NETWORK_MAX_USERS", "NETWORK_MAX_FOLLOWEES", "RECOMMENDATION_CACHE_SIZE", "SEED_FILE",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("success - defaults", func(t *testing.T) {
		setBaseEnv(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Network.MaxUsers)
		assert.Equal(t, 10, cfg.Network.MaxFollowees)
		assert.Equal(t, 128, cfg.Network.RecommendationCacheSize)
		assert.Empty(t, cfg.Seed.File)
		assert.Nil(t, cfg.Database)
	})

	t.Run("success - overrides and database", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("NETWORK_MAX_USERS", "3")
		t.Setenv("NETWORK_MAX_FOLLOWEES", "2")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_USER", "social_user")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "social_db")
		t.Setenv("DB_SSLMODE", "disable")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Network.MaxUsers)
		assert.Equal(t, 2, cfg.Network.MaxFollowees)
		require.NotNil(t, cfg.Database)
		assert.Equal(t,
			"host=localhost port=5432 user=social_user password=secret dbname=social_db sslmode=disable",
			cfg.Database.DSN(),
		)
	})

	t.Run("error - missing server port", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("SERVER_PORT", "")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SERVER_PORT")
	})

	t.Run("error - non-numeric limit", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("NETWORK_MAX_USERS", "many")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "NETWORK_MAX_USERS")
	})

	t.Run("error - non-positive limit", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("NETWORK_MAX_FOLLOWEES", "0")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("error - partial database settings", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DB_HOST", "localhost")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PORT")
	})

	t.Run("error - unknown ssl mode", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_USER", "u")
		t.Setenv("DB_PASSWORD", "p")
		t.Setenv("DB_NAME", "n")
		t.Setenv("DB_SSLMODE", "sometimes")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SSLMode")
	})
}
