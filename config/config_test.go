package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "CI",
		"SERVER_PORT", "SERVER_HOST",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_PASSWORD_FILE",
		"DB_NAME", "DB_SSL_MODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_URL",
		"JWT_SECRET", "JWT_SECRET_FILE", "MIGRATIONS_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "reciperealm", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "hunter2", cfg.DBPassword)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadConfigSecretFileWins(t *testing.T) {
	clearEnv(t)

	secretPath := filepath.Join(t.TempDir(), "db_password")
	require.NoError(t, os.WriteFile(secretPath, []byte("from-file\n"), 0o600))

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("DB_PASSWORD_FILE", secretPath)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.DBPassword)
}

func TestLoadConfigInvalidRedisDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfigProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("DB_PASSWORD", "prod-password")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
}

func TestGetEnvironment(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
