package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVICE_JWT_SECRET", "s3cr3t")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "useraccount", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "s3cr3t", cfg.App.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenTTL)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.True(t, cfg.MQ.Enabled)
	assert.Equal(t, "topic", cfg.MQ.ExchangeType)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("SERVICE_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("SERVICE_JWT_SECRET"))

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoad_FromEnvFile(t *testing.T) {
	// t.Setenv registers cleanup so values written by godotenv are restored.
	t.Setenv("SERVICE_JWT_SECRET", "")
	t.Setenv("SERVICE_TOKEN_TTL", "")
	require.NoError(t, os.Unsetenv("SERVICE_JWT_SECRET"))
	require.NoError(t, os.Unsetenv("SERVICE_TOKEN_TTL"))

	f := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(f, []byte("SERVICE_JWT_SECRET=from-file\nSERVICE_TOKEN_TTL=2h\n"), 0o600))

	cfg, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.App.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenTTL)
}

func TestConfig_DSNs(t *testing.T) {
	cfg := Config{
		DB: DB{User: "app", Password: "p@ss", Name: "accounts", Host: "db", Port: "5432", SSLMode: "disable"},
		MQ: MQ{User: "guest", Password: "guest", Host: "mq", AmqpPort: "5672", Vhost: "/"},
	}

	dsn, err := cfg.DBDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:p%40ss@db:5432/accounts?sslmode=disable", dsn)

	mdsn, err := cfg.MigrateDSN()
	require.NoError(t, err)
	assert.Equal(t, "pgx5://app:p%40ss@db:5432/accounts?sslmode=disable", mdsn)

	amqp, err := cfg.AMQPDSN()
	require.NoError(t, err)
	assert.Equal(t, "amqp://guest:guest@mq:5672/%2F", amqp)

	_, err = Config{}.DBDSN()
	require.Error(t, err)
	_, err = Config{}.AMQPDSN()
	require.Error(t, err)
}
