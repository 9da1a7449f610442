package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := FromEnv()
	require.ErrorIs(t, err, ErrMissingDatabaseURL)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DATABASE_URL must be set")
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/runji")
	t.Setenv("DB_TRANSPORT", "")
	t.Setenv("DB_TLS_INSECURE", "")
	t.Setenv("SQL_DIR", "")
	t.Setenv("LOAD_SUBJECT", "")
	t.Setenv("LOAD_EXPECTED_TOTAL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "pooled", cfg.Transport)
	assert.True(t, cfg.InsecureTLS)
	assert.Equal(t, ".", cfg.SQLDir)
	assert.Equal(t, "생명과학", cfg.Subject)
	assert.Equal(t, 447, cfg.ExpectedTotal)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "  file:runji.db  ")
	t.Setenv("DB_TRANSPORT", "sqlite")
	t.Setenv("DB_TLS_INSECURE", "false")
	t.Setenv("LOAD_EXPECTED_TOTAL", "not-a-number")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "file:runji.db", cfg.DatabaseURL)
	assert.Equal(t, "sqlite", cfg.Transport)
	assert.False(t, cfg.InsecureTLS)
	assert.Equal(t, 447, cfg.ExpectedTotal)
}

func TestFromEnvTrimsValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:runji.db")
	t.Setenv("DB_TRANSPORT", " serverless ")
	t.Setenv("SQL_DIR", "   ")
	t.Setenv("LOAD_EXPECTED_TOTAL", " 180 ")
	t.Setenv("DB_TLS_INSECURE", " false")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "serverless", cfg.Transport)
	assert.Equal(t, ".", cfg.SQLDir)
	assert.Equal(t, 180, cfg.ExpectedTotal)
	assert.False(t, cfg.InsecureTLS)
}
