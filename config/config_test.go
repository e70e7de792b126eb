package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.JWT.Expiry)
	assert.Empty(t, cfg.JWT.SecretKey)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yml := `
app:
  env: production
jwt:
  secret_key: from-file
  expiry: 15m
database:
  name: gym
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600))

	t.Setenv("JWT_SECRET_KEY", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, "gym", cfg.Database.Name)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_NegativeExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "-5m")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
