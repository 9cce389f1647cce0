package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "s")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode())
}

func TestSSLModeInProd(t *testing.T) {
	t.Setenv("SECRET_KEY", "s")
	t.Setenv("ENV", "prod")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "require", cfg.SSLMode())
}
