package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so a test starts from the
// documented defaults regardless of the host environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV",
		"SURINAME_API_BASE",
		"SURINAME_PUBLIC_URL",
		"SURINAME_LISTEN_ADDR",
		"SURINAME_STORE_PATH",
		"SURINAME_SESSION_TTL",
		"SURINAME_HTTP_TIMEOUT",
		"SURINAME_DEBOUNCE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:8081", cfg.APIBase)
	assert.Equal(t, "suriname.db", cfg.StorePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce)
}

func TestLoad_ExplicitAPIBaseWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SURINAME_API_BASE", "https://api.suriname.example.com")
	t.Setenv("SURINAME_PUBLIC_URL", "https://www.suriname.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.suriname.example.com", cfg.APIBase)
}

func TestLoad_PublicURLFallbackKeepsBareHost(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SURINAME_PUBLIC_URL", "https://suriname.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	// resource paths already start with /api; the base must not add
	// a second prefix
	assert.Equal(t, "https://suriname.example.com", cfg.APIBase)
}

func TestLoad_NonLocalWithoutBaseFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "SURINAME_API_BASE or SURINAME_PUBLIC_URL")
}

func TestLoad_InvalidDurationFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("SURINAME_HTTP_TIMEOUT", "soon")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "SURINAME_HTTP_TIMEOUT")
}
