package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "ENV", "CORS_ALLOW_ORIGINS", "MAX_UPLOAD_BYTES", "TAXONOMY_FILE",
	"NLP_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL",
}

// isolate runs Load from an empty directory with no config variables set.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigin)
	assert.Equal(t, int64(10485760), cfg.MaxUploadBytes)
	assert.Empty(t, cfg.TaxonomyFile)
	assert.True(t, cfg.NLPEnabled)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.RateLimitEnabled())
}

func TestLoadOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "prod")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("NLP_ENABLED", "false")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigin)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.False(t, cfg.NLPEnabled)
	assert.False(t, cfg.RateLimitEnabled())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"MAX_UPLOAD_BYTES": "0",
		"PORT":             "http",
		"LOG_LEVEL":        "verbose",
		"NLP_ENABLED":      "maybe",
		"RATE_LIMIT_BURST": "-1",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv(key, val)

			_, err := Load()
			assert.Error(t, err)
		})
	}

	isolate(t)
	t.Setenv("MAX_UPLOAD_BYTES", "104857601")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadReadsDotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("PORT=7000\nTAXONOMY_FILE=\"custom.yaml\"\n"), 0o600))
	// Unset so the file value is applied; t.Setenv restores afterwards.
	os.Unsetenv("PORT")
	os.Unsetenv("TAXONOMY_FILE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "custom.yaml", cfg.TaxonomyFile)
}
