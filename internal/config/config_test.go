package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/behavior-assessor/internal/domain/assessment"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "LLM_PROVIDER", "LLM_BASE_URL", "LLM_MODEL", "OPENAI_API_KEY", "GEMINI_API_KEY", "SCHEMA_VARIANT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, assessment.VariantNested, cfg.Variant())
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.Server.AllowedOrigins)
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9000
  readTimeout: 5s
llm:
  provider: gemini
  model: gemini-2.5-pro
  timeout: 30s
schema:
  variant: flat
log:
  level: debug
`)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "g-key", cfg.LLM.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, assessment.VariantFlat, cfg.Variant())
	assert.Equal(t, assessment.VariantFlat, cfg.LLM.BackendVariant())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsFlatBackendWithNestedVariant(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "llm:\n  provider: compat\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flat")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.LLM.Provider = "anthropic"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Schema.Variant = "deep"
	assert.ErrorIs(t, cfg.Validate(), assessment.ErrInvalidEnum)

	cfg = Default()
	cfg.LLM.Provider = ProviderNone
	cfg.Schema.Variant = "nested"
	assert.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadBadInputs(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)

	t.Setenv("PORT", "eighty")
	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
