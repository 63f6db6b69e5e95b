package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GCP_PROJECT_ID", "GCP_LOCATION", "GCP_MODEL_NAME",
		"GEMINI_API_KEY", "MODEL_PROVIDER",
		"OPENAI_API_KEY", "OPENAI_MODEL_NAME", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DefaultsWithGeminiKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "us-central1", cfg.GCPLocation)
	assert.Equal(t, "gemini-1.5-pro", cfg.GCPModelName)
	assert.Equal(t, ProviderGemini, cfg.ModelProvider)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModelName)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_RequiresKeyForSelectedProvider(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	t.Setenv("MODEL_PROVIDER", ProviderOpenAI)
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_OpenAIProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODEL_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "secret")
	t.Setenv("OPENAI_MODEL_NAME", "gpt-4o-mini")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.ModelProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModelName)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODEL_PROVIDER", "bedrock")

	_, err := Load()
	assert.Error(t, err)
}
