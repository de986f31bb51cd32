package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silver-dev/resume-checker/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterBaseURL)
	assert.Equal(t, "public", cfg.AssetsDir)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
	assert.Equal(t, []string{"info@silver.dev"}, cfg.FeedbackTo)
	assert.True(t, cfg.IsDev())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("FEEDBACK_TO", "a@example.com,b@example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.FeedbackTo)
}

func TestGetAIBackoffConfig_TestEnvShortens(t *testing.T) {
	cfg := config.Config{AppEnv: "test", AIBackoffMaxElapsedTime: 2 * time.Minute}
	maxElapsed, initial, _, _ := cfg.GetAIBackoffConfig()
	assert.Less(t, maxElapsed, 2*time.Minute)
	assert.Less(t, initial, time.Second)

	cfg.AppEnv = "prod"
	maxElapsed, _, _, _ = cfg.GetAIBackoffConfig()
	assert.Equal(t, 2*time.Minute, maxElapsed)
}
