package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModelID)
	assert.Equal(t, 20*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 15*time.Minute, cfg.AdviceCacheTTL)
	assert.Equal(t, 3, cfg.DoctorLookupLimit)
	assert.Equal(t, 5.0, cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("DOCTOR_LOOKUP_LIMIT", "5")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 5, cfg.DoctorLookupLimit)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 4, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")
	t.Setenv("DOCTOR_LOOKUP_LIMIT", "many")
	t.Setenv("RATE_LIMIT", "fast")

	cfg := Load()

	assert.Equal(t, 20*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 3, cfg.DoctorLookupLimit)
	assert.Equal(t, 5.0, cfg.RateLimit)
}
