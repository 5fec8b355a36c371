package lib

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"APP_PORT", "GO_ENV", "CORS_ALLOWED_ORIGINS", "SESSION_TTL", "REQUEST_TIMEOUT", "MODEL_IMAGE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, []string{"*"}, cfg.App.CorsAllowedOrigins)
	assert.Equal(t, time.Hour, cfg.App.SessionTTL)
	assert.Zero(t, cfg.App.RequestTimeout)
	assert.Equal(t, []string{"API_KEY", "GEMINI_API_KEY"}, cfg.Gemini.CredentialKeys)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("GO_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REQUEST_TIMEOUT", "45s")
	t.Setenv("MODEL_IMAGE", "custom-image-model")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CorsAllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.App.SessionTTL)
	assert.Equal(t, 45*time.Second, cfg.App.RequestTimeout)
	assert.Equal(t, "custom-image-model", cfg.Models.Image)
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.log")

	logger := NewLogger(path, true)
	logger.Info("hello")
	_ = logger.Sync()

	assert.FileExists(t, path)
}
