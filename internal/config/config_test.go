package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "PORT", "CHORD_CACHE_SIZE", "ACCIDENTAL_MODE", "DEFAULT_OCTAVE", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 512, cfg.ChordCacheSize)
	assert.Equal(t, "enharmonics", cfg.AccidentalMode)
	assert.Equal(t, 4, cfg.DefaultOctave)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CHORD_CACHE_SIZE", "64")
	t.Setenv("DEFAULT_OCTAVE", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 64, cfg.ChordCacheSize)
	assert.Equal(t, 4, cfg.DefaultOctave)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}
