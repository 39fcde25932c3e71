package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration. Everything comes from the
// environment; the service keeps no state beyond an in-memory parse cache.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN        string // Sentry DSN for error tracking
	MetricsNamespace string // CloudWatch namespace, production only

	// Harmony engine
	ChordCacheSize int    // Parsed chords kept in the LRU cache
	AccidentalMode string // basic, enharmonics or doubles
	DefaultOctave  int    // Octave of the root when voicing chords to MIDI

	// HTTP
	CORSAllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Environment:        getEnv("ENVIRONMENT", "development"),
		Port:               getEnv("PORT", "8080"),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
		MetricsNamespace:   getEnv("METRICS_NAMESPACE", "MAGDA/Harmony"),
		ChordCacheSize:     getEnvInt("CHORD_CACHE_SIZE", 512),
		AccidentalMode:     getEnv("ACCIDENTAL_MODE", "enharmonics"),
		DefaultOctave:      getEnvInt("DEFAULT_OCTAVE", 4),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
