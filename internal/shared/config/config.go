package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	CORSAllowOrigin []string
	DefaultTemplate string
	DraftTTL        time.Duration
	MaxImportBytes  int64

	// ExtractorURL points at the external resume extraction service. Empty
	// disables import from PDF.
	ExtractorURL     string
	ExtractorAPIKey  string
	ExtractorTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Local .env files are read first; real environment variables win.
func Load() Config {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("env", "dev")
	v.SetDefault("database_url", "")
	v.SetDefault("cors_allow_origins", "http://localhost:5173")
	v.SetDefault("default_template", "template1")
	v.SetDefault("draft_ttl", "24h")
	v.SetDefault("max_import_bytes", 5<<20)
	v.SetDefault("extractor_url", "")
	v.SetDefault("extractor_api_key", "")
	v.SetDefault("extractor_timeout", "60s")

	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(v, ".env", "cmd/.env")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	env := normalizeEnv(v.GetString("env"))
	dbURL := strings.TrimSpace(v.GetString("database_url"))

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	ttl := v.GetDuration("draft_ttl")
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	maxImport := v.GetInt64("max_import_bytes")
	if maxImport <= 0 {
		maxImport = 5 << 20
	}
	extractorTimeout := v.GetDuration("extractor_timeout")
	if extractorTimeout <= 0 {
		extractorTimeout = 60 * time.Second
	}

	return Config{
		Port:            v.GetString("port"),
		Env:             env,
		DatabaseURL:     dbURL,
		CORSAllowOrigin: splitAndTrim(v.GetString("cors_allow_origins")),
		DefaultTemplate: strings.TrimSpace(v.GetString("default_template")),
		DraftTTL:        ttl,
		MaxImportBytes:  maxImport,

		ExtractorURL:     strings.TrimSpace(v.GetString("extractor_url")),
		ExtractorAPIKey:  strings.TrimSpace(v.GetString("extractor_api_key")),
		ExtractorTimeout: extractorTimeout,
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "test":
		return "test"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
