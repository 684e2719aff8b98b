package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATABASE_URL", "CORS_ALLOW_ORIGINS", "DEFAULT_TEMPLATE", "DRAFT_TTL", "MAX_IMPORT_BYTES", "EXTRACTOR_URL", "EXTRACTOR_API_KEY", "EXTRACTOR_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())

	cfg := Load()
	want := Config{
		Port:            "8080",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		DefaultTemplate: "template1",
		DraftTTL:        24 * time.Hour,
		MaxImportBytes:  5 << 20,

		ExtractorTimeout: 60 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverridesDotenv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := "PORT=9000\nDEFAULT_TEMPLATE=template3\nDRAFT_TTL=30m\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("PORT", "7000")
	t.Setenv("ENV", "prod")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.test , ,https://b.test")

	cfg := Load()
	if cfg.Port != "7000" {
		t.Fatalf("expected env to win, got %q", cfg.Port)
	}
	if cfg.DefaultTemplate != "template3" {
		t.Fatalf("expected template from .env, got %q", cfg.DefaultTemplate)
	}
	if cfg.DraftTTL != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %v", cfg.DraftTTL)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if diff := cmp.Diff([]string{"https://a.test", "https://b.test"}, cfg.CORSAllowOrigin); diff != "" {
		t.Fatalf("origins mismatch (-want +got):\n%s", diff)
	}
}
