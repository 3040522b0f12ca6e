package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Provider != ProviderGemini {
		t.Errorf("expected default provider gemini, got %q", cfg.Provider)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash-preview-05-20" {
		t.Errorf("unexpected default model %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.Temperature != 2.0 || cfg.Gemini.TopP != 0.95 || cfg.Gemini.TopK != 40 {
		t.Errorf("unexpected sampling defaults: %+v", cfg.Gemini)
	}
	if len(cfg.Contacts) != 2 || cfg.Contacts[0].Name != "Sarah Thompson" {
		t.Errorf("unexpected contact seed: %+v", cfg.Contacts)
	}
}

func TestLoadYAMLFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 8080\nnews:\n  page_size: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected file override 8080, got %d", cfg.Server.Port)
	}
	if cfg.News.PageSize != 3 {
		t.Errorf("expected file override 3, got %d", cfg.News.PageSize)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host, got %q", cfg.Server.Host)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SONIA_SERVER_PORT", "9999")
	t.Setenv("GOOGLE_API_KEY", "gem-key")
	t.Setenv("NEWS_API_KEY", "news-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected env override 9999, got %d", cfg.Server.Port)
	}
	if cfg.Gemini.APIKey != "gem-key" {
		t.Errorf("expected GOOGLE_API_KEY to land in gemini.api_key, got %q", cfg.Gemini.APIKey)
	}
	if cfg.News.APIKey != "news-key" {
		t.Errorf("expected NEWS_API_KEY to land in news.api_key, got %q", cfg.News.APIKey)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without an API key")
	}

	cfg.Gemini.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	cfg.Provider = "watson"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure for unknown provider")
	}
}
