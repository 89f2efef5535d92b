package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("CORE_API_URL", "https://api.example.test/api/v1")
	t.Setenv("IDENTITY_URL", "https://auth.example.test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.CoreAPI.BaseURL != "https://api.example.test/api/v1" {
		t.Fatalf("unexpected core api url: %q", cfg.CoreAPI.BaseURL)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected default http addr: %q", cfg.HTTP.Addr)
	}
	if cfg.Queues.SearchDebounce != 300*time.Millisecond {
		t.Fatalf("unexpected default search debounce: %v", cfg.Queues.SearchDebounce)
	}
	if cfg.Queues.PageSize != 50 {
		t.Fatalf("unexpected default page size: %d", cfg.Queues.PageSize)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
env: prod
http:
  addr: ":9090"
core_api:
  base_url: "https://core.internal/api/v1"
  timeout: 5s
identity:
  base_url: "https://auth.internal"
  anon_key: "anon"
queues:
  search_debounce: 450ms
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Env != "prod" {
		t.Fatalf("unexpected env: %q", cfg.Env)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTP.Addr)
	}
	if cfg.CoreAPI.Timeout != 5*time.Second {
		t.Fatalf("unexpected core api timeout: %v", cfg.CoreAPI.Timeout)
	}
	if cfg.Queues.SearchDebounce != 450*time.Millisecond {
		t.Fatalf("unexpected search debounce: %v", cfg.Queues.SearchDebounce)
	}
}

func TestLoadRequiresCoreAPIURL(t *testing.T) {
	t.Setenv("CORE_API_URL", "")
	t.Setenv("IDENTITY_URL", "https://auth.example.test")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error when core api url is missing")
	}
}
