package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdirForTest(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != "development" || cfg.HTTP.Port != 7090 || cfg.HTTP.Host != "0.0.0.0" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Budget.ItemsPerPage != 12 || cfg.Budget.DefaultCurrency != "USD" || cfg.Budget.SessionTTL != 24*time.Hour {
		t.Fatalf("unexpected budget defaults: %+v", cfg.Budget)
	}
	if cfg.DB.Enabled() {
		t.Fatalf("database should be disabled without DB_DSN")
	}
	if !reflect.DeepEqual(cfg.HTTP.AllowedOrigins, []string{"*"}) {
		t.Fatalf("origins = %v", cfg.HTTP.AllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("BUDGET_DEFAULT_CURRENCY", "ars")
	t.Setenv("BUDGET_SESSION_TTL", "90m")
	t.Setenv("DB_DSN", "postgres://localhost/pricing")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 8081 || cfg.Budget.DefaultCurrency != "ARS" || cfg.Budget.SessionTTL != 90*time.Minute {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.HTTP.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("origins = %v", cfg.HTTP.AllowedOrigins)
	}
	if !cfg.DB.Enabled() {
		t.Fatalf("database should be enabled")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"items per page": {"BUDGET_ITEMS_PER_PAGE": "0"},
		"currency":       {"BUDGET_DEFAULT_CURRENCY": "GBP"},
		"ttl":            {"BUDGET_SESSION_TTL": "forever"},
		"lifetime":       {"DB_DSN": "postgres://x", "DB_CONN_MAX_LIFETIME": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			chdirForTest(t, t.TempDir())
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
