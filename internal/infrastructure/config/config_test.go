package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg = applyDefaults(cfg)

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.HTTP.Addr)
	}
	if cfg.Session.IdleTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %v", cfg.Session.IdleTTL)
	}
	if cfg.Rules.BankerPayout != 0.95 || cfg.Rules.PlayerPayout != 1.0 || cfg.Rules.MinWinRate != 0.55 {
		t.Errorf("unexpected rules %+v", cfg.Rules)
	}
	if cfg.UI.DefaultLang != "zh-TW" {
		t.Errorf("expected zh-TW, got %s", cfg.UI.DefaultLang)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SESSION_IDLE_TTL", "5m")
	t.Setenv("RULES_BANKER_PAYOUT", "1.2")
	t.Setenv("RULES_MIN_WIN_RATE", "bad")

	cfg := applyEnv(applyDefaults(Config{}))

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.HTTP.Addr)
	}
	if cfg.Session.IdleTTL != 5*time.Minute {
		t.Errorf("expected 5m, got %v", cfg.Session.IdleTTL)
	}
	if cfg.Rules.BankerPayout != 1.2 {
		t.Errorf("expected 1.2, got %v", cfg.Rules.BankerPayout)
	}
	if cfg.Rules.MinWinRate != 0.55 {
		t.Errorf("unparsable value should be ignored, got %v", cfg.Rules.MinWinRate)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("MissingFile", func(t *testing.T) {
		cfg, err := LoadFromFile(filepath.Join(dir, "nope.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Session.Secret == "" {
			t.Error("expected default secret")
		}
	})

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		body := "http:\n  addr: \":7070\"\nsession:\n  idle_ttl: 10m\nrules:\n  min_win_rate: 0.6\n"
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.HTTP.Addr != ":7070" || cfg.Session.IdleTTL != 10*time.Minute || cfg.Rules.MinWinRate != 0.6 {
			t.Errorf("unexpected config %+v", cfg)
		}
	})

	t.Run("InvalidRules", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("rules:\n  min_win_rate: 1.5\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFromFile(path); err == nil {
			t.Error("expected error for invalid rules")
		}
	})

	t.Run("BadYAML", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("http: [\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFromFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestConfig_AllowedOriginsEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.example , ,http://b.example")

	cfg := applyEnv(applyDefaults(Config{}))

	if len(cfg.HTTP.AllowedOrigins) != 2 || cfg.HTTP.AllowedOrigins[0] != "http://a.example" || cfg.HTTP.AllowedOrigins[1] != "http://b.example" {
		t.Errorf("unexpected origins %v", cfg.HTTP.AllowedOrigins)
	}
	if len(applyDefaults(Config{}).HTTP.AllowedOrigins) != 0 {
		t.Error("default must be same-origin only")
	}
}
