package conf

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func setTestEnv(t *testing.T, overrides map[string]string) {
	t.Helper()
	vars := []string{
		"API_ID", "API_HASH", "SESSION_FILE", "STRING_SESSION",
		"SOURCES", "BANNER_URL", "DEST_CHAT", "ADMIN_ID",
		"DATA_DIR", "REPLIES_CONFIG_PATH", "DEBUG",
	}
	for _, v := range vars {
		t.Setenv(v, overrides[v])
	}
	// Keep the replies lookup away from any real configs/ directory.
	if overrides["REPLIES_CONFIG_PATH"] == "" {
		t.Setenv("REPLIES_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	}
}

func TestLoadFromEnv(t *testing.T) {
	setTestEnv(t, map[string]string{
		"API_ID":    "12345",
		"API_HASH":  "abcdef",
		"DEST_CHAT": "-1009999",
		"ADMIN_ID":  "111",
		"SOURCES":   "100, 200 ,,300",
		"DATA_DIR":  "/var/lib/userbot",
		"DEBUG":     "true",
	})

	cfg := LoadFromEnv()

	if cfg.Telegram.AppID != 12345 {
		t.Errorf("unexpected app id: %d", cfg.Telegram.AppID)
	}
	if cfg.Telegram.AppHash != "abcdef" {
		t.Errorf("unexpected app hash: %q", cfg.Telegram.AppHash)
	}
	if cfg.Forward.DestChat != "-1009999" || cfg.Forward.AdminID != "111" {
		t.Errorf("unexpected forward config: %+v", cfg.Forward)
	}
	if want := []string{"100", "200", "300"}; !reflect.DeepEqual(cfg.Forward.InitialSources, want) {
		t.Errorf("unexpected initial sources: %v", cfg.Forward.InitialSources)
	}
	if !cfg.Debug {
		t.Error("expected debug mode enabled")
	}
	if cfg.Forward.BannerURL == "" {
		t.Error("expected the default banner URL")
	}
	if cfg.Replies == nil {
		t.Fatal("expected replies config")
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	setTestEnv(t, nil)

	cfg := LoadFromEnv()

	if cfg.DataDir != "." {
		t.Errorf("unexpected data dir: %q", cfg.DataDir)
	}
	if cfg.Telegram.SessionFile != filepath.Join(".", ".session") {
		t.Errorf("unexpected session file: %q", cfg.Telegram.SessionFile)
	}
	if cfg.Forward.InitialSources != nil {
		t.Errorf("expected no initial sources, got %v", cfg.Forward.InitialSources)
	}
	if cfg.Debug {
		t.Error("expected debug mode disabled")
	}
}

func TestLoadFromEnvMalformedRepliesFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replies.yaml")
	if err := os.WriteFile(path, []byte("menu: [broken"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	setTestEnv(t, map[string]string{"REPLIES_CONFIG_PATH": path})

	cfg := LoadFromEnv()

	if cfg.Replies == nil {
		t.Fatal("expected default replies config")
	}
	if cfg.Replies.Menu.Caption != DefaultRepliesConfig().Menu.Caption {
		t.Errorf("expected default caption, got %q", cfg.Replies.Menu.Caption)
	}
}

func TestSourcesFileAndStateDBPath(t *testing.T) {
	cfg := &Config{DataDir: "/data"}

	if got := cfg.SourcesFile(); got != filepath.Join("/data", "sources.json") {
		t.Errorf("unexpected sources file: %q", got)
	}
	if got := cfg.StateDBPath(); got != filepath.Join("/data", "state.db") {
		t.Errorf("unexpected state db path: %q", got)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Telegram: TelegramConfig{AppID: 12345, AppHash: "abcdef"},
			Forward:  ForwardConfig{DestChat: "-1009999", AdminID: "111"},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing app id", func(c *Config) { c.Telegram.AppID = 0 }},
		{"missing app hash", func(c *Config) { c.Telegram.AppHash = "" }},
		{"missing dest chat", func(c *Config) { c.Forward.DestChat = "" }},
		{"missing admin id", func(c *Config) { c.Forward.AdminID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if _, ok := err.(*ConfigError); !ok {
				t.Errorf("expected *ConfigError, got %T", err)
			}
		})
	}
}
