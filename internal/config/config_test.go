package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":3000" {
		t.Errorf("expected addr :3000, got %s", cfg.Server.Addr)
	}
	if cfg.Server.Source != SourceMemory {
		t.Errorf("expected memory source, got %s", cfg.Server.Source)
	}
	if cfg.Client.PageSize != 50 {
		t.Errorf("expected page_size 50, got %d", cfg.Client.PageSize)
	}
	if cfg.Table.Overscan != 10 {
		t.Errorf("expected overscan 10, got %d", cfg.Table.Overscan)
	}
	if cfg.Table.DebounceMS != 200 {
		t.Errorf("expected debounce_ms 200, got %d", cfg.Table.DebounceMS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Table.RowHeight != 1 {
		t.Errorf("expected default row_height, got %d", cfg.Table.RowHeight)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[server]
addr = ":8081"
source = "sqlite"
db_path = "/tmp/test.db"
cors_origins = ["http://localhost:5173"]

[client]
base_url = "http://example.test:8081"
page_size = 25
timeout = "3s"

[table]
row_height = 2
overscan = 4
debounce_ms = 150
load_threshold = 6
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Source != SourceSQLite {
		t.Errorf("expected sqlite source, got %s", cfg.Server.Source)
	}
	if cfg.Server.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Server.DBPath)
	}
	if len(cfg.Server.CORSOrigins) != 1 {
		t.Errorf("expected 1 cors origin, got %v", cfg.Server.CORSOrigins)
	}
	if cfg.Client.PageSize != 25 {
		t.Errorf("expected page_size 25, got %d", cfg.Client.PageSize)
	}
	if d, _ := cfg.ClientTimeout(); d != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", d)
	}
	if cfg.Table.RowHeight != 2 || cfg.Table.Overscan != 4 || cfg.Table.LoadThreshold != 6 {
		t.Errorf("unexpected table config: %+v", cfg.Table)
	}
	if cfg.Debounce() != 150*time.Millisecond {
		t.Errorf("expected debounce 150ms, got %v", cfg.Debounce())
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[server]
addr = ":9000"
data_path = "/data/users.json"

[client]
page_size = 20
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set env vars
	t.Setenv("PORT", "4000")
	t.Setenv("PAGETABLE_PAGE_SIZE", "75")
	t.Setenv("PAGETABLE_CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Server.Addr != ":4000" {
		t.Errorf("expected addr :4000 from PORT, got %s", cfg.Server.Addr)
	}
	if cfg.Client.PageSize != 75 {
		t.Errorf("expected page_size 75 from env, got %d", cfg.Client.PageSize)
	}
	// File value should be kept when no env override
	if cfg.Server.DataPath != "/data/users.json" {
		t.Errorf("expected data_path from file, got %s", cfg.Server.DataPath)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.test" {
		t.Errorf("unexpected cors origins: %q", cfg.Server.CORSOrigins)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	content := "PAGETABLE_UI_THEME=latte\nPAGETABLE_BASE_URL=http://from-dotenv.test\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	t.Setenv("PAGETABLE_BASE_URL", "http://from-env.test")
	t.Setenv("PAGETABLE_UI_THEME", "")
	_ = os.Unsetenv("PAGETABLE_UI_THEME")

	loadDotEnv(envPath)
	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme from .env, got %s", cfg.UI.Theme)
	}
	if cfg.Client.BaseURL != "http://from-env.test" {
		t.Errorf("environment should win over .env, got %s", cfg.Client.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown source", func(c *Config) { c.Server.Source = "postgres" }},
		{"memory source without data path", func(c *Config) { c.Server.DataPath = "" }},
		{"sqlite source without db path", func(c *Config) { c.Server.Source = SourceSQLite; c.Server.DBPath = "" }},
		{"relative base url", func(c *Config) { c.Client.BaseURL = "localhost:3000" }},
		{"zero page size", func(c *Config) { c.Client.PageSize = 0 }},
		{"bad timeout", func(c *Config) { c.Client.Timeout = "soon" }},
		{"zero row height", func(c *Config) { c.Table.RowHeight = 0 }},
		{"negative overscan", func(c *Config) { c.Table.Overscan = -1 }},
		{"zero debounce", func(c *Config) { c.Table.DebounceMS = 0 }},
		{"negative threshold", func(c *Config) { c.Table.LoadThreshold = -2 }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.Client.PageSize = 30
	cfg.Table.Overscan = 3
	cfg.UI.Theme = "latte"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Client.PageSize != 30 {
		t.Errorf("expected page_size 30, got %d", loaded.Client.PageSize)
	}
	if loaded.Table.Overscan != 3 {
		t.Errorf("expected overscan 3, got %d", loaded.Table.Overscan)
	}
	if loaded.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", loaded.UI.Theme)
	}
}
