// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Record sources the server can read from.
const (
	SourceMemory = "memory"
	SourceSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Client ClientConfig `toml:"client"`
	Table  TableConfig  `toml:"table"`
	UI     UIConfig     `toml:"ui"`
}

// ServerConfig holds data source settings.
type ServerConfig struct {
	Addr        string   `toml:"addr"`         // e.g., ":3000"
	Source      string   `toml:"source"`       // "memory" or "sqlite"
	DataPath    string   `toml:"data_path"`    // JSON array of users, read once
	DBPath      string   `toml:"db_path"`      // SQLite database for the sqlite source
	CORSOrigins []string `toml:"cors_origins"` // empty allows every origin
	GinMode     string   `toml:"gin_mode"`     // "debug", "release", "test"
}

// ClientConfig holds settings for talking to the data source.
type ClientConfig struct {
	BaseURL  string `toml:"base_url"`  // e.g., "http://localhost:3000"
	PageSize int    `toml:"page_size"` // records per request
	Timeout  string `toml:"timeout"`   // e.g., "10s"
}

// TableConfig holds virtualized table tuning.
type TableConfig struct {
	RowHeight     int `toml:"row_height"`     // estimated lines per row
	Overscan      int `toml:"overscan"`       // rows rendered beyond the viewport
	DebounceMS    int `toml:"debounce_ms"`    // quiet period before checking scroll position
	LoadThreshold int `toml:"load_threshold"` // lines from the bottom that trigger a load
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:     ":3000",
			Source:   SourceMemory,
			DataPath: "users.json",
			DBPath:   defaultDBPath(),
			GinMode:  "release",
		},
		Client: ClientConfig{
			BaseURL:  "http://localhost:3000",
			PageSize: 50,
			Timeout:  "10s",
		},
		Table: TableConfig{
			RowHeight:     1,
			Overscan:      10,
			DebounceMS:    200,
			LoadThreshold: 4,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagetable.db"
	}
	return filepath.Join(home, ".local", "share", "pagetable", "pagetable.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "pagetable", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, loads a .env
// file from the working directory if present, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	loadDotEnv(".env")
	applyEnvOverrides(cfg)

	cfg.Server.DataPath = expandPath(cfg.Server.DataPath)
	cfg.Server.DBPath = expandPath(cfg.Server.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// loadDotEnv populates unset environment variables from a .env file.
// Variables already present in the environment win.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("warning: could not load %s: %v", path, err)
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("PAGETABLE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PAGETABLE_SOURCE"); v != "" {
		cfg.Server.Source = v
	}
	if v := os.Getenv("PAGETABLE_DATA_PATH"); v != "" {
		cfg.Server.DataPath = v
	}
	if v := os.Getenv("PAGETABLE_DB_PATH"); v != "" {
		cfg.Server.DBPath = v
	}
	if v := os.Getenv("PAGETABLE_CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.GinMode = v
	}

	// Client overrides
	if v := os.Getenv("PAGETABLE_BASE_URL"); v != "" {
		cfg.Client.BaseURL = v
	}
	if v := os.Getenv("PAGETABLE_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Client.PageSize = n
		}
	}
	if v := os.Getenv("PAGETABLE_TIMEOUT"); v != "" {
		cfg.Client.Timeout = v
	}

	// UI overrides
	if v := os.Getenv("PAGETABLE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server addr must be set")
	}
	switch c.Server.Source {
	case SourceMemory:
		if c.Server.DataPath == "" {
			return errors.New("data_path must be set for the memory source")
		}
	case SourceSQLite:
		if c.Server.DBPath == "" {
			return errors.New("db_path must be set for the sqlite source")
		}
	default:
		return fmt.Errorf("invalid source: %q (want %q or %q)", c.Server.Source, SourceMemory, SourceSQLite)
	}

	u, err := url.Parse(c.Client.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got %q", c.Client.BaseURL)
	}
	if c.Client.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.Client.PageSize)
	}
	if _, err := c.ClientTimeout(); err != nil {
		return err
	}

	if c.Table.RowHeight < 1 {
		return fmt.Errorf("row_height must be at least 1, got %d", c.Table.RowHeight)
	}
	if c.Table.Overscan < 0 {
		return fmt.Errorf("overscan must not be negative, got %d", c.Table.Overscan)
	}
	if c.Table.DebounceMS < 1 {
		return fmt.Errorf("debounce_ms must be at least 1, got %d", c.Table.DebounceMS)
	}
	if c.Table.LoadThreshold < 0 {
		return fmt.Errorf("load_threshold must not be negative, got %d", c.Table.LoadThreshold)
	}
	return nil
}

// ClientTimeout parses the client timeout.
func (c *Config) ClientTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Client.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("timeout must be a positive duration, got %q", c.Client.Timeout)
	}
	return d, nil
}

// Debounce returns the scroll debounce delay.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Table.DebounceMS) * time.Millisecond
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
