// Package config loads user settings from ~/.tada/config.yaml with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config is the on-disk settings file.
type Config struct {
	Store    string `yaml:"store"`
	DataDir  string `yaml:"data_dir"`
	Locale   string `yaml:"locale"`
	Theme    string `yaml:"theme"`
	LogLevel string `yaml:"log_level"`
}

// Dir is ~/.tada, falling back to the working directory when there is
// no home.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tada"
	}
	return filepath.Join(home, ".tada")
}

// DefaultPath is where Load looks when no --config is given.
func DefaultPath() string { return filepath.Join(Dir(), "config.yaml") }

func Default() *Config {
	return &Config{
		Store:    StoreJSON,
		DataDir:  Dir(),
		Locale:   "sv",
		Theme:    "classic",
		LogLevel: "warn",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.Normalize()
	cfg.DataDir = expandHome(cfg.DataDir)
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TADA_STORE"); v != "" {
		c.Store = v
	}
	if v := os.Getenv("TADA_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TADA_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("TADA_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Normalize folds case and surrounding space out of the enumerated
// fields so every later check sees the same value.
func (c *Config) Normalize() {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.DataDir = strings.TrimSpace(c.DataDir)
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("store: unknown driver %q (want %s or %s)", c.Store, StoreJSON, StoreSQLite)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir: must not be empty")
	}
	if _, err := c.LanguageTag(); err != nil {
		return err
	}
	if _, err := ui.ThemeByName(c.Theme); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// LanguageTag parses Locale for the collator.
func (c *Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
