// Package config handles configuration loading for chatpanel.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/diogo/chatpanel/internal/models"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`              // "dark", "light", or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`       // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"`  // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`         // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links"` // Render links inline in tables
}

// Config represents the user configuration
type Config struct {
	// APIKey is the Gemini API credential. It only ever comes from the
	// environment and is never written to disk.
	APIKey string `json:"-" env:"GEMINI_API_KEY"`
	// LegacyAPIKey is the variable name the web build of the widget used.
	LegacyAPIKey string `json:"-" env:"REACT_APP_GEMINI_API_KEY"`

	Model    string `json:"model" env:"CHATPANEL_MODEL"`
	Endpoint string `json:"endpoint" env:"CHATPANEL_ENDPOINT"`
	// TimeoutSeconds bounds a single request. 0 means no timeout.
	TimeoutSeconds int `json:"timeout_seconds" env:"CHATPANEL_TIMEOUT"`

	TUITheme        string         `json:"tui_theme,omitempty" env:"CHATPANEL_THEME"`
	LogFile         string         `json:"log_file,omitempty" env:"CHATPANEL_LOG_FILE"`
	LogLevel        string         `json:"log_level,omitempty" env:"CHATPANEL_LOG_LEVEL"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Model:           models.DefaultModel,
		Endpoint:        models.EndpointBase,
		TimeoutSeconds:  0,
		TUITheme:        "tokyonight",
		LogLevel:        "info",
		CopyToClipboard: false,
		Markdown:        DefaultMarkdownConfig(),
	}
}

// Key returns the API key, falling back to the legacy variable name.
func (c Config) Key() string {
	if k := strings.TrimSpace(c.APIKey); k != "" {
		return k
	}
	return strings.TrimSpace(c.LegacyAPIKey)
}

// Timeout returns the request timeout as a duration (0 = unbounded).
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedactedKey returns the API key masked for display.
func (c Config) RedactedKey() string {
	k := c.Key()
	switch {
	case k == "":
		return "(not set)"
	case len(k) <= 8:
		return strings.Repeat("*", len(k))
	default:
		return k[:4] + strings.Repeat("*", len(k)-8) + k[len(k)-4:]
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".chatpanel"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogPath returns the log file path from config, defaulting to the
// config directory.
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "chatpanel.log"), nil
}

// LoadConfig loads the configuration file from disk, on top of defaults.
// The environment is not consulted; see Load.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables onto cfg. Each dotenv file is
// loaded first when it exists; variables already set in the process win.
func ApplyEnv(cfg *Config, dotenvFiles ...string) error {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	// GLAMOUR_STYLE follows glamour's own convention
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		cfg.Markdown.Style = style
	}

	return nil
}

// Load returns the effective configuration: defaults, then the config
// file, then ./.env, then the process environment.
func Load() (Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, ".env"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
