// Package config handles configuration for chatptatlas.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	apierrors "github.com/diogo/chatptatlas/internal/errors"
)

// ConfigDirEnv relocates the configuration directory (useful for tests and containers)
const ConfigDirEnv = "CHATPTATLAS_CONFIG_DIR"

// MarkdownConfig configures markdown rendering of assistant replies
type MarkdownConfig struct {
	// Style is "dark", "light", "notty" or a path to a glamour JSON theme.
	Style            string `json:"style" env:"CHATPTATLAS_MARKDOWN_STYLE"`
	EnableEmoji      bool   `json:"enable_emoji" env:"CHATPTATLAS_MARKDOWN_EMOJI"`
	PreserveNewLines bool   `json:"preserve_newlines" env:"CHATPTATLAS_MARKDOWN_PRESERVE_NEWLINES"`
}

// Config represents the user configuration
type Config struct {
	// TUITheme names the color theme of the chat view.
	TUITheme string `json:"tui_theme" env:"CHATPTATLAS_THEME"`
	// ReplyDelayMs is the simulated latency of the assistant in milliseconds.
	ReplyDelayMs int `json:"reply_delay_ms" env:"CHATPTATLAS_REPLY_DELAY_MS"`
	// Seed fixes the reply sequence. Zero seeds from the current time.
	Seed            uint64 `json:"seed" env:"CHATPTATLAS_SEED"`
	CopyToClipboard bool   `json:"copy_to_clipboard" env:"CHATPTATLAS_COPY_TO_CLIPBOARD"`
	LogLevel        string `json:"log_level" env:"CHATPTATLAS_LOG_LEVEL"`
	// LogFile is where --debug writes. Empty means chatptatlas.log in the config dir.
	LogFile  string         `json:"log_file,omitempty" env:"CHATPTATLAS_LOG_FILE"`
	Markdown MarkdownConfig `json:"markdown"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		TUITheme:        "tokyonight",
		ReplyDelayMs:    1000,
		Seed:            0,
		CopyToClipboard: false,
		LogLevel:        "info",
		Markdown:        DefaultMarkdownConfig(),
	}
}

// ReplyDelay returns the reply latency as a duration
func (c Config) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMs) * time.Millisecond
}

// Validate checks values that cannot be fixed up silently
func (c Config) Validate() error {
	if c.ReplyDelayMs < 0 {
		return apierrors.NewConfigError("", fmt.Sprintf("reply_delay_ms is %d", c.ReplyDelayMs), apierrors.ErrInvalidDelay)
	}
	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return apierrors.NewConfigError("", fmt.Sprintf("unknown log_level %q", c.LogLevel), nil)
	}
	return nil
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".chatptatlas"), nil
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

// GetLogPath returns the debug log path, creating its directory if necessary
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o700); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return cfg.LogFile, nil
	}

	configDir, err := EnsureConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "chatptatlas.log"), nil
}

// LoadConfig loads the configuration from disk and applies environment overrides
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), apierrors.NewConfigError(configPath, "failed to parse config file", err)
		}
	case os.IsNotExist(err):
		// Defaults plus environment
	default:
		return cfg, apierrors.NewConfigError(configPath, "failed to read config file", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), apierrors.NewConfigError("", "failed to parse environment", err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

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
