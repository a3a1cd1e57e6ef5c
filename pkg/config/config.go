/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Config represents the ftlsave configuration
type Config struct {
	SavesDir   string  `yaml:"saves_dir"`
	Blueprints string  `yaml:"blueprints"`
	BackupDir  string  `yaml:"backup_dir"`
	BackupKeep int     `yaml:"backup_keep"` // snapshots kept per save, 0 keeps all
	Server     Server  `yaml:"server"`
	Logging    Logging `yaml:"logging"`
	Watch      Watch   `yaml:"watch"`
}

// Server contains the inspection API settings
type Server struct {
	Bind   string `yaml:"bind"`
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Watch contains save-directory watcher settings
type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		SavesDir:   ".",
		Blueprints: "./blueprints.yaml",
		BackupDir:  "./backups",
		BackupKeep: 20,
		Server: Server{
			Bind:   "127.0.0.1",
			Port:   8080,
			APIKey: "auto",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Watch: Watch{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks the values a command cannot work without
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	if c.BackupKeep < 0 {
		return fmt.Errorf("invalid backup keep %d", c.BackupKeep)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("invalid watch debounce %s", c.Watch.Debounce)
	}
	return nil
}

// LoadConfig loads configuration from the specified path. Fields missing
// from the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadINI reads a legacy ftlsave.ini. The default section may set dir and
// blueprints; a [logging] section may set level. Everything else keeps its
// default.
func LoadINI(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load ini file: %w", err)
	}

	config := DefaultConfig()
	// the default section is addressed by the empty name
	root := file.Section("")
	if dir := root.Key("dir").String(); dir != "" {
		config.SavesDir = dir
	}
	if blueprints := root.Key("blueprints").String(); blueprints != "" {
		config.Blueprints = blueprints
	}
	if level := file.Section("logging").Key("level").String(); level != "" {
		config.Logging.Level = level
	}
	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600: the file holds the API key
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated API key
func BootstrapConfig(configPath string, savesDir string) (*Config, error) {
	config := DefaultConfig()
	if savesDir != "" {
		config.SavesDir = savesDir
	}

	apiKey, err := GenerateSecureKey(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Server.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./ftlsave.yaml"
	}

	// ~/.config/ftlsave/config.yaml on Linux and macOS
	return filepath.Join(homeDir, ".config", "ftlsave", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
