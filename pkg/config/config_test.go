package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ".", config.SavesDir)
	assert.Equal(t, "./blueprints.yaml", config.Blueprints)
	assert.Equal(t, "./backups", config.BackupDir)
	assert.Equal(t, 20, config.BackupKeep)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "127.0.0.1", config.Server.Bind)
	assert.Equal(t, "auto", config.Server.APIKey)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.Equal(t, 500*time.Millisecond, config.Watch.Debounce)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "invalid server port"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "invalid logging level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "invalid logging format"},
		{"negative backup keep", func(c *Config) { c.BackupKeep = -1 }, "invalid backup keep"},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }, "invalid watch debounce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGenerateSecureKey(t *testing.T) {
	t.Run("generate 32 byte key", func(t *testing.T) {
		key, err := GenerateSecureKey(32)
		require.NoError(t, err)
		assert.Len(t, key, 64) // 32 bytes = 64 hex characters

		_, err = hex.DecodeString(key)
		assert.NoError(t, err)
	})

	t.Run("generate different keys", func(t *testing.T) {
		key1, err := GenerateSecureKey(16)
		require.NoError(t, err)
		key2, err := GenerateSecureKey(16)
		require.NoError(t, err)

		assert.NotEqual(t, key1, key2)
	})

	t.Run("zero length", func(t *testing.T) {
		key, err := GenerateSecureKey(0)
		require.NoError(t, err)
		assert.Empty(t, key)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")
		expectedConfig := &Config{
			SavesDir:   "/games/ftl",
			Blueprints: "/games/ftl/blueprints.yaml",
			BackupDir:  "/var/backups/ftl",
			BackupKeep: 5,
			Server: Server{
				Bind:   "0.0.0.0",
				Port:   9000,
				APIKey: "test-api-key",
			},
			Logging: Logging{
				Level:  "debug",
				Format: "json",
			},
			Watch: Watch{
				Debounce: 2 * time.Second,
			},
		}

		err := SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(configPath, []byte("saves_dir: /saves\nwatch:\n  debounce: 1s\n"), 0644)
		require.NoError(t, err)

		config, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, "/saves", config.SavesDir)
		assert.Equal(t, time.Second, config.Watch.Debounce)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "info", config.Logging.Level)
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "invalid.yaml")
		err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoadINI(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ftlsave.ini")
		content := "dir = /home/player/FasterThanLight\nblueprints = /opt/ftl/blueprints.yaml\n\n[logging]\nlevel = debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		config, err := LoadINI(path)
		require.NoError(t, err)
		assert.Equal(t, "/home/player/FasterThanLight", config.SavesDir)
		assert.Equal(t, "/opt/ftl/blueprints.yaml", config.Blueprints)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, 8080, config.Server.Port)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ftlsave.ini")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		config, err := LoadINI(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadINI(filepath.Join(t.TempDir(), "missing.ini"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load ini file")
	})
}

func TestSaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	config := DefaultConfig()

	err := SaveConfig(config, configPath)
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestBootstrapConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	savesDir := "/custom/saves"

	config, err := BootstrapConfig(configPath, savesDir)
	require.NoError(t, err)

	assert.Equal(t, savesDir, config.SavesDir)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "info", config.Logging.Level)

	assert.NotEqual(t, "auto", config.Server.APIKey)
	_, err = hex.DecodeString(config.Server.APIKey)
	assert.NoError(t, err)

	assert.True(t, ConfigExists(configPath))

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "ftlsave")
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingPath := filepath.Join(tmpDir, "exists.yaml")
	nonExistentPath := filepath.Join(tmpDir, "does-not-exist.yaml")

	err := os.WriteFile(existingPath, []byte("test"), 0644)
	require.NoError(t, err)

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(nonExistentPath))
}

func TestConfigYAMLMarshalling(t *testing.T) {
	config := DefaultConfig()
	config.Watch.Debounce = 1500 * time.Millisecond

	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debounce: 1.5s")

	var unmarshalled Config
	err = yaml.Unmarshal(data, &unmarshalled)
	require.NoError(t, err)

	assert.Equal(t, config, &unmarshalled)
}

func TestSaveConfigErrorHandling(t *testing.T) {
	config := DefaultConfig()

	// a regular file where the config directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	invalidPath := filepath.Join(blocker, "sub", "config.yaml")

	err := SaveConfig(config, invalidPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}
