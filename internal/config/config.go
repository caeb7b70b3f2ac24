package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Database    Database    `yaml:"database"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	Theme       Theme       `yaml:"theme"`
}

// Database configures the backing store
type Database struct {
	// Path overrides the default ~/.grocer/grocer.db location
	Path string `yaml:"path"`
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return defaultConfig(), nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file. GROCER_CONFIG wins,
// then XDG_CONFIG_HOME, then ~/.config.
func getConfigPath() (string, error) {
	if path := os.Getenv("GROCER_CONFIG"); path != "" {
		return path, nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "grocer", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "grocer", "config.yaml"), nil
}

func defaultConfig() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Theme:       DefaultTheme(),
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.Theme.applyDefaults()
}
