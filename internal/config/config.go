package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	MQTT        MQTTConfig         `yaml:"mqtt,omitempty"`
	Rates       map[string]float64 `yaml:"rates,omitempty"`        // Billing rate per hour, keyed by project
	DefaultRate float64            `yaml:"default_rate,omitempty"` // Fallback rate for projects not in Rates
}

// MQTTConfig holds the MQTT broker configuration for publishing day records
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"` // e.g., "homeserver.local:1883"
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // defaults to "punchclock"
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetRate returns the hourly billing rate for a project, falling back to
// the default rate, or 0 if neither is set
func (c *Config) GetRate(project string) float64 {
	if rate, ok := c.Rates[project]; ok {
		return rate
	}
	return c.DefaultRate
}

// GetTopicPrefix returns the MQTT topic prefix with a default of "punchclock"
func (c *Config) GetTopicPrefix() string {
	if c.MQTT.TopicPrefix == "" {
		return "punchclock"
	}
	return c.MQTT.TopicPrefix
}
