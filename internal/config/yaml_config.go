package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"pecheck/internal/registry"
)

// YAMLConfig represents the structure of the config.yaml file.
// Record overrides are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Overrides []registry.Entry `yaml:"overrides"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLFile loads the YAML configuration at path.
func LoadYAMLFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	for i := range cfg.Overrides {
		cfg.Overrides[i].Key = registry.NormalizeKey(cfg.Overrides[i].Key)
	}

	return &cfg, nil
}

// GetOverrides returns the configured override entries.
func (c *YAMLConfig) GetOverrides() []registry.Entry {
	if c == nil {
		return nil
	}
	return c.Overrides
}

// GetOverride finds an override by its key.
func (c *YAMLConfig) GetOverride(key string) *registry.Entry {
	if c == nil {
		return nil
	}
	key = registry.NormalizeKey(key)
	for i := range c.Overrides {
		if c.Overrides[i].Key == key {
			return &c.Overrides[i]
		}
	}
	return nil
}
