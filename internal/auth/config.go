package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds token issuance settings. Loaded from config/auth.yaml when present,
// otherwise derived from the main configuration.
type Config struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpiryHours int    `yaml:"token_expiry_hours"`
	Issuer           string `yaml:"issuer"`
}

// LoadConfig reads auth settings from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read auth config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse auth config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig builds auth settings from plain values (the main config's JWT section)
func DefaultConfig(secret string, expiryHours int) *Config {
	cfg := &Config{
		JWTSecret:        secret,
		TokenExpiryHours: expiryHours,
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.TokenExpiryHours == 0 {
		c.TokenExpiryHours = 12
	}
	if c.Issuer == "" {
		c.Issuer = "contest-backend"
	}
}

// Validate checks required auth settings
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	return nil
}
