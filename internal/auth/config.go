package auth

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AuthConfig holds the settings for JWT validation and issuance. Tokens are
// normally issued by the external authenticator; the local issuance path
// exists for the token-exchange endpoint and for seeding.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	Issuer    string        `yaml:"issuer"`
	Audience  string        `yaml:"audience"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// UnmarshalYAML parses token_ttl from a duration string like "1h" or "30m".
func (c *AuthConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		JWTSecret string `yaml:"jwt_secret"`
		Issuer    string `yaml:"issuer"`
		Audience  string `yaml:"audience"`
		TokenTTL  string `yaml:"token_ttl"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.JWTSecret != "" {
		c.JWTSecret = raw.JWTSecret
	}
	if raw.Issuer != "" {
		c.Issuer = raw.Issuer
	}
	if raw.Audience != "" {
		c.Audience = raw.Audience
	}
	if raw.TokenTTL != "" {
		ttl, err := time.ParseDuration(raw.TokenTTL)
		if err != nil {
			return fmt.Errorf("invalid token_ttl: %w", err)
		}
		c.TokenTTL = ttl
	}
	return nil
}

// LoadAuthConfig reads auth settings from a YAML file, falling back to
// environment variables for anything the file omits. A missing file is not
// an error; JWT_SECRET must come from somewhere either way.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	config := &AuthConfig{
		Issuer:   "expense-portal-backend",
		Audience: "expense-portal",
		TokenTTL: time.Hour,
	}

	if configPath == "" {
		configPath = "config/auth.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing auth config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading auth config file: %w", err)
	}

	// Environment overrides for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		config.Issuer = issuer
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
