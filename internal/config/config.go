package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the client configuration
type Config struct {
	Services struct {
		ProfileURL string `yaml:"profile_url" env:"CC_PROFILE_URL"`
		CourseURL  string `yaml:"course_url" env:"CC_COURSE_URL"`
		ForumURL   string `yaml:"forum_url" env:"CC_FORUM_URL"`
		ChatURL    string `yaml:"chat_url" env:"CC_CHAT_URL"`
	} `yaml:"services"`

	HTTP struct {
		Timeout    string `yaml:"timeout" env:"CC_HTTP_TIMEOUT"`
		MaxRetries int    `yaml:"max_retries" env:"CC_HTTP_MAX_RETRIES"`
	} `yaml:"http"`

	Listing struct {
		PageSize int `yaml:"page_size" env:"CC_PAGE_SIZE"`
	} `yaml:"listing"`

	Logging struct {
		Level  string `yaml:"level" env:"CC_LOG_LEVEL"`
		Pretty bool   `yaml:"pretty" env:"CC_LOG_PRETTY"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// The file is optional; environment variables always win.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Services.ProfileURL = "http://localhost:8080"
	config.Services.CourseURL = "http://localhost:8081"
	config.Services.ForumURL = "http://localhost:8082"
	config.Services.ChatURL = "http://localhost:8083"

	config.HTTP.Timeout = "15s"
	config.HTTP.MaxRetries = 0 // retries are user-initiated, never automatic

	config.Listing.PageSize = 10

	config.Logging.Level = "info"
	config.Logging.Pretty = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Services.ProfileURL == "" {
		return fmt.Errorf("profile service URL is required")
	}
	if config.Services.CourseURL == "" {
		return fmt.Errorf("course service URL is required")
	}
	if config.Services.ForumURL == "" {
		return fmt.Errorf("forum service URL is required")
	}
	if config.Services.ChatURL == "" {
		return fmt.Errorf("chat service URL is required")
	}

	if _, err := time.ParseDuration(config.HTTP.Timeout); err != nil {
		return fmt.Errorf("invalid HTTP timeout format: %w", err)
	}

	if config.Listing.PageSize <= 0 {
		return fmt.Errorf("page size must be positive")
	}

	return nil
}

// HTTPTimeout returns the parsed request timeout. validateConfig already
// rejected malformed values, so the zero fallback only covers an unset field.
func (c *Config) HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(c.HTTP.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}
