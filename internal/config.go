package internal

import (
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	BaseURL     string        `env:"HEROES_API_BASE_URL,default=http://localhost:8080/api"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,default=0s"`
	LogLevel    string        `env:"LOG_LEVEL,default=INFO"`
	Colours     bool          `env:"COLOURS,default=true"`
}

// Validate rejects a base URL the heroes endpoint cannot be appended to.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("HEROES_API_BASE_URL is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("HEROES_API_BASE_URL must be http(s), got %q", c.BaseURL)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative, got %s", c.HTTPTimeout)
	}
	return nil
}
