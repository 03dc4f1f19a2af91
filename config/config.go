package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server configuration
//   - store.go: Key-value store configuration
//   - catalog.go: Remote catalog API configuration
//   - loyalty.go: Loyalty program configuration
type AppConfig struct {
	// IsDev controls development mode behavior (in-memory store fallback, etc.)
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Key-value store configuration
	Store    StoreConfig
	Redis    RedisConfig `envPrefix:"REDIS_"`
	Postgres DBConfig    `envPrefix:"DB_"`

	// Remote catalog API configuration
	Catalog CatalogConfig

	// Loyalty program configuration
	Loyalty LoyaltyConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Store.Sanitize()
	c.Catalog.Sanitize()
	c.Loyalty.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
