package config

import (
	"strings"
	"time"
)

// CatalogConfig contains configuration for the remote catalog REST API.
type CatalogConfig struct {
	// BaseURL is the root of the catalog backend, e.g. "http://localhost:3000".
	// The client appends "/pizzas" and "/pizzas/{id}" to it.
	BaseURL string `env:"CATALOG_BASE_URL" envDefault:"http://localhost:3000"`

	// Timeout bounds each catalog request.
	Timeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"5s"`

	// RetryLimit is the number of retries after a failed call (0 = no retries).
	RetryLimit int `env:"CATALOG_RETRY_LIMIT" envDefault:"2"`

	// ItemsPath is an optional JMESPath expression applied to the list
	// response body. Some backends wrap the item array, e.g. {"data": [...]};
	// set CATALOG_ITEMS_PATH=data to unwrap. Empty means the response body is
	// the array itself.
	ItemsPath string `env:"CATALOG_ITEMS_PATH" envDefault:""`
}

// Sanitize applies guardrails to catalog configuration values.
func (c *CatalogConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.RetryLimit < 0 {
		c.RetryLimit = 0
	}
	c.ItemsPath = strings.TrimSpace(c.ItemsPath)
}
