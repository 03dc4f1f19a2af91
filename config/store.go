package config

import "strings"

// StoreBackend selects the key-value store implementation.
type StoreBackend string

const (
	// StoreBackendRedis persists state in Redis (production default).
	StoreBackendRedis StoreBackend = "redis"
	// StoreBackendPostgres persists state in a single Postgres table.
	StoreBackendPostgres StoreBackend = "postgres"
	// StoreBackendMemory keeps state in process memory (dev/tests only).
	StoreBackendMemory StoreBackend = "memory"
)

// Valid reports whether the store backend is supported.
func (b StoreBackend) Valid() bool {
	switch b {
	case StoreBackendRedis, StoreBackendPostgres, StoreBackendMemory:
		return true
	default:
		return false
	}
}

// StoreConfig selects and tunes the key-value store used for cart
// snapshots, loyalty balances, and session fields.
type StoreConfig struct {
	// Backend is one of: redis, postgres, memory.
	Backend StoreBackend `env:"STORE_BACKEND" envDefault:"redis"`
}

// Sanitize applies guardrails to store configuration values.
func (s *StoreConfig) Sanitize() {
	s.Backend = StoreBackend(strings.ToLower(strings.TrimSpace(string(s.Backend))))
	if !s.Backend.Valid() {
		s.Backend = StoreBackendRedis
	}
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	// URI is either a host:port pair or a redis:// / rediss:// URL.
	URI      string `env:"URI"      envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// DBConfig contains PostgreSQL configuration for the postgres store backend.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"storefront"`
	Password string `env:"PASSWORD" envDefault:"storefront"`
	Name     string `env:"NAME"     envDefault:"storefront"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
}

// ObservabilityConfig contains metrics configuration.
type ObservabilityConfig struct {
	// StatsdAddr is the UDP address of a StatsD agent. Empty disables metrics.
	StatsdAddr string `env:"STATSD_ADDR" envDefault:""`

	// StatsdPrefix is prepended to every metric name.
	StatsdPrefix string `env:"STATSD_PREFIX" envDefault:"storefront"`
}
