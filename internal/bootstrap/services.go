package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ovenside/storefront-api/config"
	"github.com/ovenside/storefront-api/internal/adapters/catalogrest"
	"github.com/ovenside/storefront-api/internal/core"
	"github.com/ovenside/storefront-api/internal/data"
	"github.com/ovenside/storefront-api/internal/observability/statsd"
	"github.com/ovenside/storefront-api/internal/service"
)

// ServiceDeps holds the external connections services are built from.
// Exactly one of DB / RedisClient is set outside dev, matching the
// configured store backend.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer bundles the constructed services for the HTTP surface.
type ServiceContainer struct {
	KV       core.KVRepository
	State    core.StateRepository
	Cart     *service.CartService
	Sessions *service.SessionService
	Catalog  *service.CatalogService
	Metrics  *statsd.Client
}

// NewServices constructs the service graph over the configured store backend
// and hydrates the persisted session so the live cart matches the last run.
func NewServices(ctx context.Context, deps *ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Address: cfg.Observability.StatsdAddr,
		Prefix:  cfg.Observability.StatsdPrefix,
		Logger:  logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("statsd client: %w", err)
	}

	kv, err := buildKV(ctx, cfg, deps)
	if err != nil {
		return ServiceContainer{}, err
	}
	state := data.NewKVStateRepo(kv)

	cart := service.NewCartService(service.CartServiceOptions{
		State: state,
		Config: service.CartServiceConfig{
			PointsPerUnit:   cfg.Loyalty.PointsPerUnit,
			RewardThreshold: cfg.Loyalty.RewardThreshold,
		},
		Logger:  logger,
		Metrics: metrics,
	})
	sessions := service.NewSessionService(service.SessionServiceOptions{
		State:  state,
		Cart:   cart,
		Logger: logger,
	})

	catalogClient, err := catalogrest.NewClient(catalogrest.Config{
		BaseURL:    cfg.Catalog.BaseURL,
		Timeout:    cfg.Catalog.Timeout,
		RetryLimit: cfg.Catalog.RetryLimit,
		ItemsPath:  cfg.Catalog.ItemsPath,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("catalog client: %w", err)
	}
	catalog := service.NewCatalogService(service.CatalogServiceOptions{
		API:     catalogClient,
		Logger:  logger,
		Metrics: metrics,
	})

	// Restore the last session so the cart picks up where the user left off.
	sessions.Hydrate(ctx)

	// Warm the mirror; a dead backend at startup is not fatal.
	if _, err := catalog.Refresh(ctx); err != nil {
		logger.WarnContext(ctx, "catalog warmup failed", "error", err)
	}

	return ServiceContainer{
		KV:       kv,
		State:    state,
		Cart:     cart,
		Sessions: sessions,
		Catalog:  catalog,
		Metrics:  metrics,
	}, nil
}

// buildKV selects the key-value store implementation for the configured
// backend.
//
//nolint:ireturn // the backend is chosen at runtime.
func buildKV(ctx context.Context, cfg *config.AppConfig, deps *ServiceDeps) (core.KVRepository, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		if deps.RedisClient == nil {
			return nil, fmt.Errorf("store backend %q requires a redis connection", cfg.Store.Backend)
		}
		return data.NewRedisKVRepo(deps.RedisClient), nil
	case config.StoreBackendPostgres:
		if deps.DB == nil {
			return nil, fmt.Errorf("store backend %q requires a database connection", cfg.Store.Backend)
		}
		repo := data.NewPostgresKVRepo(deps.DB)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure store schema: %w", err)
		}
		return repo, nil
	case config.StoreBackendMemory:
		if !cfg.IsDev && deps.Logger != nil {
			deps.Logger.Warn("memory store selected outside dev mode; state is lost on restart")
		}
		return data.NewMemoryKVRepo(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}
