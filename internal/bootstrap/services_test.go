package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenside/storefront-api/config"
	"github.com/ovenside/storefront-api/internal/domain/auth"
)

func testConfig(t *testing.T, catalogURL string) *config.AppConfig {
	t.Helper()
	cfg := &config.AppConfig{IsDev: true}
	cfg.Store.Backend = config.StoreBackendMemory
	cfg.Catalog.BaseURL = catalogURL
	cfg.Catalog.RetryLimit = 0
	cfg.Sanitize()
	return cfg
}

func fakeCatalog(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Margherita","price":9.5,"image_url":"","quantity":1}]`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewServices_MemoryBackend(t *testing.T) {
	srv := fakeCatalog(t)
	cfg := testConfig(t, srv.URL)

	services, err := NewServices(context.Background(), &ServiceDeps{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	require.NotNil(t, services.Cart)
	require.NotNil(t, services.Sessions)
	require.NotNil(t, services.Catalog)
	assert.Equal(t, auth.GuestUserID, services.Sessions.Current().UserID)
	assert.Len(t, services.Catalog.Items(), 1, "mirror warmed at startup")
}

func TestNewServices_CatalogWarmupFailureNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	cfg := testConfig(t, srv.URL)

	services, err := NewServices(context.Background(), &ServiceDeps{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	assert.Empty(t, services.Catalog.Items())
}

func TestNewServices_RedisBackendRequiresClient(t *testing.T) {
	cfg := testConfig(t, "http://localhost:3000")
	cfg.Store.Backend = config.StoreBackendRedis

	_, err := NewServices(context.Background(), &ServiceDeps{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis connection")
}
