package httpx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovenside/storefront-api/internal/core"
	"github.com/ovenside/storefront-api/internal/data"
	"github.com/ovenside/storefront-api/internal/service"
)

// testRouter bundles the router with the backing services so tests can both
// drive the HTTP surface and inspect state behind it.
type testRouter struct {
	handler  http.Handler
	state    *data.KVStateRepo
	cart     *service.CartService
	sessions *service.SessionService
}

func newTestRouter(t *testing.T, api core.CatalogAPI) *testRouter {
	t.Helper()

	kv := data.NewMemoryKVRepo()
	state := data.NewKVStateRepo(kv)
	logger := slog.New(slog.DiscardHandler)

	cart := service.NewCartService(service.CartServiceOptions{State: state, Logger: logger})
	sessions := service.NewSessionService(service.SessionServiceOptions{State: state, Cart: cart, Logger: logger})

	var catalog *service.CatalogService
	if api != nil {
		catalog = service.NewCatalogService(service.CatalogServiceOptions{API: api, Logger: logger})
	}

	handler := NewRouter(RouterServices{
		Cart:     cart,
		Sessions: sessions,
		Catalog:  catalog,
		KV:       kv,
		Logger:   logger,
	})
	return &testRouter{handler: handler, state: state, cart: cart, sessions: sessions}
}

// do performs a request against the router and returns the recorder.
func (tr *testRouter) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, req)
	return rec
}

// login drives the mocked login flow through the HTTP surface.
func (tr *testRouter) login(t *testing.T, role, userID string) {
	t.Helper()
	rec := tr.do(t, http.MethodPost, "/auth/login", map[string]string{"role": role, "user_id": userID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
