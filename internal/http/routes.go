package httpx

import (
	"log/slog"
	"net/http"

	"github.com/ovenside/storefront-api/internal/core"
	"github.com/ovenside/storefront-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Cart     *service.CartService
	Sessions *service.SessionService
	Catalog  *service.CatalogService
	KV       core.KVRepository // Optional: store health reporting
	Logger   *slog.Logger
}

// NewRouter creates and configures the HTTP router with the standard
// middleware chain (request ID, logging, panic recovery).
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	health := &HealthHandlers{KV: services.KV}
	mux.HandleFunc("GET /healthz", health.Health)
	mux.HandleFunc("HEAD /healthz", health.Health)

	sessionHandlers := &SessionHandlers{Sessions: services.Sessions, Cart: services.Cart}
	mux.HandleFunc("POST /auth/login", sessionHandlers.Login)
	mux.HandleFunc("POST /auth/logout", sessionHandlers.Logout)
	mux.HandleFunc("GET /auth/session", sessionHandlers.Current)

	cartHandlers := &CartHandlers{Cart: services.Cart}
	mux.HandleFunc("GET /cart", cartHandlers.Get)
	mux.HandleFunc("POST /cart/items", cartHandlers.AddItem)
	mux.HandleFunc("PUT /cart/items/{id}", cartHandlers.SetQuantity)
	mux.HandleFunc("DELETE /cart/items/{id}", cartHandlers.RemoveItem)
	mux.HandleFunc("POST /cart/discount", cartHandlers.Discount)
	mux.HandleFunc("POST /cart/clear", cartHandlers.Clear)
	mux.HandleFunc("POST /cart/order", cartHandlers.PlaceOrder)
	mux.HandleFunc("POST /cart/reward", cartHandlers.RedeemReward)

	catalogHandlers := &CatalogHandlers{Svc: services.Catalog}
	mux.HandleFunc("GET /pizzas", catalogHandlers.List)
	adminOnly := RequireAdmin(services.Sessions)
	mux.Handle("POST /pizzas", adminOnly(http.HandlerFunc(catalogHandlers.Create)))
	mux.Handle("PUT /pizzas/{id}", adminOnly(http.HandlerFunc(catalogHandlers.Update)))
	mux.Handle("DELETE /pizzas/{id}", adminOnly(http.HandlerFunc(catalogHandlers.Delete)))

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = RequestID()(handler)
	handler = Recover(logger)(handler)
	return handler
}
