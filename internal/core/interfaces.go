package core

import (
	"context"

	"github.com/ovenside/storefront-api/internal/domain/auth"
	"github.com/ovenside/storefront-api/internal/domain/model"
)

// This file contains port interface definitions. Services depend on these
// contracts, not on the concrete store or HTTP implementations.

// KVRepository is the raw key-value store: string keys, opaque byte values.
// Get returns (nil, nil) for a missing key.
type KVRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) (bool, error)
	Health(ctx context.Context) error
}

// StateRepository persists the per-user storefront state slices: cart
// snapshots, loyalty balances, and the single session record.
type StateRepository interface {
	// LoadCart returns the persisted snapshot for the user, or an empty slice
	// when none exists.
	LoadCart(ctx context.Context, userID string) ([]model.CartLine, error)
	SaveCart(ctx context.Context, userID string, lines []model.CartLine) error
	// ClearCart removes the persisted snapshot and reports whether one existed.
	ClearCart(ctx context.Context, userID string) (bool, error)

	// LoadPoints returns the user's loyalty balance, zero when none exists.
	LoadPoints(ctx context.Context, userID string) (int, error)
	SavePoints(ctx context.Context, userID string, points int) error

	// LoadSession returns the persisted session fields, or the guest sentinel
	// when none exist.
	LoadSession(ctx context.Context) (auth.Session, error)
	SaveSession(ctx context.Context, sess auth.Session) error
	ClearSession(ctx context.Context) error
}

// CatalogAPI is the remote catalog backend contract (REST over /pizzas).
type CatalogAPI interface {
	List(ctx context.Context) ([]model.CatalogItem, error)
	Create(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error)
	Update(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error)
	Delete(ctx context.Context, id int) error
}
