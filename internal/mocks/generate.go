// Package mocks provides mock implementations for testing the storefront services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and checked in so tests build without tooling.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockState := mocks.NewMockStateRepository(ctrl)
//	mockState.EXPECT().LoadPoints(gomock.Any(), "user-1").Return(800, nil)
package mocks

// Generate mock for StateRepository interface from internal/core package.
// This creates MockStateRepository with methods for all StateRepository interface methods:
// LoadCart, SaveCart, ClearCart, LoadPoints, SavePoints, LoadSession, SaveSession, ClearSession
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=state_repository_mock.go github.com/ovenside/storefront-api/internal/core StateRepository

// Generate mock for KVRepository interface from internal/core package.
// This creates MockKVRepository with methods for all KVRepository interface methods:
// Get, Set, Delete, Health
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=kv_repository_mock.go github.com/ovenside/storefront-api/internal/core KVRepository

// Generate mock for CatalogAPI interface from internal/core package.
// This creates MockCatalogAPI with methods for all CatalogAPI interface methods:
// List, Create, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=catalog_api_mock.go github.com/ovenside/storefront-api/internal/core CatalogAPI
