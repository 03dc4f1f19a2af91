package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/ovenside/storefront-api/internal/errors"
)

// PostgresKVRepo implements core.KVRepository on a single storefront_kv
// table. It is the durable alternative to the Redis backend and shares its
// contract: opaque values, last writer wins.
type PostgresKVRepo struct {
	DB *sql.DB
}

// NewPostgresKVRepo creates a new PostgresKVRepo over the given connection pool.
// The pool is expected to use the pgx stdlib driver.
func NewPostgresKVRepo(db *sql.DB) *PostgresKVRepo {
	return &PostgresKVRepo{DB: db}
}

// EnsureSchema creates the storefront_kv table when it does not exist.
// Called once at startup by bootstrap.
func (r *PostgresKVRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS storefront_kv (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure storefront_kv schema: %w", apperrors.MapStoreError(err))
	}
	return nil
}

// Set upserts the value under key.
func (r *PostgresKVRepo) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO storefront_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv set: %w", apperrors.MapStoreError(err))
	}
	return nil
}

// Get retrieves a value by key. A missing key returns (nil, nil).
func (r *PostgresKVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	err := r.DB.QueryRowContext(ctx,
		`SELECT value FROM storefront_kv WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get: %w", apperrors.MapStoreError(err))
	}
	return value, nil
}

// Delete removes a key and reports whether it existed.
func (r *PostgresKVRepo) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key cannot be empty")
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM storefront_kv WHERE key = $1`, key)
	if err != nil {
		return false, fmt.Errorf("kv delete: %w", apperrors.MapStoreError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("kv delete rows affected: %w", err)
	}
	return n > 0, nil
}

// Health checks the database connection.
func (r *PostgresKVRepo) Health(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
