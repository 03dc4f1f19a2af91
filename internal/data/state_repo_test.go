package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenside/storefront-api/internal/domain/auth"
	"github.com/ovenside/storefront-api/internal/domain/model"
)

func newStateRepo() *KVStateRepo {
	return NewKVStateRepo(NewMemoryKVRepo())
}

func TestKVStateRepo_CartRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newStateRepo()

	lines := []model.CartLine{
		{ItemID: 1, Name: "Margherita", Price: 9.5, ImageURL: "https://img/m.jpg", Quantity: 2},
		{ItemID: 2, Name: "Regina", Price: 11, Quantity: 1},
	}
	require.NoError(t, repo.SaveCart(ctx, "u1", lines))

	got, err := repo.LoadCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, lines, got)

	state := model.NewCartState(got)
	assert.InDelta(t, 30.0, state.Total, 1e-9)
}

func TestKVStateRepo_LoadCart_MissingIsEmpty(t *testing.T) {
	got, err := newStateRepo().LoadCart(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKVStateRepo_LoadCart_CoercesStringPrices(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVRepo()
	repo := NewKVStateRepo(kv)

	// Snapshot written by an older client with string prices.
	snapshot := `[{"id":3,"name":"Calzone","price":"12.50","image_url":"","quantity":1}]`
	require.NoError(t, kv.Set(ctx, "cart_u2", []byte(snapshot)))

	got, err := repo.LoadCart(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 12.5, got[0].Price, 1e-9)
}

func TestKVStateRepo_LoadCart_CorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVRepo()
	repo := NewKVStateRepo(kv)
	require.NoError(t, kv.Set(ctx, "cart_u3", []byte("{not json")))

	_, err := repo.LoadCart(ctx, "u3")
	assert.Error(t, err)
}

func TestKVStateRepo_ClearCart(t *testing.T) {
	ctx := context.Background()
	repo := newStateRepo()
	require.NoError(t, repo.SaveCart(ctx, "u1", []model.CartLine{{ItemID: 1, Price: 5, Quantity: 1}}))

	ok, err := repo.ClearCart(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ClearCart(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.LoadCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKVStateRepo_PointsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newStateRepo()

	got, err := repo.LoadPoints(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, got, "missing balance defaults to zero")

	require.NoError(t, repo.SavePoints(ctx, "u1", 1100))
	got, err = repo.LoadPoints(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1100, got)
}

func TestKVStateRepo_PointsAreDecimalStrings(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVRepo()
	repo := NewKVStateRepo(kv)
	require.NoError(t, repo.SavePoints(ctx, "u1", 300))

	raw, err := kv.Get(ctx, "points_u1")
	require.NoError(t, err)
	assert.Equal(t, "300", string(raw))
}

func TestKVStateRepo_SessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newStateRepo()

	sess, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.GuestSession(), sess, "no persisted session hydrates as guest")

	require.NoError(t, repo.SaveSession(ctx, auth.Session{Role: auth.RoleAdmin, UserID: "a1"}))
	sess, err = repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, sess.Role)
	assert.Equal(t, "a1", sess.UserID)

	require.NoError(t, repo.ClearSession(ctx))
	sess, err = repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.GuestSession(), sess)
}

func TestKVStateRepo_SessionSurvivesForInactiveUser(t *testing.T) {
	ctx := context.Background()
	repo := newStateRepo()

	require.NoError(t, repo.SaveCart(ctx, "u1", []model.CartLine{{ItemID: 1, Price: 5, Quantity: 1}}))
	require.NoError(t, repo.SavePoints(ctx, "u1", 500))
	require.NoError(t, repo.SaveSession(ctx, auth.Session{Role: auth.RoleUser, UserID: "u1"}))

	// Logout clears only the session fields.
	require.NoError(t, repo.ClearSession(ctx))

	lines, err := repo.LoadCart(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
	points, err := repo.LoadPoints(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 500, points)
}
