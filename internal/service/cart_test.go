package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ovenside/storefront-api/internal/data"
	apperrors "github.com/ovenside/storefront-api/internal/errors"
	"github.com/ovenside/storefront-api/internal/mocks"

	"github.com/ovenside/storefront-api/internal/domain/model"
)

const testUserID = "user-1"

func margherita() model.CatalogItem {
	return model.CatalogItem{ID: 1, Name: "Margherita", Price: 6, ImageURL: "https://img/m.jpg", Quantity: 1}
}

func regina() model.CatalogItem {
	return model.CatalogItem{ID: 2, Name: "Regina", Price: 12, ImageURL: "https://img/r.jpg", Quantity: 1}
}

// newCartHarness wires a CartService over the in-memory store and keys it to
// testUserID.
func newCartHarness(t *testing.T) (*CartService, *data.KVStateRepo) {
	t.Helper()
	state := data.NewKVStateRepo(data.NewMemoryKVRepo())
	svc := NewCartService(CartServiceOptions{State: state, Config: DefaultCartServiceConfig()})
	svc.Initialize(context.Background(), testUserID)
	return svc, state
}

func TestCartService_AddItem_MergesByItemID(t *testing.T) {
	svc, _ := newCartHarness(t)
	ctx := context.Background()

	svc.AddItem(ctx, margherita(), 1)
	got := svc.AddItem(ctx, margherita(), 2)

	require.Len(t, got.Lines, 1)
	assert.Equal(t, 3, got.Lines[0].Quantity)
	assert.InDelta(t, 18, got.Total, 1e-9)
}

func TestCartService_AddItem_NormalizesQuantityToOne(t *testing.T) {
	svc, _ := newCartHarness(t)

	got := svc.AddItem(context.Background(), margherita(), 0)

	require.Len(t, got.Lines, 1)
	assert.Equal(t, 1, got.Lines[0].Quantity)
}

func TestCartService_AddItem_PersistsSnapshot(t *testing.T) {
	svc, state := newCartHarness(t)
	ctx := context.Background()

	svc.AddItem(ctx, margherita(), 2)

	lines, err := state.LoadCart(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartService_Initialize_RestoresSnapshot(t *testing.T) {
	svc, state := newCartHarness(t)
	ctx := context.Background()
	svc.AddItem(ctx, margherita(), 2)
	svc.AddItem(ctx, regina(), 1)

	fresh := NewCartService(CartServiceOptions{State: state})
	got := fresh.Initialize(ctx, testUserID)

	require.Len(t, got.Lines, 2)
	assert.InDelta(t, 24, got.Total, 1e-9)
	assert.Equal(t, testUserID, fresh.ActiveUser())
}

func TestCartService_Initialize_DegradesToEmptyOnReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mocks.NewMockStateRepository(ctrl)
	mockState.EXPECT().LoadCart(gomock.Any(), testUserID).Return(nil, errors.New("store down"))

	svc := NewCartService(CartServiceOptions{State: mockState})
	got := svc.Initialize(context.Background(), testUserID)

	assert.True(t, got.IsEmpty())
	assert.Zero(t, got.Total)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, _ := newCartHarness(t)
	ctx := context.Background()
	svc.AddItem(ctx, margherita(), 1)
	svc.AddItem(ctx, regina(), 1)

	got := svc.RemoveItem(ctx, margherita().ID)

	require.Len(t, got.Lines, 1)
	assert.Equal(t, regina().ID, got.Lines[0].ItemID)
	assert.InDelta(t, 12, got.Total, 1e-9)
}

func TestCartService_RemoveItem_AbsentLineStillPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mocks.NewMockStateRepository(ctrl)
	mockState.EXPECT().LoadCart(gomock.Any(), testUserID).Return(nil, nil)
	mockState.EXPECT().SaveCart(gomock.Any(), testUserID, gomock.Any()).Return(nil)

	svc := NewCartService(CartServiceOptions{State: mockState})
	svc.Initialize(context.Background(), testUserID)

	got := svc.RemoveItem(context.Background(), 99)
	assert.True(t, got.IsEmpty())
}

func TestCartService_SetQuantity_RecomputesTotal(t *testing.T) {
	svc, _ := newCartHarness(t)
	ctx := context.Background()
	svc.AddItem(ctx, margherita(), 1)

	got := svc.SetQuantity(ctx, margherita().ID, 5)

	require.Len(t, got.Lines, 1)
	assert.Equal(t, 5, got.Lines[0].Quantity)
	assert.InDelta(t, 30, got.Total, 1e-9)
}

func TestCartService_ApplyDiscount_SubtractsLowestSubtotalOnly(t *testing.T) {
	svc, state := newCartHarness(t)
	ctx := context.Background()
	svc.AddItem(ctx, margherita(), 1) // 6
	svc.AddItem(ctx, regina(), 1)     // 12

	got := svc.ApplyDiscount()

	require.Len(t, got.Lines, 2)
	assert.InDelta(t, 12, got.Total, 1e-9)
	assert.InDelta(t, 6, got.Lines[0].Price, 1e-9, "line prices untouched")

	// The discounted total is display state; the snapshot keeps raw lines.
	lines, err := state.LoadCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestCartService_ApplyDiscount_RepeatSubtractsAgain(t *testing.T) {
	svc, _ := newCartHarness(t)
	svc.AddItem(context.Background(), margherita(), 1)
	svc.AddItem(context.Background(), regina(), 1)

	svc.ApplyDiscount()
	got := svc.ApplyDiscount()

	assert.InDelta(t, 6, got.Total, 1e-9)
}

func TestCartService_ApplyDiscount_EmptyCartNoOp(t *testing.T) {
	svc, _ := newCartHarness(t)
	got := svc.ApplyDiscount()
	assert.True(t, got.IsEmpty())
	assert.Zero(t, got.Total)
}

func TestCartService_ClearCart_DeletesSnapshot(t *testing.T) {
	svc, state := newCartHarness(t)
	ctx := context.Background()
	svc.AddItem(ctx, margherita(), 1)

	got := svc.ClearCart(ctx)

	assert.True(t, got.IsEmpty())
	lines, err := state.LoadCart(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartService_PlaceOrder_CreditsPointsPerUnit(t *testing.T) {
	svc, state := newCartHarness(t)
	ctx := context.Background()
	svc.AddItem(ctx, margherita(), 1)
	svc.AddItem(ctx, regina(), 2)

	receipt, err := svc.PlaceOrder(ctx)
	require.NoError(t, err)

	assert.Equal(t, 300, receipt.PointsEarned)
	assert.Equal(t, 300, receipt.Balance)
	assert.False(t, receipt.FreeRewardEarned)
	assert.NotEmpty(t, receipt.OrderID)
	cartAfter := svc.Cart()
	assert.True(t, cartAfter.IsEmpty())

	balance, err := state.LoadPoints(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 300, balance)
}

func TestCartService_PlaceOrder_CrossesRewardThreshold(t *testing.T) {
	svc, state := newCartHarness(t)
	ctx := context.Background()
	require.NoError(t, state.SavePoints(ctx, testUserID, 800))
	svc.AddItem(ctx, margherita(), 3)

	receipt, err := svc.PlaceOrder(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1100, receipt.Balance)
	assert.True(t, receipt.FreeRewardEarned)
}

func TestCartService_PlaceOrder_EmptyCartRejected(t *testing.T) {
	svc, _ := newCartHarness(t)

	_, err := svc.PlaceOrder(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestCartService_PlaceOrder_GuestRejected(t *testing.T) {
	state := data.NewKVStateRepo(data.NewMemoryKVRepo())
	svc := NewCartService(CartServiceOptions{State: state})
	svc.AddItem(context.Background(), margherita(), 1)

	_, err := svc.PlaceOrder(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestCartService_PlaceOrder_SwallowsPersistFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mocks.NewMockStateRepository(ctrl)
	mockState.EXPECT().LoadCart(gomock.Any(), testUserID).Return(nil, nil)
	mockState.EXPECT().SaveCart(gomock.Any(), testUserID, gomock.Any()).Return(nil)
	mockState.EXPECT().LoadPoints(gomock.Any(), testUserID).Return(200, nil)
	mockState.EXPECT().SavePoints(gomock.Any(), testUserID, 300).Return(errors.New("store down"))
	mockState.EXPECT().ClearCart(gomock.Any(), testUserID).Return(false, errors.New("store down"))

	svc := NewCartService(CartServiceOptions{State: mockState})
	svc.Initialize(context.Background(), testUserID)
	svc.AddItem(context.Background(), margherita(), 1)

	receipt, err := svc.PlaceOrder(context.Background())
	require.NoError(t, err, "store failures must not fail the order")
	assert.Equal(t, 300, receipt.Balance)
}

func TestCartService_RedeemReward_DebitsAndZeroesLowestLine(t *testing.T) {
	svc, state := newCartHarness(t)
	ctx := context.Background()
	require.NoError(t, state.SavePoints(ctx, testUserID, 1200))
	svc.AddItem(ctx, margherita(), 1) // price 6, the lowest
	svc.AddItem(ctx, regina(), 1)    // price 12

	result, err := svc.RedeemReward(ctx)
	require.NoError(t, err)

	assert.Equal(t, 200, result.Balance)
	require.Len(t, result.Cart.Lines, 2)
	assert.Zero(t, result.Cart.Lines[0].Price)
	assert.InDelta(t, 12, result.Cart.Total, 1e-9)

	balance, err := state.LoadPoints(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 200, balance)

	lines, err := state.LoadCart(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Zero(t, lines[0].Price, "zeroed price is persisted")
}

func TestCartService_RedeemReward_FirstLineWinsPriceTie(t *testing.T) {
	svc, state := newCartHarness(t)
	ctx := context.Background()
	require.NoError(t, state.SavePoints(ctx, testUserID, 1000))
	first := margherita()
	second := model.CatalogItem{ID: 3, Name: "Marinara", Price: 6, Quantity: 1}
	svc.AddItem(ctx, first, 1)
	svc.AddItem(ctx, second, 1)

	result, err := svc.RedeemReward(ctx)
	require.NoError(t, err)

	assert.Zero(t, result.Cart.Lines[0].Price)
	assert.InDelta(t, 6, result.Cart.Lines[1].Price, 1e-9)
}

func TestCartService_RedeemReward_InsufficientBalanceRejected(t *testing.T) {
	svc, state := newCartHarness(t)
	ctx := context.Background()
	require.NoError(t, state.SavePoints(ctx, testUserID, 999))
	svc.AddItem(ctx, margherita(), 1)

	_, err := svc.RedeemReward(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))

	balance, err := state.LoadPoints(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 999, balance, "balance untouched on rejection")
}

func TestCartService_RedeemReward_EmptyCartRejected(t *testing.T) {
	svc, state := newCartHarness(t)
	require.NoError(t, state.SavePoints(context.Background(), testUserID, 2000))

	_, err := svc.RedeemReward(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestCartService_Points_DefaultsToZero(t *testing.T) {
	svc, _ := newCartHarness(t)

	points, err := svc.Points(context.Background())
	require.NoError(t, err)
	assert.Zero(t, points)
}
