package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ovenside/storefront-api/internal/domain/model"
	apperrors "github.com/ovenside/storefront-api/internal/errors"
	"github.com/ovenside/storefront-api/internal/mocks"
)

func validItemRequest() model.CreateCatalogItemRequest {
	return model.CreateCatalogItemRequest{
		Name:        "Quattro Stagioni",
		Description: "Artichokes, ham, mushrooms, olives",
		Price:       13.5,
		ImageURL:    "https://img/quattro.jpg",
		Quantity:    1,
	}
}

func TestCatalogService_Refresh_ReplacesMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockCatalogAPI(ctrl)
	items := []model.CatalogItem{{ID: 1, Name: "Margherita", Price: 9.5}}
	mockAPI.EXPECT().List(gomock.Any()).Return(items, nil)

	svc := NewCatalogService(CatalogServiceOptions{API: mockAPI})
	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, items, got)
	assert.Equal(t, items, svc.Items())
}

func TestCatalogService_Refresh_FailureLeavesMirrorUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockCatalogAPI(ctrl)
	items := []model.CatalogItem{{ID: 1, Name: "Margherita", Price: 9.5}}
	gomock.InOrder(
		mockAPI.EXPECT().List(gomock.Any()).Return(items, nil),
		mockAPI.EXPECT().List(gomock.Any()).Return(nil, errors.New("backend down")),
	)

	svc := NewCatalogService(CatalogServiceOptions{API: mockAPI})
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnavailable))
	assert.Equal(t, items, svc.Items(), "mirror keeps the last good list")
}

func TestCatalogService_Create_AppendsBackendRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockCatalogAPI(ctrl)
	req := validItemRequest()
	created := req.Item()
	created.ID = 42
	mockAPI.EXPECT().Create(gomock.Any(), req.Item()).Return(&created, nil)

	svc := NewCatalogService(CatalogServiceOptions{API: mockAPI})
	got, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 42, got.ID)
	require.Len(t, svc.Items(), 1)
	assert.Equal(t, created, svc.Items()[0])
}

func TestCatalogService_Create_ValidationBlocksNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockCatalogAPI(ctrl)
	mockAPI.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := NewCatalogService(CatalogServiceOptions{API: mockAPI})
	req := validItemRequest()
	req.Price = 0

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
	assert.Empty(t, svc.Items())
}

func TestCatalogService_Create_BackendFailureLeavesMirrorUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockCatalogAPI(ctrl)
	mockAPI.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("backend down"))

	svc := NewCatalogService(CatalogServiceOptions{API: mockAPI})
	_, err := svc.Create(context.Background(), validItemRequest())

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnavailable))
	assert.Empty(t, svc.Items())
}

func TestCatalogService_Update_SwapsMirrorEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockCatalogAPI(ctrl)
	mockAPI.EXPECT().List(gomock.Any()).Return([]model.CatalogItem{
		{ID: 1, Name: "Margherita", Price: 9.5},
		{ID: 2, Name: "Regina", Price: 11},
	}, nil)

	req := model.UpdateCatalogItemRequest{
		Name:        "Regina Royale",
		Description: "Ham, mushrooms, extra mozzarella",
		Price:       12.5,
		ImageURL:    "https://img/regina.jpg",
	}
	updated := req.Item(2)
	mockAPI.EXPECT().Update(gomock.Any(), req.Item(2)).Return(&updated, nil)

	svc := NewCatalogService(CatalogServiceOptions{API: mockAPI})
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), 2, req)
	require.NoError(t, err)
	assert.Equal(t, "Regina Royale", got.Name)

	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Margherita", items[0].Name)
	assert.Equal(t, updated, items[1])
}

func TestCatalogService_Update_ValidationBlocksNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockCatalogAPI(ctrl)
	mockAPI.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	svc := NewCatalogService(CatalogServiceOptions{API: mockAPI})
	_, err := svc.Update(context.Background(), 2, model.UpdateCatalogItemRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidation))
}

func TestCatalogService_Delete_DropsMirrorEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockCatalogAPI(ctrl)
	mockAPI.EXPECT().List(gomock.Any()).Return([]model.CatalogItem{
		{ID: 1, Name: "Margherita"},
		{ID: 2, Name: "Regina"},
	}, nil)
	mockAPI.EXPECT().Delete(gomock.Any(), 1).Return(nil)

	svc := NewCatalogService(CatalogServiceOptions{API: mockAPI})
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1))
	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
}

func TestCatalogService_Delete_BackendFailureLeavesMirrorUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockCatalogAPI(ctrl)
	mockAPI.EXPECT().List(gomock.Any()).Return([]model.CatalogItem{{ID: 1}}, nil)
	mockAPI.EXPECT().Delete(gomock.Any(), 1).Return(errors.New("backend down"))

	svc := NewCatalogService(CatalogServiceOptions{API: mockAPI})
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Len(t, svc.Items(), 1)
}
