package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/StefanMagureanu25/AWBD/internal/entities"
	"github.com/StefanMagureanu25/AWBD/internal/ledger"
	"github.com/StefanMagureanu25/AWBD/internal/service"
	mocks "github.com/StefanMagureanu25/AWBD/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productSvc interface {
	CreateProduct(ctx context.Context, name, description string, price entities.Money, stockQuantity int) (entities.Product, error)
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	Restock(ctx context.Context, productID string, stockQuantity int) error
	IncreaseStock(ctx context.Context, productID string, quantity int) error
	InStock(ctx context.Context, productID string, quantity int) (bool, error)
	AvailableStock(ctx context.Context, productID string) (int, error)
	ListLowStock(ctx context.Context, threshold int) ([]entities.Product, error)
	DeactivateProduct(ctx context.Context, productID string) error
}

func newProductService(t *testing.T) (productSvc, *mocks.MockProductRepo, *ledger.StockLedger) {
	t.Helper()
	productRepo := mocks.NewMockProductRepo(t)
	stockLedger := ledger.New()
	svc := service.NewProductService(testLogger(), productRepo, stockLedger)
	return svc, productRepo, stockLedger
}

func TestProductService_CreateProduct(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		svc, productRepo, stockLedger := newProductService(t)
		productRepo.EXPECT().SaveProduct(mock.Anything, mock.Anything).Return(nil)

		product, err := svc.CreateProduct(context.Background(), "Widget", "A widget", mustMoney(t, "19.99"), 25)
		require.NoError(t, err)

		assert.NotEmpty(t, product.ID)
		assert.True(t, product.Active)
		assert.Equal(t, 25, product.StockQuantity)

		free, err := stockLedger.Available(product.ID)
		require.NoError(t, err)
		assert.Equal(t, 25, free)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		svc, _, _ := newProductService(t)
		_, err := svc.CreateProduct(context.Background(), "Widget", "", mustMoney(t, "19.99"), -1)
		assert.ErrorIs(t, err, entities.ErrInvalidQuantity)
	})

	t.Run("save fails", func(t *testing.T) {
		svc, productRepo, _ := newProductService(t)
		dbError := errors.New("db error")
		productRepo.EXPECT().SaveProduct(mock.Anything, mock.Anything).Return(dbError)

		_, err := svc.CreateProduct(context.Background(), "Widget", "", mustMoney(t, "19.99"), 25)
		assert.ErrorIs(t, err, dbError)
	})
}

func TestProductService_Restock(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		svc, productRepo, stockLedger := newProductService(t)
		stockLedger.Load("product-1", 5)
		productRepo.EXPECT().GetProductByID(mock.Anything, "product-1").
			Return(activeProduct(t, "product-1", "19.99", 5), nil)
		productRepo.EXPECT().UpdateProductStock(mock.Anything, "product-1", 30).Return(nil)

		require.NoError(t, svc.Restock(context.Background(), "product-1", 30))

		free, err := stockLedger.Available("product-1")
		require.NoError(t, err)
		assert.Equal(t, 30, free)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		svc, _, _ := newProductService(t)
		assert.ErrorIs(t, svc.Restock(context.Background(), "product-1", -1), entities.ErrInvalidQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, productRepo, _ := newProductService(t)
		productRepo.EXPECT().GetProductByID(mock.Anything, "missing").
			Return(entities.Product{}, entities.ErrProductNotFound)

		err := svc.Restock(context.Background(), "missing", 10)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})
}

func TestProductService_IncreaseStock(t *testing.T) {
	svc, productRepo, stockLedger := newProductService(t)
	stockLedger.Load("product-1", 5)
	productRepo.EXPECT().GetProductByID(mock.Anything, "product-1").
		Return(activeProduct(t, "product-1", "19.99", 5), nil).Times(2)
	productRepo.EXPECT().UpdateProductStock(mock.Anything, "product-1", 8).Return(nil)

	require.NoError(t, svc.IncreaseStock(context.Background(), "product-1", 3))

	free, err := stockLedger.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 8, free)

	assert.ErrorIs(t, svc.IncreaseStock(context.Background(), "product-1", 0), entities.ErrInvalidQuantity)
}

func TestProductService_InStock(t *testing.T) {
	svc, _, stockLedger := newProductService(t)
	stockLedger.Load("product-1", 5)
	require.NoError(t, stockLedger.Reserve("product-1", 3))

	ok, err := svc.InStock(context.Background(), "product-1", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.InStock(context.Background(), "product-1", 3)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.InStock(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestProductService_AvailableStock(t *testing.T) {
	svc, _, stockLedger := newProductService(t)
	stockLedger.Load("product-1", 12)
	require.NoError(t, stockLedger.Reserve("product-1", 2))

	free, err := svc.AvailableStock(context.Background(), "product-1")
	require.NoError(t, err)
	assert.Equal(t, 10, free)
}

func TestProductService_ListLowStock(t *testing.T) {
	svc, productRepo, _ := newProductService(t)
	low := []entities.Product{activeProduct(t, "product-1", "19.99", 2)}
	productRepo.EXPECT().ListLowStock(mock.Anything, 5).Return(low, nil)

	products, err := svc.ListLowStock(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, low, products)

	_, err = svc.ListLowStock(context.Background(), -1)
	assert.ErrorIs(t, err, entities.ErrInvalidQuantity)
}

func TestProductService_DeactivateProduct(t *testing.T) {
	svc, productRepo, _ := newProductService(t)
	productRepo.EXPECT().GetProductByID(mock.Anything, "product-1").
		Return(activeProduct(t, "product-1", "19.99", 5), nil)
	productRepo.EXPECT().SaveProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
		return !p.Active
	})).Return(nil)

	require.NoError(t, svc.DeactivateProduct(context.Background(), "product-1"))
}
