package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/StefanMagureanu25/AWBD/internal/entities"

	"github.com/google/uuid"
)

type productService struct {
	logger   *slog.Logger
	products ProductRepo
	ledger   StockLedger
}

func NewProductService(logger *slog.Logger, products ProductRepo, ledger StockLedger) *productService {
	return &productService{
		logger:   logger.With(slog.String("service", "product")),
		products: products,
		ledger:   ledger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, name, description string, price entities.Money, stockQuantity int) (entities.Product, error) {
	product, err := entities.NewProduct(uuid.NewString(), name, description, price, stockQuantity)
	if err != nil {
		return entities.Product{}, err
	}

	if err := s.products.SaveProduct(ctx, product); err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	s.ledger.Load(product.ID, product.StockQuantity)

	s.logger.Debug("product created", "product_id", product.ID, "stock", product.StockQuantity)
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	return s.products.GetProductByID(ctx, productID)
}

// Restock overrides a product's stock level. The ledger is updated first so a
// shrunk level immediately stops new reservations against the old figure.
func (s *productService) Restock(ctx context.Context, productID string, stockQuantity int) error {
	if stockQuantity < 0 {
		return entities.ErrInvalidQuantity
	}
	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		return err
	}

	if err := s.ledger.SetStock(productID, stockQuantity); err != nil {
		return err
	}
	if err := s.products.UpdateProductStock(ctx, productID, stockQuantity); err != nil {
		return fmt.Errorf("failed to persist restock: %w", err)
	}

	s.logger.Info("product restocked", "product_id", productID, "stock", stockQuantity)
	return nil
}

func (s *productService) IncreaseStock(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return entities.ErrInvalidQuantity
	}
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	return s.Restock(ctx, productID, product.StockQuantity+quantity)
}

func (s *productService) InStock(ctx context.Context, productID string, quantity int) (bool, error) {
	available, err := s.ledger.Available(productID)
	if err != nil {
		return false, err
	}
	return available >= quantity, nil
}

func (s *productService) AvailableStock(ctx context.Context, productID string) (int, error) {
	return s.ledger.Available(productID)
}

func (s *productService) ListLowStock(ctx context.Context, threshold int) ([]entities.Product, error) {
	if threshold < 0 {
		return nil, entities.ErrInvalidQuantity
	}
	return s.products.ListLowStock(ctx, threshold)
}

func (s *productService) DeactivateProduct(ctx context.Context, productID string) error {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	product.Active = false
	product.UpdatedAt = time.Now().UTC()
	return s.products.SaveProduct(ctx, product)
}
