package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/StefanMagureanu25/AWBD/internal/entities"
	"github.com/StefanMagureanu25/AWBD/pkg/trm"
	"github.com/StefanMagureanu25/AWBD/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	SaveOrder(ctx context.Context, o entities.Order) error
	DeleteOrder(ctx context.Context, orderID string) error

	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]entities.Order, error)
	ListOrdersByDateRange(ctx context.Context, f entities.RevenueFilter) ([]entities.Order, error)

	SumTotalAmount(ctx context.Context, f entities.RevenueFilter) (entities.Money, error)
	AverageOrderValue(ctx context.Context, f entities.RevenueFilter) (int64, error)
	CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error)
}

type ProductRepo interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	SaveProduct(ctx context.Context, p entities.Product) error
	UpdateProductStock(ctx context.Context, productID string, stock int) error
	ListProducts(ctx context.Context) ([]entities.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]entities.Product, error)
}

// StockLedger is the single source of truth for sellable stock. Reservations
// are settled here before the aggregate is mutated, so a failed reservation
// never leaves a half-added line item.
type StockLedger interface {
	Load(productID string, stock int)
	Reserve(productID string, quantity int) error
	Release(productID string, quantity int) error
	CommitAll(items []entities.OrderItem) (map[string]int, error)
	ReleaseAll(items []entities.OrderItem) error
	Uncommit(items []entities.OrderItem) error
	Available(productID string) (int, error)
	SetStock(productID string, stock int) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

// OrderNumberFunc supplies unique human-readable order numbers.
type OrderNumberFunc func() string

// DefaultOrderNumber mirrors the storefront's ORD- prefixed 8-char tokens.
func DefaultOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

type orderService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	orders      OrderRepo
	products    ProductRepo
	ledger      StockLedger
	cache       Cache
	orderNumber OrderNumberFunc
	locks       *keyedMutex
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductRepo,
	ledger StockLedger,
	cache Cache,
	orderNumber OrderNumberFunc,
) *orderService {
	if orderNumber == nil {
		orderNumber = DefaultOrderNumber
	}
	return &orderService{
		logger:      logger.With(slog.String("service", "order")),
		txManager:   txManager,
		orders:      orders,
		products:    products,
		ledger:      ledger,
		cache:       cache,
		orderNumber: orderNumber,
		locks:       newKeyedMutex(),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID, shippingAddress, billingAddress, notes string) (entities.Order, error) {
	order := entities.NewOrder(uuid.NewString(), s.orderNumber(), userID)
	order.ShippingAddress = shippingAddress
	order.BillingAddress = billingAddress
	order.Notes = notes

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Debug("order created", "order_id", order.ID, "order_number", order.OrderNumber)
	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID))
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	return s.orders.GetOrderByNumber(ctx, orderNumber)
}

// AddItem reserves stock, appends the line priced at the product's current
// price, and persists the order. The reservation is rolled back if any later
// step fails, so the ledger and the aggregate never diverge.
func (s *orderService) AddItem(ctx context.Context, orderID, productID string, quantity int) (entities.Order, error) {
	qty, err := entities.NewQuantity(quantity)
	if err != nil {
		return entities.Order{}, err
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.IsPending() {
		return entities.Order{}, &entities.InvalidTransitionError{From: order.Status, Event: entities.EventAddItem}
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return entities.Order{}, err
	}
	if !product.Active {
		return entities.Order{}, entities.ErrProductNotFound
	}

	if err := s.ledger.Reserve(productID, qty.Int()); err != nil {
		return entities.Order{}, err
	}

	if _, err := order.AddItem(uuid.NewString(), productID, qty, product.Price); err != nil {
		s.releaseQuiet(productID, qty.Int())
		return entities.Order{}, err
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		s.releaseQuiet(productID, qty.Int())
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) RemoveItem(ctx context.Context, orderID, itemID string) (entities.Order, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	removed, err := order.RemoveItem(itemID)
	if err != nil {
		return entities.Order{}, err
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	s.releaseQuiet(removed.ProductID, removed.Quantity.Int())

	s.cacheOrder(order)
	return order, nil
}

// UpdateItemQuantity settles only the delta against the ledger: an increase
// reserves the extra units up front, a decrease releases them after the order
// is saved.
func (s *orderService) UpdateItemQuantity(ctx context.Context, orderID, itemID string, newQuantity int) (entities.Order, error) {
	qty, err := entities.NewQuantity(newQuantity)
	if err != nil {
		return entities.Order{}, err
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.IsPending() {
		return entities.Order{}, &entities.InvalidTransitionError{From: order.Status, Event: entities.EventUpdateItem}
	}

	item, ok := order.Item(itemID)
	if !ok {
		return entities.Order{}, entities.ErrOrderItemNotFound
	}

	delta := qty.Int() - item.Quantity.Int()
	if delta > 0 {
		if err := s.ledger.Reserve(item.ProductID, delta); err != nil {
			return entities.Order{}, err
		}
	}

	if err := order.UpdateItemQuantity(itemID, qty); err != nil {
		if delta > 0 {
			s.releaseQuiet(item.ProductID, delta)
		}
		return entities.Order{}, err
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		if delta > 0 {
			s.releaseQuiet(item.ProductID, delta)
		}
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	if delta < 0 {
		s.releaseQuiet(item.ProductID, -delta)
	}

	s.cacheOrder(order)
	return order, nil
}

// ConfirmOrder commits every line's reservation and persists the decremented
// stock levels atomically with the status change.
func (s *orderService) ConfirmOrder(ctx context.Context, orderID string) (entities.Order, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := order.Confirm(); err != nil {
		return entities.Order{}, err
	}

	levels, err := s.ledger.CommitAll(order.Items)
	if err != nil {
		return entities.Order{}, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		for productID, stock := range levels {
			if err := s.products.UpdateProductStock(ctx, productID, stock); err != nil {
				return fmt.Errorf("failed to update stock for product %s: %w", productID, err)
			}
		}
		return nil
	})
	if err != nil {
		if uerr := s.ledger.Uncommit(order.Items); uerr != nil {
			s.logger.Error("failed to restore ledger after aborted confirm",
				slog.String("order_id", orderID), slog.Any("error", uerr))
		}
		return entities.Order{}, err
	}

	s.logger.Info("order confirmed", "order_id", orderID, "total", order.TotalAmount.String())
	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) ShipOrder(ctx context.Context, orderID string) (entities.Order, error) {
	return s.transition(ctx, orderID, (*entities.Order).Ship)
}

func (s *orderService) DeliverOrder(ctx context.Context, orderID string) (entities.Order, error) {
	return s.transition(ctx, orderID, (*entities.Order).Deliver)
}

// CancelOrder releases reservations only when the order was still pending.
// Stock committed by a confirm stays consumed.
func (s *orderService) CancelOrder(ctx context.Context, orderID string) (entities.Order, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	wasPending := order.IsPending()

	if err := order.Cancel(); err != nil {
		return entities.Order{}, err
	}
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	if wasPending && order.HasItems() {
		if err := s.ledger.ReleaseAll(order.Items); err != nil {
			s.logger.Error("failed to release reservations for cancelled order",
				slog.String("order_id", orderID), slog.Any("error", err))
		}
	}

	s.logger.Info("order cancelled", "order_id", orderID)
	s.cacheOrder(order)
	return order, nil
}

// DeleteOrder removes an order in any status; the storefront's admin screens
// have always allowed that, lifecycle or not.
func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.cache.Remove(orderID)

	if order.IsPending() && order.HasItems() {
		if err := s.ledger.ReleaseAll(order.Items); err != nil {
			s.logger.Error("failed to release reservations for deleted order",
				slog.String("order_id", orderID), slog.Any("error", err))
		}
	}
	return nil
}

func (s *orderService) UpdateShippingAddress(ctx context.Context, orderID, address string) (entities.Order, error) {
	return s.updateDetails(ctx, orderID, func(o *entities.Order) { o.ShippingAddress = address })
}

func (s *orderService) UpdateBillingAddress(ctx context.Context, orderID, address string) (entities.Order, error) {
	return s.updateDetails(ctx, orderID, func(o *entities.Order) { o.BillingAddress = address })
}

func (s *orderService) UpdateNotes(ctx context.Context, orderID, notes string) (entities.Order, error) {
	return s.updateDetails(ctx, orderID, func(o *entities.Order) { o.Notes = notes })
}

func (s *orderService) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	return s.orders.ListOrdersByUser(ctx, userID)
}

func (s *orderService) ListOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	return s.orders.ListOrdersByStatus(ctx, status)
}

func (s *orderService) ListRecentOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	return s.orders.ListRecentOrders(ctx, limit)
}

func (s *orderService) Revenue(ctx context.Context, f entities.RevenueFilter) (entities.Money, error) {
	if !f.Status.Valid() {
		return entities.Money{}, fmt.Errorf("revenue: unknown status %q", f.Status)
	}
	return s.orders.SumTotalAmount(ctx, f)
}

func (s *orderService) AverageOrderValue(ctx context.Context, f entities.RevenueFilter) (int64, error) {
	if !f.Status.Valid() {
		return 0, fmt.Errorf("average order value: unknown status %q", f.Status)
	}
	return s.orders.AverageOrderValue(ctx, f)
}

func (s *orderService) CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error) {
	if !status.Valid() {
		return 0, fmt.Errorf("count orders: unknown status %q", status)
	}
	return s.orders.CountByStatus(ctx, status)
}

// SeedLedger loads product stock levels and re-reserves the lines of every
// pending order. Run once at startup before traffic is admitted.
func (s *orderService) SeedLedger(ctx context.Context) error {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	for _, p := range products {
		s.ledger.Load(p.ID, p.StockQuantity)
	}

	pending, err := s.orders.ListOrdersByStatus(ctx, entities.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to list pending orders: %w", err)
	}
	for _, order := range pending {
		for _, item := range order.Items {
			if err := s.ledger.Reserve(item.ProductID, item.Quantity.Int()); err != nil {
				s.logger.Warn("could not re-reserve pending line",
					slog.String("order_id", order.ID),
					slog.String("product_id", item.ProductID),
					slog.Any("error", err))
			}
		}
	}

	s.logger.Info("stock ledger seeded",
		slog.Int("products", len(products)), slog.Int("pending_orders", len(pending)))
	return nil
}

// WarmUpCache preloads the most recent orders into the read cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.orders.ListRecentOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	return nil
}

func (s *orderService) transition(ctx context.Context, orderID string, apply func(*entities.Order) error) (entities.Order, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := apply(&order); err != nil {
		return entities.Order{}, err
	}
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) updateDetails(ctx context.Context, orderID string, apply func(*entities.Order)) (entities.Order, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	apply(&order)
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order for cache",
			slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}

func (s *orderService) releaseQuiet(productID string, quantity int) {
	if err := s.ledger.Release(productID, quantity); err != nil {
		s.logger.Error("failed to release reservation",
			slog.String("product_id", productID), slog.Any("error", err))
	}
}
