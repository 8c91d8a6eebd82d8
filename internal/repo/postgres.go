package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/StefanMagureanu25/AWBD/internal/entities"
	"github.com/StefanMagureanu25/AWBD/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "order_number", "user_id", "status", "total_amount",
	"shipping_address", "billing_address", "notes",
	"created_at", "shipped_at", "delivered_at", "cancelled_at",
}

var itemColumns = []string{
	"id", "order_id", "product_id", "quantity", "unit_price", "subtotal",
}

var productColumns = []string{
	"id", "name", "description", "price", "stock_quantity", "active",
	"created_at", "updated_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": orderID})
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_number": orderNumber})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// SaveOrder upserts the order row and replaces its line items. The item set
// is owned exclusively by the order, so a full replace keeps them in step.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, o.UserID, string(o.Status), o.TotalAmount.Decimal(),
			nullString(o.ShippingAddress), nullString(o.BillingAddress), nullString(o.Notes),
			o.CreatedAt, nullTime(o.ShippedAt), nullTime(o.DeliveredAt), nullTime(o.CancelledAt),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			total_amount = EXCLUDED.total_amount,
			shipping_address = EXCLUDED.shipping_address,
			billing_address = EXCLUDED.billing_address,
			notes = EXCLUDED.notes,
			shipped_at = EXCLUDED.shipped_at,
			delivered_at = EXCLUDED.delivered_at,
			cancelled_at = EXCLUDED.cancelled_at`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	query, args = r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": o.ID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear order items: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range o.Items {
		q = q.Values(it.ID, o.ID, it.ProductID, it.Quantity.Int(), it.UnitPrice.Decimal(), it.Subtotal.Decimal())
	}
	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	query, args = r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"user_id": userID}, 0)
}

func (r *postgresRepo) ListOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"status": string(status)}, 0)
}

func (r *postgresRepo) ListRecentOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	return r.listOrders(ctx, nil, limit)
}

func (r *postgresRepo) ListOrdersByDateRange(ctx context.Context, f entities.RevenueFilter) ([]entities.Order, error) {
	return r.listOrders(ctx, revenueWhere(f), 0)
}

func (r *postgresRepo) listOrders(ctx context.Context, where any, limit int) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")
	if where != nil {
		q = q.Where(where)
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsByOrder := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsByOrder[o.ID]))
	}
	return result, nil
}

func revenueWhere(f entities.RevenueFilter) sq.And {
	where := sq.And{sq.Eq{"status": string(f.Status)}}
	if f.UserID != "" {
		where = append(where, sq.Eq{"user_id": f.UserID})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.LtOrEq{"created_at": *f.To})
	}
	return where
}

func (r *postgresRepo) SumTotalAmount(ctx context.Context, f entities.RevenueFilter) (entities.Money, error) {
	query, args := r.qb.Select("COALESCE(SUM(total_amount), 0)").
		From("orders").
		Where(revenueWhere(f)).
		MustSql()

	var sum decimal.Decimal
	if err := r.getContext(ctx, &sum, query, args...); err != nil {
		return entities.Money{}, fmt.Errorf("failed to sum total amount: %w", err)
	}
	return entities.RestoreMoney(sum), nil
}

// AverageOrderValue truncates toward zero, matching the whole-currency
// averages the admin screens show.
func (r *postgresRepo) AverageOrderValue(ctx context.Context, f entities.RevenueFilter) (int64, error) {
	query, args := r.qb.Select("COALESCE(AVG(total_amount), 0)").
		From("orders").
		Where(revenueWhere(f)).
		MustSql()

	var avg decimal.Decimal
	if err := r.getContext(ctx, &avg, query, args...); err != nil {
		return 0, fmt.Errorf("failed to average order value: %w", err)
	}
	return avg.IntPart(), nil
}

func (r *postgresRepo) CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("orders").
		Where(sq.Eq{"status": string(status)}).
		MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) SaveProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns(productColumns...).
		Values(
			p.ID, p.Name, nullString(p.Description), p.Price.Decimal(),
			p.StockQuantity, p.Active, p.CreatedAt, p.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			stock_quantity = EXCLUDED.stock_quantity,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateProductStock(ctx context.Context, productID string, stock int) error {
	query, args := r.qb.Update("products").
		Set("stock_quantity", stock).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return r.listProducts(ctx, nil)
}

func (r *postgresRepo) ListLowStock(ctx context.Context, threshold int) ([]entities.Product, error) {
	return r.listProducts(ctx, sq.And{
		sq.Lt{"stock_quantity": threshold},
		sq.Eq{"active": true},
	})
}

func (r *postgresRepo) listProducts(ctx context.Context, where any) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).
		From("products").
		OrderBy("name")
	if where != nil {
		q = q.Where(where)
	}
	query, args := q.MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
