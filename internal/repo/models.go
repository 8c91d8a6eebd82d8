package repo

import (
	"database/sql"
	"time"

	"github.com/StefanMagureanu25/AWBD/internal/entities"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string          `db:"id"`
	OrderNumber     string          `db:"order_number"`
	UserID          string          `db:"user_id"`
	Status          string          `db:"status"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	ShippingAddress sql.NullString  `db:"shipping_address"`
	BillingAddress  sql.NullString  `db:"billing_address"`
	Notes           sql.NullString  `db:"notes"`
	CreatedAt       time.Time       `db:"created_at"`
	ShippedAt       sql.NullTime    `db:"shipped_at"`
	DeliveredAt     sql.NullTime    `db:"delivered_at"`
	CancelledAt     sql.NullTime    `db:"cancelled_at"`
}

type OrderItem struct {
	ID        string          `db:"id"`
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Subtotal  decimal.Decimal `db:"subtotal"`
}

type Product struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Description   sql.NullString  `db:"description"`
	Price         decimal.Decimal `db:"price"`
	StockQuantity int             `db:"stock_quantity"`
	Active        bool            `db:"active"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		Status:          entities.OrderStatus(o.Status),
		TotalAmount:     entities.RestoreMoney(o.TotalAmount),
		ShippingAddress: nullStringToString(o.ShippingAddress),
		BillingAddress:  nullStringToString(o.BillingAddress),
		Notes:           nullStringToString(o.Notes),
		CreatedAt:       o.CreatedAt,
		ShippedAt:       nullTimeToPtr(o.ShippedAt),
		DeliveredAt:     nullTimeToPtr(o.DeliveredAt),
		CancelledAt:     nullTimeToPtr(o.CancelledAt),
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}
	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		ProductID: i.ProductID,
		Quantity:  entities.Quantity(i.Quantity),
		UnitPrice: entities.RestoreMoney(i.UnitPrice),
		Subtotal:  entities.RestoreMoney(i.Subtotal),
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   nullStringToString(p.Description),
		Price:         entities.RestoreMoney(p.Price),
		StockQuantity: p.StockQuantity,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}
