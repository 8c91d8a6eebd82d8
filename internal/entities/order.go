package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type OrderEvent string

const (
	EventConfirm OrderEvent = "confirm"
	EventShip    OrderEvent = "ship"
	EventDeliver OrderEvent = "deliver"
	EventCancel  OrderEvent = "cancel"

	// Item mutations go through the same rejection path as lifecycle events
	// when the order is no longer pending.
	EventAddItem    OrderEvent = "add_item"
	EventRemoveItem OrderEvent = "remove_item"
	EventUpdateItem OrderEvent = "update_item"
)

// transitions is the full lifecycle table. Every (status, event) pair missing
// here is rejected with InvalidTransitionError.
var transitions = map[OrderStatus]map[OrderEvent]OrderStatus{
	StatusPending: {
		EventConfirm: StatusConfirmed,
		EventCancel:  StatusCancelled,
	},
	StatusConfirmed: {
		EventShip:   StatusShipped,
		EventCancel: StatusCancelled,
	},
	StatusShipped: {
		EventDeliver: StatusDelivered,
	},
}

// OrderItem is a line on an order. Subtotal is derived from UnitPrice and
// Quantity by the aggregate and is never set independently.
type OrderItem struct {
	ID        string
	ProductID string
	Quantity  Quantity
	UnitPrice Money
	Subtotal  Money
}

// Order is the aggregate root for the checkout flow. Items are owned
// exclusively by the order and TotalAmount always equals the sum of line
// subtotals; all mutation goes through the methods below.
type Order struct {
	ID          string
	OrderNumber string
	UserID      string

	Status      OrderStatus
	Items       []OrderItem
	TotalAmount Money

	ShippingAddress string
	BillingAddress  string
	Notes           string

	CreatedAt   time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

func NewOrder(id, orderNumber, userID string) Order {
	return Order{
		ID:          id,
		OrderNumber: orderNumber,
		UserID:      userID,
		Status:      StatusPending,
		TotalAmount: ZeroMoney(),
		CreatedAt:   time.Now().UTC(),
	}
}

// AddItem appends a line item priced at unitPrice and recomputes the total.
// The caller is responsible for having reserved the stock first.
func (o *Order) AddItem(itemID, productID string, qty Quantity, unitPrice Money) (OrderItem, error) {
	if o.Status != StatusPending {
		return OrderItem{}, &InvalidTransitionError{From: o.Status, Event: EventAddItem}
	}

	subtotal, err := unitPrice.MulInt(qty.Int())
	if err != nil {
		return OrderItem{}, err
	}

	item := OrderItem{
		ID:        itemID,
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
	}
	o.Items = append(o.Items, item)

	if err := o.recomputeTotal(); err != nil {
		o.Items = o.Items[:len(o.Items)-1]
		return OrderItem{}, err
	}
	return item, nil
}

// RemoveItem removes a line item and recomputes the total. It returns the
// removed item so the caller can release its reservation.
func (o *Order) RemoveItem(itemID string) (OrderItem, error) {
	if o.Status != StatusPending {
		return OrderItem{}, &InvalidTransitionError{From: o.Status, Event: EventRemoveItem}
	}

	for i, item := range o.Items {
		if item.ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			if err := o.recomputeTotal(); err != nil {
				return OrderItem{}, err
			}
			return item, nil
		}
	}
	return OrderItem{}, ErrOrderItemNotFound
}

// UpdateItemQuantity changes a line's quantity and recomputes its subtotal
// and the order total. The caller settles the reservation delta beforehand.
func (o *Order) UpdateItemQuantity(itemID string, qty Quantity) error {
	if o.Status != StatusPending {
		return &InvalidTransitionError{From: o.Status, Event: EventUpdateItem}
	}

	for i := range o.Items {
		if o.Items[i].ID != itemID {
			continue
		}
		subtotal, err := o.Items[i].UnitPrice.MulInt(qty.Int())
		if err != nil {
			return err
		}
		prevQty, prevSubtotal := o.Items[i].Quantity, o.Items[i].Subtotal
		o.Items[i].Quantity = qty
		o.Items[i].Subtotal = subtotal
		if err := o.recomputeTotal(); err != nil {
			o.Items[i].Quantity = prevQty
			o.Items[i].Subtotal = prevSubtotal
			return err
		}
		return nil
	}
	return ErrOrderItemNotFound
}

func (o *Order) Item(itemID string) (OrderItem, bool) {
	for _, item := range o.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return OrderItem{}, false
}

func (o *Order) HasItems() bool {
	return len(o.Items) > 0
}

func (o *Order) recomputeTotal() error {
	total := ZeroMoney()
	for _, item := range o.Items {
		sum, err := total.Add(item.Subtotal)
		if err != nil {
			return err
		}
		total = sum
	}
	o.TotalAmount = total
	return nil
}

func (o *Order) next(event OrderEvent) (OrderStatus, error) {
	if to, ok := transitions[o.Status][event]; ok {
		return to, nil
	}
	return "", &InvalidTransitionError{From: o.Status, Event: event}
}

// Confirm freezes the item set. An order without items cannot be confirmed.
func (o *Order) Confirm() error {
	if !o.HasItems() {
		return &InvalidTransitionError{From: o.Status, Event: EventConfirm}
	}
	to, err := o.next(EventConfirm)
	if err != nil {
		return err
	}
	o.Status = to
	return nil
}

func (o *Order) Ship() error {
	to, err := o.next(EventShip)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	o.Status = to
	o.ShippedAt = &now
	return nil
}

func (o *Order) Deliver() error {
	to, err := o.next(EventDeliver)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	o.Status = to
	o.DeliveredAt = &now
	return nil
}

func (o *Order) Cancel() error {
	to, err := o.next(EventCancel)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	o.Status = to
	o.CancelledAt = &now
	return nil
}

func (o *Order) IsPending() bool {
	return o.Status == StatusPending
}

func (o *Order) IsTerminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCancelled
}

func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(o)
}
