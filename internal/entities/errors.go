package entities

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidQuantity = errors.New("invalid quantity")

	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrProductNotFound   = errors.New("product not found")

	ErrOverRelease         = errors.New("release exceeds reserved stock")
	ErrReservationNotFound = errors.New("commit exceeds reserved stock")
)

// InsufficientStockError is returned when a reservation asks for more units
// than are currently free to sell.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

// InvalidTransitionError is returned by the order state machine for every
// (status, event) pair that is not in the transition table. Item mutations on
// a non-pending order report the mutation as the rejected event.
type InvalidTransitionError struct {
	From  OrderStatus
	Event OrderEvent
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition: %s from status %s", e.Event, e.From)
}
