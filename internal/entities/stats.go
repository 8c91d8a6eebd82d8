package entities

import "time"

// RevenueFilter scopes the read-only revenue projections. Status is required;
// which statuses count as revenue is the caller's convention, not a rule the
// aggregator enforces. UserID, From and To narrow the result when set.
type RevenueFilter struct {
	Status OrderStatus
	UserID string
	From   *time.Time
	To     *time.Time
}

// StatusCount is one row of the orders-by-status projection.
type StatusCount struct {
	Status OrderStatus
	Count  int64
}
