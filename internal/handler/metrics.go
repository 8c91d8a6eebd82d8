package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "confirmed_total",
			Help:      "Total number of orders confirmed.",
		},
	)

	ordersCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "cancelled_total",
			Help:      "Total number of orders cancelled.",
		},
	)

	oversellRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "stock",
			Name:      "oversell_rejected_total",
			Help:      "Total number of reservations rejected for insufficient stock.",
		},
	)

	restocksProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "restock_consumer",
			Name:      "processed_total",
			Help:      "Total number of restock events applied.",
		},
	)

	restocksFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "restock_consumer",
			Name:      "failed_total",
			Help:      "Total number of restock events that could not be applied.",
		},
	)

	restocksDLQ = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "restock_consumer",
			Name:      "dlq_total",
			Help:      "Total number of restock events written to the DLQ.",
		},
	)
)
