// Package metrics defines and registers the custom Prometheus metrics for
// the marketplace API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "market"

// JobsCreatedTotal counts job postings created through the API.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created.",
	},
)

// JobsDeletedTotal counts job postings deleted through the API.
var JobsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_deleted_total",
		Help:      "Total number of job postings deleted.",
	},
)

// BidsPlacedTotal counts bids successfully placed.
var BidsPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bids_placed_total",
		Help:      "Total number of bids successfully placed.",
	},
)

// BidsRejectedTotal counts bid submissions rejected before insertion.
// Label:
//   - reason: why the bid was refused (currently only "duplicate")
var BidsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bids_rejected_total",
		Help:      "Total number of bid submissions rejected, by reason.",
	},
	[]string{"reason"},
)
