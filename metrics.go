package blockindex

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level metrics, registered at import time. Kept off the hot path:
// only construction, SetBlockSize, SetBlockSizeAt, Flush, and error paths
// touch these, never BlockOffset/BlockSize.

var appendsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "blockindex_appends_total",
		Help: "Number of block sizes recorded, by variant.",
	},
	[]string{"variant"},
)

var buildErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "blockindex_build_errors_total",
		Help: "Number of build-time errors, by variant and kind.",
	},
	[]string{"variant", "kind"},
)

var indexesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "blockindex_indexes_created_total",
		Help: "Number of index instances constructed, by variant.",
	},
	[]string{"variant"},
)
