package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ResolutionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "barrel_resolution_seconds",
		Help:    "Time spent in one public resolver operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	ParsingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "barrel_parsing_seconds",
		Help:    "Time spent parsing a source file.",
		Buckets: prometheus.DefBuckets,
	})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barrel_file_cache_hits_total",
		Help: "Total number of parsed-file cache hits.",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barrel_file_cache_misses_total",
		Help: "Total number of parsed-file cache misses.",
	})

	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "barrel_file_cache_entries",
		Help: "Current number of entries in the parsed-file cache.",
	})

	ReexportChainLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "barrel_reexport_chain_length",
		Help:    "Number of files traversed while following re-export chains.",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barrel_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	WatcherInvalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barrel_watcher_invalidations_total",
		Help: "Total number of cache invalidations triggered by file changes.",
	})
)
