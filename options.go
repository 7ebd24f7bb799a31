package ttgo

import (
	"github.com/hupe1980/ttgo/resource"
)

type options struct {
	hashSizeMB       int
	workers          int
	ageWeight        int
	hashfullSample   int
	logger           *Logger
	metricsCollector MetricsCollector
	resourceConfig   *resource.Config
}

// Option configures Engine construction.
type Option func(*options)

// WithHashSize sets the transposition table size in mebibytes. The size is
// clamped to at least one cluster; the default is 16 MiB.
func WithHashSize(megabytes int) Option {
	return func(o *options) {
		o.hashSizeMB = megabytes
	}
}

// WithWorkers sets the number of pool workers used to parallelize clear
// and resize. Zero or negative selects runtime.GOMAXPROCS(0).
//
// The pool only runs maintenance work; search workers are owned by the
// caller and never pass through it.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithAgeWeight tunes how strongly entry age counts against stored depth
// in replacement decisions. See tt.WithAgeWeight.
func WithAgeWeight(w int) Option {
	return func(o *options) {
		o.ageWeight = w
	}
}

// WithHashfullSample sets the number of clusters Hashfull samples.
// See tt.WithHashfullSample.
func WithHashfullSample(n int) Option {
	return func(o *options) {
		o.hashfullSample = n
	}
}

// WithLogger sets the logger. If nil, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector sets the metrics collector for maintenance
// operations. If nil, metrics are disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceConfig enables resource budgeting: a hard memory cap the
// table allocation is reserved against, and an optional clear-throughput
// limit.
func WithResourceConfig(cfg resource.Config) Option {
	return func(o *options) {
		o.resourceConfig = &cfg
	}
}
