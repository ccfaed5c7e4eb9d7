package cliffgo

import (
	"context"
	"log/slog"

	"github.com/hupe1980/cliffgo/cayley"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	registry         *cayley.Registry
	ctx              context.Context
}

// Option configures New.
type Option func(*options)

// WithLogger configures structured logging of table resolution.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := cliffgo.NewJSONLogger(slog.LevelDebug)
//	alg, _ := cliffgo.New[float64](signature.PGA3, cliffgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for table resolution.
// Pass nil to disable metrics collection.
//
//	metrics := &cliffgo.BasicMetricsCollector{}
//	alg, _ := cliffgo.New[float64](signature.STA, cliffgo.WithMetricsCollector(metrics))
//	fmt.Println(metrics.GetStats().BuildCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithRegistry resolves tables through r instead of cayley.DefaultRegistry.
func WithRegistry(r *cayley.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithContext sets the context of the table build, if one is needed.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		ctx:              context.Background(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.registry == nil {
		o.registry = cayley.DefaultRegistry()
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}
	return o
}
