package kinfraglib

// Option configures a Sieve with optional dependencies.
type Option func(*sieveOptions)

// sieveOptions holds optional Sieve configuration.
type sieveOptions struct {
	logger     Logger
	hooks      *Hooks
	metrics    MetricsCollector
	builder    TableBuilder
	builderSet bool
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewSieve
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	sieve, err := kinfraglib.NewSieve(&cfg, kinfraglib.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *sieveOptions) {
		o.logger = logger
	}
}

// WithHooks sets decision observation hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewSieve
//
// Example:
//
//	hooks := &kinfraglib.Hooks{
//	    OnDecision: func(pocket string, row int, f kinfraglib.Fragment, accepted bool) {
//	        recordDecision(pocket, accepted)
//	    },
//	}
//	sieve, err := kinfraglib.NewSieve(&cfg, kinfraglib.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *sieveOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSieve
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "kinfraglib")
//	sieve, err := kinfraglib.NewSieve(&cfg, kinfraglib.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *sieveOptions) {
		o.metrics = metrics
	}
}

// WithTableBuilder sets the table builder used to regroup classified rows
// into the accepted and rejected output libraries.
//
// Passing a nil builder causes NewSieve to fail with ErrTableBuilderRequired;
// omit the option to get the default subpocket builder.
//
// Parameters:
//   - builder: TableBuilder implementation
//
// Returns:
//   - Option: Functional option for NewSieve
//
// Example:
//
//	sieve, err := kinfraglib.NewSieve(&cfg, kinfraglib.WithTableBuilder(myBuilder))
func WithTableBuilder(builder TableBuilder) Option {
	return func(o *sieveOptions) {
		o.builder = builder
		o.builderSet = true
	}
}
