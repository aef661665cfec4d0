package analysis

// Options holds the engine's tunable thresholds. The zero value is not
// usable; construct with DefaultOptions and override as needed.
type Options struct {
	SampleSize           int     // rows used for type inference and column stats
	MinOutlierRows       int     // numeric values required before IQR fencing
	MinCorrelationPairs  int     // paired samples required per column pair
	CorrelationThreshold float64 // |r| at or below this is discarded
	MinTrendRows         int     // rows required for trend detection
}

// DefaultOptions returns the documented default thresholds
func DefaultOptions() Options {
	return Options{
		SampleSize:           100,
		MinOutlierRows:       5,
		MinCorrelationPairs:  5,
		CorrelationThreshold: 0.5,
		MinTrendRows:         5,
	}
}

// Engine performs all dataset analysis passes. It holds no mutable state
// and is safe to share across goroutines analyzing independent datasets.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the given options
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// NewDefaultEngine creates an engine with default thresholds
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultOptions())
}

// Options returns the engine's configured thresholds
func (e *Engine) Options() Options {
	return e.opts
}
