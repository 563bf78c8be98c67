// SPDX-License-Identifier: MIT

package scheduling

import "log/slog"

// defaultSeed drives efficiency draws when no seed is supplied.
const defaultSeed int64 = 1

// Option configures an Executor.
type Option func(*Options)

// Options holds the Executor configuration.
type Options struct {
	// Seed feeds the efficiency draw; 0 selects the default seed.
	Seed int64

	// Efficiencies, if non-nil, replaces the random draw. Its length must
	// equal the pool size and every factor must be > 0.
	Efficiencies []float64

	// Logger receives debug records for dispatch and shutdown; nil means slog.Default().
	Logger *slog.Logger

	// Metrics, if non-nil, is updated on every task completion.
	Metrics *Metrics
}

// DefaultOptions returns the seed-1 draw, the default logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Seed:   defaultSeed,
		Logger: nil,
	}
}

// WithSeed sets the seed for the efficiency draw.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithEfficiencies pins every worker's efficiency factor; factors[i] belongs to worker i.
func WithEfficiencies(factors ...float64) Option {
	return func(o *Options) {
		o.Efficiencies = append([]float64(nil), factors...)
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
