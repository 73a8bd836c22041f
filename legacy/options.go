package legacy

import "log/slog"

type config struct {
	logger      *slog.Logger
	strictPaths bool
	workers     int
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// log returns the logger, falling back to a discard logger if nil.
func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// Option configures migration.
type Option func(*config)

// WithLogger sets the logger for migration operations.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithStrictPaths makes a file path without a "/" fail the migration with
// filelist.ErrMalformedPath. By default such paths are dropped from the
// compressed file list and logged.
func WithStrictPaths(enabled bool) Option {
	return func(c *config) {
		c.strictPaths = enabled
	}
}

// WithWorkers sets how many headers MigrateAll converts at once.
// Values < 1 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}
