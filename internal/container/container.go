// Package container provides dependency injection for the ledger-taxonomy
// CLI. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/ledger-taxonomy/internal/config"
	"fjacquet/ledger-taxonomy/internal/currencyutils"
	"fjacquet/ledger-taxonomy/internal/filter"
	"fjacquet/ledger-taxonomy/internal/logging"
	"fjacquet/ledger-taxonomy/internal/store"
	"fjacquet/ledger-taxonomy/internal/taxonomy"
)

// Container holds all application dependencies and provides methods to
// access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	snapshots   *store.SnapshotStore
	filterState filter.StateStore
	converter   *currencyutils.Converter
	engine      *taxonomy.Engine

	closers []func() error
}

// Option customizes container construction, mostly for tests
type Option func(*options)

type options struct {
	logger   logging.Logger
	notifier taxonomy.Notifier
}

// WithLogger replaces the logrus adapter built from configuration
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithNotifier routes engine notices somewhere other than the log
func WithNotifier(n taxonomy.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	converter, err := currencyutils.NewConverter(cfg.Data.BaseCurrency, cfg.Currency.Rates, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating currency converter: %w", err)
	}

	snapshots := store.NewSnapshotStore(cfg.Data.File, cfg.Data.BaseCurrency, logger)

	c := &Container{
		logger:    logger,
		config:    cfg,
		snapshots: snapshots,
		converter: converter,
	}

	statePath := cfg.FilterStatePath()
	switch cfg.Filters.Backend {
	case config.BackendSQLite:
		sqliteStore, err := store.NewSQLiteFilterStore(statePath, logger)
		if err != nil {
			return nil, fmt.Errorf("error opening filter state database: %w", err)
		}
		c.filterState = sqliteStore
		c.closers = append(c.closers, sqliteStore.Close)
	default:
		c.filterState = store.NewYAMLFilterStore(statePath, logger)
	}

	engineOpts := []taxonomy.Option{}
	if o.notifier != nil {
		engineOpts = append(engineOpts, taxonomy.WithNotifier(o.notifier))
	}
	c.engine = taxonomy.NewEngine(snapshots, logger, engineOpts...)

	logger.Debug("Container initialized",
		logging.F(logging.FieldFile, snapshots.Path()),
		logging.F(logging.FieldBackend, cfg.Filters.Backend))

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetSnapshotStore returns the store holding the ledger snapshot. It is
// also the engine's mutation sink.
func (c *Container) GetSnapshotStore() *store.SnapshotStore {
	return c.snapshots
}

// GetFilterStateStore returns the configured quick-filter store.
func (c *Container) GetFilterStateStore() filter.StateStore {
	return c.filterState
}

// GetConverter returns the currency converter.
func (c *Container) GetConverter() *currencyutils.Converter {
	return c.converter
}

// GetEngine returns the taxonomy mutation engine.
func (c *Container) GetEngine() *taxonomy.Engine {
	return c.engine
}

// Close releases resources held by the container, such as the SQLite
// filter-state handle.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.logger.Debug("Container closed")
	return firstErr
}
