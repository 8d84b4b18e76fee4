package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"fjacquet/ledger-taxonomy/internal/logging"
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/taxonomyerror"

	"golang.org/x/sync/semaphore"
)

// Sink applies an Update as a single state transition.
type Sink interface {
	Apply(ctx context.Context, u Update) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, u Update) error

// Apply calls f
func (f SinkFunc) Apply(ctx context.Context, u Update) error {
	return f(ctx, u)
}

// Notifier shows short user-facing notices
type Notifier interface {
	Notice(msg string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(msg string)

// Notice calls f
func (f NotifierFunc) Notice(msg string) {
	f(msg)
}

// Outcome reports what a mutation did. Update is the payload handed to the
// sink; it is empty for no-ops.
type Outcome struct {
	Update  Update
	Entity  models.Entity
	Applied int
	Removed bool
}

// Engine serializes taxonomy mutations and hands their updates to a Sink.
// At most one mutation runs at a time; a concurrent request fails with
// taxonomyerror.ErrBusy instead of waiting.
type Engine struct {
	sink     Sink
	notifier Notifier
	logger   logging.Logger
	newID    IDGenerator
	yield    func()

	sem  *semaphore.Weighted
	busy atomic.Bool
}

// Option configures an Engine
type Option func(*Engine)

// WithNotifier sets where user-facing notices go. Notices are logged by default.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithIDGenerator overrides the id source used by Add
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) {
		if g != nil {
			e.newID = g
		}
	}
}

// WithYield replaces the scheduling yield taken before each cascade
func WithYield(y func()) Option {
	return func(e *Engine) {
		if y != nil {
			e.yield = y
		}
	}
}

// NewEngine creates an Engine that delivers updates to sink
func NewEngine(sink Sink, logger logging.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	e := &Engine{
		sink:   sink,
		logger: logger,
		newID:  NewUUID,
		yield:  runtime.Gosched,
		sem:    semaphore.NewWeighted(1),
	}
	e.notifier = NotifierFunc(func(msg string) {
		e.logger.Info(msg, logging.F(logging.FieldStatus, "notice"))
	})
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Busy reports whether a mutation is in flight
func (e *Engine) Busy() bool {
	return e.busy.Load()
}

// Add registers a new entity
func (e *Engine) Add(ctx context.Context, snap models.Snapshot, kind models.Kind, name string) (Outcome, error) {
	name = strings.TrimSpace(name)
	return e.run(ctx, "add", kind, func() (Outcome, error) {
		entity, u, err := Add(snap, kind, name, e.newID)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Update: u, Entity: entity}, nil
	}, fmt.Sprintf("Added %s.", name))
}

// Rename renames oldName to newName and cascades into every collection.
// Empty or equal names return a zero Outcome and a nil error.
func (e *Engine) Rename(ctx context.Context, snap models.Snapshot, kind models.Kind, oldName, newName string) (Outcome, error) {
	if oldName == "" || newName == "" || oldName == newName {
		return Outcome{}, nil
	}
	return e.run(ctx, "rename", kind, func() (Outcome, error) {
		e.notifier.Notice(fmt.Sprintf("Renaming %s to %s...", oldName, newName))
		u, applied := Rename(snap, kind, oldName, newName)
		return Outcome{Update: u, Applied: applied}, nil
	}, "Rename completed.")
}

// Delete removes name from the registry without touching dependent records.
// Callers should consult CheckDependencies first.
func (e *Engine) Delete(ctx context.Context, snap models.Snapshot, kind models.Kind, name string) (Outcome, error) {
	return e.run(ctx, "delete", kind, func() (Outcome, error) {
		u, removed := Delete(snap, kind, name)
		return Outcome{Update: u, Removed: removed}, nil
	}, fmt.Sprintf("%s deleted.", name))
}

// Merge folds source into target
func (e *Engine) Merge(ctx context.Context, snap models.Snapshot, kind models.Kind, source, target string) (Outcome, error) {
	return e.run(ctx, "merge", kind, func() (Outcome, error) {
		u, applied, err := Merge(snap, kind, source, target)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Update: u, Applied: applied, Removed: u.Has(registryCollection(kind))}, nil
	}, fmt.Sprintf("Merged %s into %s.", source, target))
}

func (e *Engine) run(ctx context.Context, op string, kind models.Kind, compute func() (Outcome, error), done string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if !e.sem.TryAcquire(1) {
		return Outcome{}, taxonomyerror.ErrBusy
	}
	e.busy.Store(true)
	defer func() {
		e.busy.Store(false)
		e.sem.Release(1)
	}()

	log := e.logger.WithFields(
		logging.F(logging.FieldOperation, op),
		logging.F(logging.FieldKind, kind.String()),
	)

	// Let other goroutines run before the O(n) pass. Not a cancellation point.
	e.yield()

	start := time.Now()
	out, err := guard(op, kind, compute)
	if err != nil {
		var cascadeErr *taxonomyerror.CascadeError
		var notFound *taxonomyerror.NotFoundError
		switch {
		case taxonomyerror.IsValidation(err), errors.As(err, &notFound):
			log.WithError(err).Warn("Mutation rejected")
			return Outcome{}, err
		case errors.As(err, &cascadeErr):
		default:
			err = &taxonomyerror.CascadeError{Operation: op, Kind: kind.String(), Err: err}
		}
		log.WithError(err).Error("Mutation failed, nothing applied")
		e.notifier.Notice(fmt.Sprintf("Error: %s failed.", op))
		return Outcome{}, err
	}

	if out.Update.IsEmpty() {
		log.Debug("Mutation changed nothing")
		return out, nil
	}

	if err := e.sink.Apply(ctx, out.Update); err != nil {
		log.WithError(err).Error("Failed to apply update")
		e.notifier.Notice(fmt.Sprintf("Error: %s failed.", op))
		return Outcome{}, fmt.Errorf("apply %s update: %w", op, err)
	}

	log.Info("Mutation applied",
		logging.F(logging.FieldApplied, out.Applied),
		logging.F("collections", out.Update.Names()),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	e.notifier.Notice(done)
	return out, nil
}

func guard(op string, kind models.Kind, compute func() (Outcome, error)) (out Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{}
			err = &taxonomyerror.CascadeError{Operation: op, Kind: kind.String(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return compute()
}

func registryCollection(kind models.Kind) Collection {
	if kind == models.KindAccount {
		return CollectionAccounts
	}
	return CollectionCategories
}
