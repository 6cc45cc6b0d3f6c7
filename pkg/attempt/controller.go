package attempt

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/attempt/pkg/errors"
	"github.com/arthur-debert/attempt/pkg/kinds"
	"github.com/arthur-debert/attempt/pkg/logging"
	"github.com/arthur-debert/attempt/pkg/registry"
)

// Operation is the guarded function.
type Operation[A, T any] func(ctx context.Context, args ...A) (T, error)

// CatchHandler handles a failure matched by a clause. It receives the error
// exactly as the operation returned it.
type CatchHandler[T any] func(ctx context.Context, err error) (T, error)

// ElseHandler runs when the operation did not fail.
type ElseHandler[T any] func(ctx context.Context) (T, error)

// FinallyHandler runs after every other phase.
type FinallyHandler[T any] func(ctx context.Context) (T, error)

// Controller holds the clauses and handlers for one guarded operation.
type Controller[A, T any] struct {
	op       Operation[A, T]
	registry *registry.Registry
	logger   *zerolog.Logger

	clauses        []clause[T]
	elseFn         ElseHandler[T]
	finallyFn      FinallyHandler[T]
	finallyReturns bool
}

type settings struct {
	registry *registry.Registry
	logger   *zerolog.Logger
}

// Option configures a Controller
type Option func(*settings)

// WithRegistry resolves catch targets against reg instead of registry.Default().
func WithRegistry(reg *registry.Registry) Option {
	return func(s *settings) {
		s.registry = reg
	}
}

// WithLogger sets the logger used for phase traces
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = &logger
	}
}

// New wraps op in a Controller.
func New[A, T any](op Operation[A, T], opts ...Option) *Controller[A, T] {
	if op == nil {
		panic(errors.New(errors.ErrInvalidInput, "operation cannot be nil"))
	}
	s := settings{registry: registry.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.registry == nil {
		s.registry = registry.Default()
	}
	return &Controller[A, T]{
		op:       op,
		registry: s.registry,
		logger:   s.logger,
	}
}

// Try wraps an operation that takes no arguments.
func Try[T any](fn func(ctx context.Context) (T, error), opts ...Option) *Controller[any, T] {
	if fn == nil {
		panic(errors.New(errors.ErrInvalidInput, "operation cannot be nil"))
	}
	return New[any, T](func(ctx context.Context, _ ...any) (T, error) {
		return fn(ctx)
	}, opts...)
}

// Catch appends a clause handling failures of any of targets. A target is a
// kind name or a *kinds.Kind; names resolve to registry kinds before host
// kinds. Panics with INVALID_CLAUSE when handler is nil or targets is empty,
// and with INVALID_KIND when a target cannot be resolved.
func (c *Controller[A, T]) Catch(handler CatchHandler[T], targets ...interface{}) *Controller[A, T] {
	if handler == nil || len(targets) == 0 {
		panic(errors.InvalidClause())
	}

	set := make(map[*kinds.Kind]struct{}, len(targets))
	for _, target := range targets {
		k, err := c.registry.Resolve(target)
		if err != nil {
			panic(err)
		}
		set[k] = struct{}{}
	}

	c.clauses = append(c.clauses, clause[T]{kinds: set, handler: handler})
	return c
}

// Else sets the handler run when the operation succeeds, replacing any
// earlier one. Its result replaces the operation's result.
func (c *Controller[A, T]) Else(handler ElseHandler[T]) *Controller[A, T] {
	c.elseFn = handler
	return c
}

// FinallyOption configures the finally phase
type FinallyOption func(*finallyConfig)

type finallyConfig struct {
	withReturn bool
}

// WithReturn makes the finally handler's result replace the outcome of the
// earlier phases, including a failure that would otherwise propagate.
func WithReturn() FinallyOption {
	return func(fc *finallyConfig) {
		fc.withReturn = true
	}
}

// Finally sets the handler that always runs last, replacing any earlier one.
func (c *Controller[A, T]) Finally(handler FinallyHandler[T], opts ...FinallyOption) *Controller[A, T] {
	var fc finallyConfig
	for _, opt := range opts {
		opt(&fc)
	}
	c.finallyFn = handler
	c.finallyReturns = fc.withReturn
	return c
}

// FinallyRun sets the finally handler and immediately runs the controller
// with no arguments, blocking until it completes.
func (c *Controller[A, T]) FinallyRun(ctx context.Context, handler FinallyHandler[T], opts ...FinallyOption) (T, error) {
	return c.Finally(handler, opts...).Run(ctx)
}

// FinallyAsync sets the finally handler and starts a suspending run with no
// arguments.
func (c *Controller[A, T]) FinallyAsync(ctx context.Context, handler FinallyHandler[T], opts ...FinallyOption) *Future[T] {
	return c.Finally(handler, opts...).Async(ctx)
}

// Run executes the controller on the calling goroutine.
func (c *Controller[A, T]) Run(ctx context.Context, args ...A) (T, error) {
	return c.execute(ctx, blocking[T]{}, args)
}

// Async executes the controller as a separate task and returns its Future.
func (c *Controller[A, T]) Async(ctx context.Context, args ...A) *Future[T] {
	owned := make([]A, len(args))
	copy(owned, args)
	return Spawn(ctx, func(ctx context.Context) (T, error) {
		return c.execute(ctx, suspending[T]{}, owned)
	})
}

// log returns the configured logger, or the library logger (silent until
// logging.SetupLogger runs)
func (c *Controller[A, T]) log() *zerolog.Logger {
	if c.logger != nil {
		return c.logger
	}
	logger := logging.Library("attempt")
	return &logger
}
