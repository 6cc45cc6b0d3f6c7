package attempt

import (
	"context"

	"github.com/arthur-debert/attempt/pkg/kinds"
)

type phase string

const (
	phaseTry     phase = "try"
	phaseCatch   phase = "catch"
	phaseElse    phase = "else"
	phaseFinally phase = "finally"
)

// step is one unit of work handed to a driver.
type step[T any] func(ctx context.Context) (T, error)

// driver decides how a step is invoked. The phase logic in execute is shared
// by every driver, which is what keeps blocking and suspending runs in step.
type driver[T any] interface {
	mode() string
	call(ctx context.Context, s step[T]) (T, error)
}

// execute walks TRY -> (CATCH | ELSE) -> FINALLY -> (RESULT | PROPAGATE).
func (c *Controller[A, T]) execute(ctx context.Context, d driver[T], args []A) (T, error) {
	var zero T
	logger := c.log().With().Str("mode", d.mode()).Logger()
	enter := func(p phase, s step[T]) (T, error) {
		logger.Trace().Str("phase", string(p)).Msg("Entering phase")
		return d.call(ctx, s)
	}

	value, err := enter(phaseTry, func(ctx context.Context) (T, error) {
		return c.op(ctx, args...)
	})

	var (
		pending    T
		pendingErr error
	)
	switch {
	case err != nil:
		kind := kinds.Classify(err)
		idx := c.match(kind)
		if idx < 0 {
			logger.Trace().Str("kind", kind.Name()).Msg("Failure not handled")
			pendingErr = err
			break
		}
		logger.Trace().Str("kind", kind.Name()).Int("clause", idx).Msg("Failure caught")
		handler := c.clauses[idx].handler
		pending, pendingErr = enter(phaseCatch, func(ctx context.Context) (T, error) {
			return handler(ctx, err)
		})

	case c.elseFn != nil:
		pending, pendingErr = enter(phaseElse, step[T](c.elseFn))

	default:
		pending = value
	}

	if c.finallyFn != nil {
		final, finalErr := enter(phaseFinally, step[T](c.finallyFn))
		if finalErr != nil {
			logger.Trace().Err(finalErr).Msg("Finally raised")
			return zero, finalErr
		}
		if c.finallyReturns {
			return final, nil
		}
	}

	if pendingErr != nil {
		return zero, pendingErr
	}
	return pending, nil
}
