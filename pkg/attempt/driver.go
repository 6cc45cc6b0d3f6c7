package attempt

import (
	"context"

	"github.com/arthur-debert/attempt/pkg/kinds"
)

// blocking runs each step directly on the caller's goroutine.
type blocking[T any] struct{}

func (blocking[T]) mode() string { return "blocking" }

func (blocking[T]) call(ctx context.Context, s step[T]) (T, error) {
	return invoke(ctx, s)
}

// suspending spawns each step and parks the running task until it settles.
// Steps still run strictly one after another.
type suspending[T any] struct{}

func (suspending[T]) mode() string { return "suspending" }

func (suspending[T]) call(ctx context.Context, s step[T]) (T, error) {
	return Spawn(ctx, s).wait()
}

// invoke calls s, turning a panic into a *kinds.PanicError.
func invoke[T any](ctx context.Context, s step[T]) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value = zero
			err = kinds.Recovered(r)
		}
	}()
	return s(ctx)
}
