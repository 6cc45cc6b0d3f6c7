package attempt

import "context"

// Future is the eventual outcome of a suspending run or a spawned step.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Spawn runs fn on a new goroutine. A panic in fn settles the future with a
// *kinds.PanicError.
func Spawn[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = invoke(ctx, step[T](fn))
	}()
	return f
}

// Resolved returns a future already settled with value.
func Resolved[T any](value T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: value}
	close(f.done)
	return f
}

// Rejected returns a future already settled with err.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx ends. Giving up on the wait
// does not stop the underlying task; awaiting again later still yields its
// outcome.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) wait() (T, error) {
	<-f.done
	return f.value, f.err
}
