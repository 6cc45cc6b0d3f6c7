package attempt

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/arthur-debert/attempt/pkg/kinds"
)

// rethrow is an operation that raises its first argument.
func rethrow(_ context.Context, args ...error) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	return "", args[0]
}

// messageOf returns the failure's message.
func messageOf(_ context.Context, err error) (string, error) {
	var f *kinds.Failure
	if stderrors.As(err, &f) {
		return f.Message(), nil
	}
	return err.Error(), nil
}

func returns[T any](v T) func(context.Context) (T, error) {
	return func(context.Context) (T, error) {
		return v, nil
	}
}

func raises[T any](err error) func(context.Context) (T, error) {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// recorder collects the order in which phases ran.
type recorder struct {
	mu    sync.Mutex
	steps []string
}

func (r *recorder) add(step string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, step)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.steps))
	copy(out, r.steps)
	return out
}

// handlerSpy is a catch handler whose calls can be asserted.
type handlerSpy struct {
	mock.Mock
}

func (s *handlerSpy) Handle(_ context.Context, err error) (int, error) {
	args := s.Called(err)
	return args.Int(0), args.Error(1)
}
