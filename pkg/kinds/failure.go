package kinds

import (
	"errors"
	"fmt"
)

// Failure is an error raised with a specific Kind.
type Failure struct {
	kind    *Kind
	message string
	trace   string
	cause   error
}

// New creates a failure of kind k.
func (k *Kind) New(message string) *Failure {
	return newFailure(k, message, nil)
}

// Newf creates a failure of kind k with a formatted message.
func (k *Kind) Newf(format string, args ...interface{}) *Failure {
	return newFailure(k, fmt.Sprintf(format, args...), nil)
}

// Wrap creates a failure of kind k caused by err. Returns nil if err is nil.
func (k *Kind) Wrap(err error, message string) *Failure {
	if err == nil {
		return nil
	}
	return newFailure(k, message, err)
}

func newFailure(k *Kind, message string, cause error) *Failure {
	return &Failure{
		kind:    k,
		message: message,
		trace:   captureTrace(3),
		cause:   cause,
	}
}

// Error renders "<name>: <message>", or just the name when there is no message.
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.message == "" {
		return f.Name()
	}
	return fmt.Sprintf("%s: %s", f.Name(), f.message)
}

// Kind returns the kind the failure was constructed as.
func (f *Failure) Kind() *Kind {
	return f.kind
}

// Name returns the name of the failure's kind.
func (f *Failure) Name() string {
	return f.kind.Name()
}

// Message returns the failure message.
func (f *Failure) Message() string {
	return f.message
}

// Trace returns the stack captured when the failure was constructed.
func (f *Failure) Trace() string {
	return f.trace
}

// Unwrap returns the cause given to Wrap.
func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.cause
}

// Is reports whether target is a failure of the same kind.
func (f *Failure) Is(target error) bool {
	if f == nil {
		return false
	}
	var other *Failure
	if errors.As(target, &other) && other != nil {
		return f.kind == other.kind
	}
	return false
}
