package kinds

import "fmt"

// PanicError carries a value recovered from a panic inside a guarded step.
type PanicError struct {
	Value interface{}
	Stack string
}

// Recovered wraps a value returned by recover(). It must be called from the
// deferred function so the stack still shows the panicking frames.
func Recovered(v interface{}) *PanicError {
	return &PanicError{
		Value: v,
		Stack: captureTrace(2),
	}
}

// Error implements the error interface
func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap exposes the panic value when it is itself an error, so a panicking
// Failure is still classified by its own kind.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}
