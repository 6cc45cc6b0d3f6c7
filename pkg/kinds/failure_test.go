package kinds

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailure_Error(t *testing.T) {
	k := NewKind("TypeError", nil)

	tests := []struct {
		name    string
		failure *Failure
		want    string
	}{
		{"no message", k.New(""), "TypeError"},
		{"with message", k.New("bad type"), "TypeError: bad type"},
		{"formatted", k.Newf("expected %s, got %s", "int", "string"), "TypeError: expected int, got string"},
		{"root kind", Root.New(""), "BaseError"},
		{"root kind with message", Root.New("message"), "BaseError: message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.failure.Error())
		})
	}
}

func TestFailure_Accessors(t *testing.T) {
	k := NewKind("ValueError", nil)
	f := k.New("out of range")

	assert.Same(t, k, f.Kind())
	assert.Equal(t, "ValueError", f.Name())
	assert.Equal(t, "out of range", f.Message())
	assert.Nil(t, f.Unwrap())
}

func TestFailure_TraceCapturedAtConstruction(t *testing.T) {
	f := NewKind("TraceError", nil).New("x")

	require.NotEmpty(t, f.Trace())
	// The innermost frame is the caller of New, not the package internals.
	assert.Contains(t, f.Trace(), "TestFailure_TraceCapturedAtConstruction")
	assert.NotContains(t, f.Trace(), "captureTrace")
}

func TestFailure_Wrap(t *testing.T) {
	k := NewKind("ReadError", nil)
	cause := stderrors.New("disk on fire")

	f := k.Wrap(cause, "cannot read")
	require.NotNil(t, f)
	assert.Equal(t, "ReadError: cannot read", f.Error())
	assert.True(t, stderrors.Is(f, cause))

	assert.Nil(t, k.Wrap(nil, "nothing"))

	var typedNil error = k.Wrap(nil, "nothing")
	assert.Equal(t, "<nil>", typedNil.Error())
	assert.Nil(t, stderrors.Unwrap(typedNil))
	assert.False(t, stderrors.Is(typedNil, k.New("other")))
}

func TestFailure_Is(t *testing.T) {
	a := NewKind("ErrorA", nil)
	b := NewKind("ErrorB", nil)

	assert.True(t, stderrors.Is(a.New("one"), a.New("two")))
	assert.False(t, stderrors.Is(a.New("one"), b.New("one")))
	assert.True(t, stderrors.Is(fmt.Errorf("context: %w", a.New("x")), a.New("")))
}
