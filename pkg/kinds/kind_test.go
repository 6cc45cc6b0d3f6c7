package kinds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKind(t *testing.T) {
	t.Run("defaults to root parent", func(t *testing.T) {
		k := NewKind("IOError", nil)
		assert.Equal(t, "IOError", k.Name())
		assert.Same(t, Root, k.Parent())
		assert.False(t, k.IsHost())
		assert.False(t, k.IsRoot())
	})

	t.Run("identity is unique even for equal names", func(t *testing.T) {
		a := NewKind("Dup", nil)
		b := NewKind("Dup", nil)
		assert.NotEqual(t, a.ID(), b.ID())
		assert.NotSame(t, a, b)
	})

	t.Run("root has no parent", func(t *testing.T) {
		assert.Nil(t, Root.Parent())
		assert.True(t, Root.IsRoot())
		assert.Equal(t, "BaseError", Root.String())
	})
}

func TestKind_DescendsFrom(t *testing.T) {
	io := NewKind("IOError", nil)
	read := NewKind("ReadError", io)
	write := NewKind("WriteError", io)

	assert.True(t, read.DescendsFrom(io))
	assert.True(t, write.DescendsFrom(io))
	assert.True(t, read.DescendsFrom(Root))
	assert.False(t, read.DescendsFrom(write))
	assert.False(t, write.DescendsFrom(read))
	assert.False(t, read.DescendsFrom(read))
	assert.False(t, read.DescendsFrom(nil))
}

func TestKind_Path(t *testing.T) {
	io := NewKind("IOError", nil)
	read := NewKind("ReadError", io)

	require.Equal(t, "BaseError/IOError/ReadError", read.Path())
	require.Equal(t, "BaseError", Root.Path())
}
