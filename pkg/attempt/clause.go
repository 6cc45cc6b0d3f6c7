package attempt

import "github.com/arthur-debert/attempt/pkg/kinds"

type clause[T any] struct {
	kinds   map[*kinds.Kind]struct{}
	handler CatchHandler[T]
}

// match returns the index of the first clause holding k, or -1.
func (c *Controller[A, T]) match(k *kinds.Kind) int {
	for i, cl := range c.clauses {
		if _, ok := cl.kinds[k]; ok {
			return i
		}
	}
	return -1
}
