package kinds

import (
	"strings"
	"sync/atomic"
)

var nextID atomic.Uint64

// Root is the implicit ancestor of every kind. It is not a valid catch target.
var Root = &Kind{name: "BaseError", id: nextID.Add(1)}

// Kind describes one failure kind.
type Kind struct {
	name   string
	parent *Kind
	id     uint64
	host   bool
	match  func(error) bool
}

// NewKind creates a kind under parent, or under Root when parent is nil.
// Registries call this; a kind built directly is not known to any registry.
func NewKind(name string, parent *Kind) *Kind {
	if parent == nil {
		parent = Root
	}
	return &Kind{
		name:   name,
		parent: parent,
		id:     nextID.Add(1),
	}
}

// Name returns the registered name.
func (k *Kind) Name() string {
	return k.name
}

// Parent returns the parent kind, or nil for Root.
func (k *Kind) Parent() *Kind {
	return k.parent
}

// ID returns the identity token of the kind.
func (k *Kind) ID() uint64 {
	return k.id
}

// IsHost reports whether the kind stands for a class of standard library errors.
func (k *Kind) IsHost() bool {
	return k.host
}

// IsRoot reports whether k is Root.
func (k *Kind) IsRoot() bool {
	return k == Root
}

// DescendsFrom reports whether ancestor appears on k's parent chain.
// A kind does not descend from itself. Dispatch never consults this.
func (k *Kind) DescendsFrom(ancestor *Kind) bool {
	if ancestor == nil {
		return false
	}
	for p := k.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Path returns the names from Root down to k joined by "/".
func (k *Kind) Path() string {
	var names []string
	for n := k; n != nil; n = n.parent {
		names = append(names, n.name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

// String implements fmt.Stringer
func (k *Kind) String() string {
	return k.name
}
