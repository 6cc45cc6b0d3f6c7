package registry

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/attempt/pkg/errors"
	"github.com/arthur-debert/attempt/pkg/kinds"
	"github.com/arthur-debert/attempt/pkg/logging"
)

// Registry is a thread-safe set of named failure kinds
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*kinds.Kind
	known  map[*kinds.Kind]struct{}
	logger *zerolog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for definition traces
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = &logger
	}
}

// New creates an empty Registry
func New(opts ...Option) *Registry {
	r := &Registry{
		byName: make(map[string]*kinds.Kind),
		known:  make(map[*kinds.Kind]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// log returns the configured logger, or the library logger, which is silent
// until the program sets up logging.
func (r *Registry) log() *zerolog.Logger {
	if r.logger != nil {
		return r.logger
	}
	logger := logging.Library("registry")
	return &logger
}

// Define defines names as children of the root kind.
func (r *Registry) Define(names ...string) ([]*kinds.Kind, error) {
	return r.DefineUnder(nil, names...)
}

// DefineUnder defines names as children of parent (nil means the root kind)
// and returns one kind per name, in order. A name that is already registered
// yields its existing kind; the parent requested on later calls is ignored.
func (r *Registry) DefineUnder(parent *kinds.Kind, names ...string) ([]*kinds.Kind, error) {
	if len(names) == 0 {
		return []*kinds.Kind{}, nil
	}
	if parent == nil {
		parent = kinds.Root
	}
	for _, name := range names {
		if name == "" {
			return nil, errors.New(errors.ErrInvalidInput, "kind name cannot be empty")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !parent.IsRoot() && !parent.IsHost() && !r.isKnownLocked(parent) {
		return nil, errors.Newf(errors.ErrInvalidKind, "parent kind '%s' is not known to this registry", parent.Name()).
			WithDetail("parent", parent.Name())
	}

	defined := make([]*kinds.Kind, 0, len(names))
	for _, name := range names {
		if existing, ok := r.byName[name]; ok {
			if existing.Parent() != parent {
				r.log().Debug().
					Str("kind", name).
					Str("parent", existing.Parent().Name()).
					Str("requested", parent.Name()).
					Msg("Kind already defined, keeping first parent")
			}
			defined = append(defined, existing)
			continue
		}

		k := kinds.NewKind(name, parent)
		r.byName[name] = k
		r.known[k] = struct{}{}
		r.log().Trace().
			Str("kind", name).
			Str("parent", parent.Name()).
			Uint64("id", k.ID()).
			Msg("Kind defined")
		defined = append(defined, k)
	}

	return defined, nil
}

// IsKnown reports whether k was produced by this registry
func (r *Registry) IsKnown(k *kinds.Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.isKnownLocked(k)
}

func (r *Registry) isKnownLocked(k *kinds.Kind) bool {
	_, ok := r.known[k]
	return ok
}

// Lookup resolves a name to a kind. Registry entries take priority over host
// kinds of the same name.
func (r *Registry) Lookup(name string) (*kinds.Kind, bool) {
	r.mu.RLock()
	k, ok := r.byName[name]
	r.mu.RUnlock()

	if ok {
		return k, true
	}
	return kinds.Host(name)
}

// Get retrieves a registry-defined kind by name. Host kinds are not returned.
func (r *Registry) Get(name string) (*kinds.Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.byName[name]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "kind '%s' not found in registry", name)
	}
	return k, nil
}

// Has checks if a name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}

// Resolve turns a catch target into a kind. Targets are either a name or a
// *kinds.Kind; a kind must come from this registry or be a host kind.
func (r *Registry) Resolve(target interface{}) (*kinds.Kind, error) {
	switch t := target.(type) {
	case string:
		if k, ok := r.Lookup(t); ok {
			return k, nil
		}
	case *kinds.Kind:
		if t != nil && (t.IsHost() || r.IsKnown(t)) {
			return t, nil
		}
	}
	return nil, errors.InvalidKind(target)
}

// Errors returns a copy of the name to kind mapping
func (r *Registry) Errors() map[string]*kinds.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*kinds.Kind, len(r.byName))
	for name, k := range r.byName {
		out[name] = k
	}
	return out
}

// Names returns all registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Kinds returns all registered kinds sorted by name
func (r *Registry) Kinds() []*kinds.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*kinds.Kind, 0, len(r.byName))
	for _, k := range r.byName {
		out = append(out, k)
	}
	sortByName(out)
	return out
}

// Children returns the registered kinds whose parent is parent, sorted by name
func (r *Registry) Children(parent *kinds.Kind) []*kinds.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*kinds.Kind
	for _, k := range r.byName {
		if k.Parent() == parent {
			out = append(out, k)
		}
	}
	sortByName(out)
	return out
}

// Count returns the number of registered kinds
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName)
}

func sortByName(ks []*kinds.Kind) {
	sort.Slice(ks, func(i, j int) bool {
		return ks[i].Name() < ks[j].Name()
	})
}

// MustDefine defines names and panics if definition fails
// This is useful for package-level vars where a bad name is a programming error
func MustDefine(reg *Registry, names ...string) []*kinds.Kind {
	return MustDefineUnder(reg, nil, names...)
}

// MustDefineUnder is DefineUnder that panics on error
func MustDefineUnder(reg *Registry, parent *kinds.Kind, names ...string) []*kinds.Kind {
	defined, err := reg.DefineUnder(parent, names...)
	if err != nil {
		panic(err)
	}
	return defined
}
