package registry

import "github.com/arthur-debert/attempt/pkg/kinds"

// defaultRegistry is created once per process and never reset.
var defaultRegistry = New()

// Default returns the process-wide registry used when a controller is not
// given one explicitly.
func Default() *Registry {
	return defaultRegistry
}

// Define defines names on the default registry.
func Define(names ...string) ([]*kinds.Kind, error) {
	return defaultRegistry.Define(names...)
}

// DefineUnder defines names under parent on the default registry.
func DefineUnder(parent *kinds.Kind, names ...string) ([]*kinds.Kind, error) {
	return defaultRegistry.DefineUnder(parent, names...)
}

// Lookup resolves a name on the default registry.
func Lookup(name string) (*kinds.Kind, bool) {
	return defaultRegistry.Lookup(name)
}
