package config

import (
	"strings"

	"github.com/arthur-debert/attempt/pkg/errors"
	"github.com/arthur-debert/attempt/pkg/kinds"
)

// KindDef declares one failure kind. An empty Parent means the root kind.
type KindDef struct {
	Name   string `koanf:"name" toml:"name" yaml:"name"`
	Parent string `koanf:"parent" toml:"parent,omitempty" yaml:"parent,omitempty"`
}

// Taxonomy is a set of kind definitions read from one or more files
type Taxonomy struct {
	Strict bool      `koanf:"strict" toml:"strict" yaml:"strict"`
	Kinds  []KindDef `koanf:"kinds" toml:"kinds" yaml:"kinds"`
}

// Names returns the declared kind names in file order
func (t Taxonomy) Names() []string {
	names := make([]string, 0, len(t.Kinds))
	for _, def := range t.Kinds {
		names = append(names, def.Name)
	}
	return names
}

// Merge appends other's kinds. Strict mode is sticky.
func (t *Taxonomy) Merge(other Taxonomy) {
	t.Strict = t.Strict || other.Strict
	t.Kinds = append(t.Kinds, other.Kinds...)
}

// Validate checks the definitions that can be judged without a registry.
func (t Taxonomy) Validate() error {
	for i, def := range t.Kinds {
		name := strings.TrimSpace(def.Name)
		switch {
		case name == "":
			return errors.Newf(errors.ErrConfigValid, "kind #%d has no name", i+1).
				WithDetail("index", i)
		case name == kinds.Root.Name():
			return errors.Newf(errors.ErrConfigValid, "%s is reserved for the root kind", name).
				WithDetail("kind", name)
		case name != def.Name:
			return errors.Newf(errors.ErrConfigValid, "kind name %q has surrounding whitespace", def.Name).
				WithDetail("kind", def.Name)
		}
	}
	return nil
}

// parentName normalises a declared parent; "" means the root kind.
func parentName(p string) string {
	p = strings.TrimSpace(p)
	if p == kinds.Root.Name() {
		return ""
	}
	return p
}
