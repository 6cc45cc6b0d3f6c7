package config

import (
	"strings"

	"github.com/arthur-debert/attempt/pkg/errors"
	"github.com/arthur-debert/attempt/pkg/kinds"
	"github.com/arthur-debert/attempt/pkg/logging"
	"github.com/arthur-debert/attempt/pkg/registry"
)

// Conflict describes a kind that is already registered under a different
// parent than the one a taxonomy asks for.
type Conflict struct {
	Name      string
	Existing  string
	Requested string
}

// Apply defines every kind of tax in reg, parents before children, and
// returns the kinds in definition order. Nothing is defined when the
// taxonomy has a cycle, an unknown parent, or (in strict mode) a conflict.
func Apply(reg *registry.Registry, tax Taxonomy) ([]*kinds.Kind, error) {
	logger := logging.Library("config")

	if err := tax.Validate(); err != nil {
		return nil, err
	}
	ordered, err := order(reg, tax.Kinds)
	if err != nil {
		return nil, err
	}

	conflicts := Conflicts(reg, tax)
	if len(conflicts) > 0 {
		if tax.Strict {
			names := make([]string, 0, len(conflicts))
			for _, c := range conflicts {
				names = append(names, c.Name)
			}
			return nil, errors.Newf(errors.ErrKindConflict,
				"kinds already defined with a different parent: %s", strings.Join(names, ", ")).
				WithDetail("kinds", names)
		}
		for _, c := range conflicts {
			logger.Warn().
				Str("kind", c.Name).
				Str("existing_parent", c.Existing).
				Str("requested_parent", c.Requested).
				Msg("Kind already defined with a different parent, keeping the first definition")
		}
	}

	out := make([]*kinds.Kind, 0, len(ordered))
	for _, def := range ordered {
		var parent *kinds.Kind
		if p := parentName(def.Parent); p != "" {
			parent, _ = reg.Lookup(p)
		}
		defined, err := reg.DefineUnder(parent, def.Name)
		if err != nil {
			return out, err
		}
		out = append(out, defined...)
	}
	logger.Debug().Int("kinds", len(out)).Msg("Applied taxonomy")
	return out, nil
}

// Conflicts reports the kinds of tax that reg already holds under another
// parent.
func Conflicts(reg *registry.Registry, tax Taxonomy) []Conflict {
	declared := make(map[string]bool, len(tax.Kinds))
	for _, def := range tax.Kinds {
		declared[def.Name] = true
	}
	existing := reg.Errors()

	var conflicts []Conflict
	seen := make(map[string]bool)
	for _, def := range tax.Kinds {
		k, ok := existing[def.Name]
		if !ok || seen[def.Name] {
			continue
		}
		seen[def.Name] = true

		p := parentName(def.Parent)
		var want *kinds.Kind
		switch {
		case p == "":
			want = kinds.Root
		case existing[p] != nil:
			want = existing[p]
		case declared[p]:
			// would be created fresh, so it cannot be the current parent
			want = nil
		default:
			want, _ = kinds.Host(p)
		}
		if want == nil || k.Parent() != want {
			conflicts = append(conflicts, Conflict{
				Name:      def.Name,
				Existing:  k.Parent().Name(),
				Requested: kindLabel(p),
			})
		}
	}
	return conflicts
}

const (
	unvisited = iota
	visiting
	visited
)

// order dedupes defs and sorts them so every parent declared in the same
// taxonomy comes before its children.
func order(reg *registry.Registry, defs []KindDef) ([]KindDef, error) {
	index := make(map[string]int, len(defs))
	unique := make([]KindDef, 0, len(defs))
	for _, def := range defs {
		if i, ok := index[def.Name]; ok {
			if parentName(unique[i].Parent) != parentName(def.Parent) {
				return nil, errors.Newf(errors.ErrConfigValid,
					"kind %s declared with parents %s and %s",
					def.Name, kindLabel(parentName(unique[i].Parent)), kindLabel(parentName(def.Parent))).
					WithDetail("kind", def.Name)
			}
			continue
		}
		index[def.Name] = len(unique)
		unique = append(unique, def)
	}

	state := make([]int, len(unique))
	sorted := make([]KindDef, 0, len(unique))

	var visit func(i int, path []string) error
	visit = func(i int, path []string) error {
		def := unique[i]
		switch state[i] {
		case visited:
			return nil
		case visiting:
			cycle := append(path, def.Name)
			return errors.Newf(errors.ErrConfigValid, "kind cycle: %s", strings.Join(cycle, " -> ")).
				WithDetail("cycle", cycle)
		}
		state[i] = visiting

		if p := parentName(def.Parent); p != "" {
			if j, ok := index[p]; ok {
				if err := visit(j, append(path, def.Name)); err != nil {
					return err
				}
			} else if _, ok := reg.Lookup(p); !ok {
				return errors.Newf(errors.ErrConfigValid, "kind %s has unknown parent %s", def.Name, p).
					WithDetails(map[string]interface{}{"kind": def.Name, "parent": p})
			}
		}

		state[i] = visited
		sorted = append(sorted, def)
		return nil
	}

	for i := range unique {
		if err := visit(i, nil); err != nil {
			return nil, err
		}
	}
	return sorted, nil
}

func kindLabel(parent string) string {
	if parent == "" {
		return kinds.Root.Name()
	}
	return parent
}
