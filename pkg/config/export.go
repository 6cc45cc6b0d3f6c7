package config

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/attempt/pkg/errors"
	"github.com/arthur-debert/attempt/pkg/kinds"
	"github.com/arthur-debert/attempt/pkg/registry"
)

// Format is a taxonomy file format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "toml", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q", s).
		WithDetail("format", s)
}

// FormatForPath picks the format from a file extension
func FormatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// FromRegistry describes the kinds of reg as a taxonomy. Parents are listed
// before their children and siblings are sorted by name, so applying the
// result to an empty registry rebuilds the same forest.
func FromRegistry(reg *registry.Registry) Taxonomy {
	all := reg.Kinds()
	done := make(map[*kinds.Kind]bool, len(all))

	var tax Taxonomy
	var visit func(k *kinds.Kind)
	visit = func(k *kinds.Kind) {
		if done[k] {
			return
		}
		done[k] = true
		parent := k.Parent()
		if reg.IsKnown(parent) {
			visit(parent)
		}
		def := KindDef{Name: k.Name()}
		if parent != nil && !parent.IsRoot() {
			def.Parent = parent.Name()
		}
		tax.Kinds = append(tax.Kinds, def)
	}
	for _, k := range all {
		visit(k)
	}
	return tax
}

// Marshal encodes tax in the given format
func Marshal(tax Taxonomy, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(tax)
	case FormatYAML:
		data, err = yaml.Marshal(tax)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExport, "failed to encode taxonomy as %s", format)
	}
	return data, nil
}

// Export writes the kinds of reg to w
func Export(w io.Writer, reg *registry.Registry, format Format) error {
	data, err := Marshal(FromRegistry(reg), format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrExport, "failed to write taxonomy")
	}
	return nil
}
