package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/attempt/pkg/errors"
	"github.com/arthur-debert/attempt/pkg/logging"
)

// EnvPrefix is the prefix of environment variables that override settings
const EnvPrefix = "ATTEMPT_"

//go:embed embedded/defaults.toml
var defaultTaxonomy []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load reads and merges the taxonomy files in order.
func Load(paths ...string) (Taxonomy, error) {
	return LoadWithOverrides(nil, paths...)
}

// LoadWithOverrides is Load with explicit setting overrides (for example
// from command-line flags) applied after the environment.
func LoadWithOverrides(overrides map[string]interface{}, paths ...string) (Taxonomy, error) {
	logger := logging.Library("config")

	var tax Taxonomy
	for _, path := range paths {
		t, err := LoadFile(path)
		if err != nil {
			return Taxonomy{}, err
		}
		logger.Debug().Str("path", path).Int("kinds", len(t.Kinds)).Msg("Loaded taxonomy file")
		tax.Merge(t)
	}

	// Settings are scalar, so they are layered once over the merged files.
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultTaxonomy}, toml.Parser()); err != nil {
		return Taxonomy{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	if len(paths) > 0 {
		if err := k.Load(confmap.Provider(map[string]interface{}{"strict": tax.Strict}, "."), nil); err != nil {
			return Taxonomy{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load file settings")
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return Taxonomy{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Taxonomy{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}
	tax.Strict = k.Bool("strict")
	return tax, nil
}

// LoadFile reads a single taxonomy file. The format follows the extension.
func LoadFile(path string) (Taxonomy, error) {
	parser, err := parserFor(path)
	if err != nil {
		return Taxonomy{}, err
	}
	if _, err := os.Stat(path); err != nil {
		return Taxonomy{}, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read taxonomy %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return Taxonomy{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse taxonomy %s", path).
			WithDetail("path", path)
	}

	var tax Taxonomy
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &tax,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToKindDefHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &tax, unmarshalConf); err != nil {
		return Taxonomy{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode taxonomy %s", path).
			WithDetail("path", path)
	}
	if err := tax.Validate(); err != nil {
		return Taxonomy{}, errors.Wrapf(err, errors.ErrConfigValid, "invalid taxonomy %s", path).
			WithDetail("path", path)
	}
	return tax, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad, "unsupported taxonomy format %q", filepath.Ext(path)).
		WithDetail("path", path)
}

var kindDefType = reflect.TypeOf(KindDef{})

// stringToKindDefHookFunc lets a kind list entry be a bare name,
// as in the YAML form `kinds: [IOError, {name: ReadError, parent: IOError}]`.
func stringToKindDefHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.String && t == kindDefType {
			return KindDef{Name: data.(string)}, nil
		}
		return data, nil
	}
}
