package attempt

import (
	"context"

	dispatch "github.com/arthur-debert/attempt/pkg/attempt"
	"github.com/arthur-debert/attempt/pkg/config"
	"github.com/arthur-debert/attempt/pkg/errors"
	"github.com/arthur-debert/attempt/pkg/kinds"
	"github.com/arthur-debert/attempt/pkg/logging"
	"github.com/arthur-debert/attempt/pkg/registry"
)

// loaded is a taxonomy applied to a fresh registry
type loaded struct {
	reg     *registry.Registry
	defined []*kinds.Kind
}

// loadOptions controls how taxonomy files are read
type loadOptions struct {
	files    []string
	base     string
	strict   bool
	optional bool
}

// resolveFiles falls back to the default taxonomy when no files are given.
func resolveFiles(opts loadOptions) ([]string, error) {
	if len(opts.files) > 0 {
		return opts.files, nil
	}
	if path, ok := config.FindDefault(); ok {
		return []string{path}, nil
	}
	if opts.optional {
		return nil, nil
	}
	return nil, errors.Newf(errors.ErrNotFound, MsgErrNoTaxonomy, config.DefaultPath())
}

// loadTaxonomy reads the files and applies them to a new registry, on top of
// the base taxonomy when one is given. Missing files are reported as
// NOT_FOUND instead of a raw load error.
func loadTaxonomy(ctx context.Context, opts loadOptions) (loaded, error) {
	files, err := resolveFiles(opts)
	if err != nil {
		return loaded{}, err
	}

	var overrides map[string]interface{}
	if opts.strict {
		overrides = map[string]interface{}{"strict": true}
	}

	done := logging.LogOperationStart(logging.GetLogger("cmd.load"), "load taxonomy")

	ctl := dispatch.New[string, loaded](func(ctx context.Context, paths ...string) (loaded, error) {
		tax, err := config.LoadWithOverrides(overrides, paths...)
		if err != nil {
			return loaded{}, err
		}
		reg := registry.New()
		if opts.base != "" {
			baseTax, err := config.LoadFile(opts.base)
			if err != nil {
				return loaded{}, err
			}
			baseTax.Strict = false
			if _, err := config.Apply(reg, baseTax); err != nil {
				return loaded{}, err
			}
		}
		defined, err := config.Apply(reg, tax)
		if err != nil {
			return loaded{}, err
		}
		return loaded{reg: reg, defined: defined}, nil
	}).Catch(func(ctx context.Context, err error) (loaded, error) {
		return loaded{}, errors.Wrap(err, errors.ErrNotFound, MsgErrNotFound)
	}, kinds.NotExist).Finally(func(ctx context.Context) (loaded, error) {
		done()
		return loaded{}, nil
	})

	return ctl.Run(ctx, files...)
}
