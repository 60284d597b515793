package pipeline

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/MrToKa/traylay/pkg/cache"
	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/layout"
	"github.com/MrToKa/traylay/pkg/observability"
	"github.com/MrToKa/traylay/pkg/project"
)

// Load reads the project file and returns it together with its content
// hash, which keys all derived cache entries.
func Load(ctx context.Context, opts Options) (*project.Project, string, error) {
	observability.Pipeline().OnLoadStart(ctx, opts.ProjectPath)
	start := time.Now()

	data, err := os.ReadFile(opts.ProjectPath)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Wrap(errors.ErrCodeFileNotFound, err, "project file %s", opts.ProjectPath)
		} else {
			err = errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", opts.ProjectPath)
		}
		observability.Pipeline().OnLoadComplete(ctx, opts.ProjectPath, 0, 0, time.Since(start), err)
		return nil, "", err
	}

	p, err := project.Read(bytes.NewReader(data))
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.ProjectPath, 0, 0, time.Since(start), err)
		return nil, "", err
	}

	observability.Pipeline().OnLoadComplete(ctx, opts.ProjectPath,
		len(p.Trays), p.CableCount(), time.Since(start), nil)
	return p, cache.Hash(data), nil
}

// resolveLayoutOptions builds the layout options for a run: the config
// file (when given) provides per-category settings, and the run options
// override scale and spacing. The returned hash identifies the config
// content for cache keys.
func resolveLayoutOptions(opts Options) (layout.Options, string, error) {
	var lo layout.Options
	var hash string

	if opts.ConfigPath != "" {
		data, err := os.ReadFile(opts.ConfigPath)
		if err != nil {
			if os.IsNotExist(err) {
				return lo, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", opts.ConfigPath)
			}
			return lo, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", opts.ConfigPath)
		}
		lo, err = project.ParseConfig(data)
		if err != nil {
			return lo, "", err
		}
		hash = cache.Hash(data)
	}

	if opts.Scale != 0 {
		lo.Scale = opts.Scale
	}
	if opts.Spacing != 0 {
		lo.Spacing = opts.Spacing
	}
	lo.Trace = opts.Trace
	return lo, hash, nil
}
