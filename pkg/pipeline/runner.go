package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/MrToKa/traylay/pkg/cache"
	"github.com/MrToKa/traylay/pkg/layout"
	"github.com/MrToKa/traylay/pkg/observability"
	"github.com/MrToKa/traylay/pkg/project"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	result := &Result{
		Plans:     make(map[string]*layout.Plan),
		Artifacts: make(map[string]map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	p, projectHash, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Project = p
	result.ProjectHash = projectHash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.TrayCount = len(p.Trays)
	result.Stats.CableCount = p.CableCount()

	r.Logger.Info("loaded project",
		"project", p.Name,
		"trays", len(p.Trays),
		"cables", p.CableCount(),
		"duration", result.Stats.LoadTime)

	opts.layoutOpts, opts.configHash, err = resolveLayoutOptions(opts)
	if err != nil {
		return nil, err
	}

	names, err := trayNames(p, opts.Tray)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		// Stage 2: Layout
		layoutStart := time.Now()
		plan, hit, err := r.planWithCache(ctx, p, projectHash, name, opts)
		if err != nil {
			return nil, err
		}
		result.Plans[name] = plan
		result.Stats.LayoutTime += time.Since(layoutStart)
		if hit {
			result.CacheInfo.LayoutHits++
		}

		r.Logger.Info("computed layout",
			"tray", name,
			"circles", len(plan.Circles),
			"cached", hit,
			"duration", time.Since(layoutStart))

		// Stage 3: Render
		renderStart := time.Now()
		artifacts, hits, err := r.renderWithCache(ctx, plan, name, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts[name] = artifacts
		result.Stats.RenderTime += time.Since(renderStart)
		result.CacheInfo.RenderHits += hits

		r.Logger.Info("rendered outputs",
			"tray", name,
			"formats", opts.Formats,
			"duration", time.Since(renderStart))
	}

	return result, nil
}

// planWithCache computes the plan for one tray, consulting the cache
// first unless a refresh was requested.
func (r *Runner) planWithCache(ctx context.Context, p *project.Project, projectHash, trayName string, opts Options) (*layout.Plan, bool, error) {
	key := r.Keyer.LayoutKey(projectHash, trayName, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if plan, err := unmarshalPlan(data); err == nil {
				observability.Cache().OnCacheHit(ctx, key)
				return plan, true, nil
			}
			// Corrupt entry, fall through to recompute.
		}
	}
	observability.Cache().OnCacheMiss(ctx, key)

	observability.Pipeline().OnLayoutStart(ctx, trayName, len(p.Cables(trayName)))
	start := time.Now()
	plan, err := ComputePlan(p, trayName, opts.layoutOpts)
	observability.Pipeline().OnLayoutComplete(ctx, trayName, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := marshalPlan(plan); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, key, len(data))
		}
	}
	return plan, false, nil
}

// renderWithCache produces the requested formats for a plan, serving
// individual artifacts from the cache where possible.
func (r *Runner) renderWithCache(ctx context.Context, plan *layout.Plan, trayName string, opts Options) (map[string][]byte, int, error) {
	planData, err := marshalPlan(plan)
	if err != nil {
		return nil, 0, err
	}
	layoutHash := cache.Hash(planData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	hits := 0

	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, key)
				artifacts[format] = data
				hits++
			} else {
				observability.Cache().OnCacheMiss(ctx, key)
				missing = append(missing, format)
			}
		}
	} else {
		missing = opts.Formats
	}

	if len(missing) == 0 {
		return artifacts, hits, nil
	}

	observability.Pipeline().OnRenderStart(ctx, missing)
	start := time.Now()
	rendered, err := Render(plan, missing)
	observability.Pipeline().OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, 0, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, key, len(data))
		}
	}
	return artifacts, hits, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
