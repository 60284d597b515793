// Package pipeline provides the load → layout → render pipeline.
//
// The same pipeline backs the CLI, the preview server, and tests. Each
// stage can be run independently or as part of a complete run.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a project file (trays and cables)
//  2. Layout: Compute a placement plan per tray
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Layout computation is deterministic, so plans and artifacts are cached
// under keys derived from the project content hash and the options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ProjectPath: "plant.json",
//	    Tray:        "T-100",
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["T-100"]["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/MrToKa/traylay/pkg/cache"
	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/layout"
	"github.com/MrToKa/traylay/pkg/project"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	ProjectPath string `json:"project_path,omitempty"`
	ConfigPath  string `json:"config_path,omitempty"`

	// Layout options. Tray selects a single tray; empty means every tray
	// in the project. Scale and Spacing override the config file.
	Tray    string  `json:"tray,omitempty"`
	Scale   float64 `json:"scale,omitempty"`
	Spacing float64 `json:"spacing,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses cached plans and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger   `json:"-"`
	Trace  layout.Tracer `json:"-"`

	// Resolved during Execute.
	layoutOpts layout.Options
	configHash string

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ProjectPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "project path is required")
	}
	o.SetRenderDefaults()
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns cache key options for plan computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Scale:      o.Scale,
		Spacing:    o.Spacing,
		ConfigHash: o.configHash,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Scale:  o.Scale,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Project is the loaded project.
	Project *project.Project

	// ProjectHash is the content hash of the project file.
	ProjectHash string

	// Plans contains the computed plan per tray name.
	Plans map[string]*layout.Plan

	// Artifacts contains rendered outputs keyed by tray name and format.
	Artifacts map[string]map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TrayCount  int
	CableCount int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo counts cache hits across trays and formats.
type CacheInfo struct {
	LayoutHits int // plans served from cache
	RenderHits int // artifacts served from cache
}
