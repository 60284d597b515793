package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MrToKa/traylay/pkg/pipeline"
)

// layoutCommand creates the layout command for computing tray drawings.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [project.json]",
		Short: "Compute tray layouts and write drawings",
		Long: `Compute cable tray layouts from a project file.

The layout command reads a project file (trays and cables), computes the
cross-section placement for each tray, and writes one drawing per tray and
format into the output directory. Use --tray to restrict the run to a
single tray.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ProjectPath = args[0]
			opts.Formats = parseFormats(formatsStr)
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ".", "output directory for drawings")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.Tray, "tray", "t", "", "lay out a single tray")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "layout configuration file (TOML)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "canvas scale in px per mm (default 2)")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "cable spacing in mm (default 1)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout executes the pipeline and writes one file per tray and format.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing layouts...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", output, err)
	}

	cached := result.CacheInfo.LayoutHits == len(result.Plans)

	printSuccess("Layout complete")
	for _, name := range slices.Sorted(maps.Keys(result.Plans)) {
		plan := result.Plans[name]
		for format, data := range result.Artifacts[name] {
			path := filepath.Join(output, fmt.Sprintf("%s.%s", name, format))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printFile(path)
		}
		if plan.Warning != "" {
			printWarning("%s: %s", name, plan.Warning)
		}
		if plan.Summary != nil && plan.Summary.HasBottomRow {
			printDetail("%s: %s", name, formatFreeSpace(plan.FreeSpacePercent()))
		}
	}
	printStats(result.Stats.TrayCount, result.Stats.CableCount, cached)

	return nil
}
