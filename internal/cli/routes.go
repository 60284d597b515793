package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/pipeline"
	"github.com/MrToKa/traylay/pkg/render/routegraph"
)

// routesCommand creates the routes command for rendering the cable route
// graph.
func (c *CLI) routesCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "routes [project.json]",
		Short: "Render the cable route graph",
		Long: `Render a directed graph of cable routes.

Every from/to location pair in the project becomes an edge labeled with the
number of cables on that route. Use --detailed for a per-category breakdown
on the edge labels. The dot format writes Graphviz source; svg, png, and
pdf render it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoutes(cmd.Context(), args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <project>.routes.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), png, pdf, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show per-category counts on edges")

	return cmd
}

func (c *CLI) runRoutes(ctx context.Context, input, output, format string, detailed bool) error {
	prog := newProgress(loggerFromContext(ctx))

	p, _, err := pipeline.Load(ctx, pipeline.Options{ProjectPath: input})
	if err != nil {
		return err
	}

	dot := routegraph.ToDOT(p.AllCables(), routegraph.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case pipeline.FormatSVG:
		data, err = routegraph.RenderSVG(dot)
	case pipeline.FormatPNG:
		data, err = routegraph.RenderPNG(dot, 2.0)
	case pipeline.FormatPDF:
		data, err = routegraph.RenderPDF(dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported route graph format: %q", format)
	}
	if err != nil {
		return fmt.Errorf("render routes: %w", err)
	}

	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		output = fmt.Sprintf("%s.routes.%s", base, format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	prog.done(fmt.Sprintf("Rendered %d routes", p.CableCount()))
	printSuccess("Route graph complete")
	printFile(output)
	printStats(len(p.Trays), p.CableCount(), false)

	return nil
}
