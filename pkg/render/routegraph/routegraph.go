// Package routegraph renders cable routes as node-link diagrams.
//
// Locations become nodes and each distinct origin/destination pair becomes
// a directed edge labeled with the number of cables following it. Graphviz
// handles the actual graph drawing.
package routegraph

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/MrToKa/traylay/pkg/render"
	"github.com/MrToKa/traylay/pkg/tray"
)

// Options configures route diagram rendering.
type Options struct {
	// Detailed includes the category breakdown in edge labels.
	// When false, only the cable count is shown.
	Detailed bool
}

// edge aggregates all cables sharing one origin/destination pair.
type edge struct {
	from, to string
	count    int
	byCat    map[tray.Category]int
}

// ToDOT converts cable routes to Graphviz DOT format. Cables without both
// route endpoints are skipped. The resulting DOT string can be rendered
// with [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(cables []*tray.Cable, opts Options) string {
	edges := collectEdges(cables)

	nodes := make(map[string]bool)
	for _, e := range edges {
		nodes[e.from] = true
		nodes[e.to] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph routes {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range slices.Sorted(maps.Keys(nodes)) {
		fmt.Fprintf(&buf, "  %q;\n", n)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.from, e.to, fmtLabel(e, opts.Detailed))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func collectEdges(cables []*tray.Cable) []edge {
	byRoute := make(map[string]*edge)
	var order []string
	for _, c := range cables {
		if c == nil {
			continue
		}
		key, ok := c.Route()
		if !ok {
			continue
		}
		e, exists := byRoute[key]
		if !exists {
			e = &edge{from: c.FromLocation, to: c.ToLocation, byCat: make(map[tray.Category]int)}
			byRoute[key] = e
			order = append(order, key)
		}
		e.count++
		e.byCat[c.Category]++
	}

	slices.Sort(order)
	edges := make([]edge, 0, len(order))
	for _, key := range order {
		edges = append(edges, *byRoute[key])
	}
	return edges
}

func fmtLabel(e edge, detailed bool) string {
	label := fmt.Sprintf("%d", e.count)
	if e.count == 1 {
		label += " cable"
	} else {
		label += " cables"
	}
	if !detailed {
		return label
	}

	var parts []string
	for _, cat := range tray.Categories() {
		if n := e.byCat[cat]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", cat, n))
		}
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
