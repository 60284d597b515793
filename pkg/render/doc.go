// Package render draws computed tray layouts.
//
// # Overview
//
// This package contains the rendering pipeline that turns layout plans
// into visual outputs. It provides:
//
//   - A [Canvas] abstraction decoupling drawing from encoding
//   - SVG output via [SVGCanvas]
//   - Native PNG output via [RasterCanvas]
//   - Generic format conversion (SVG to PDF/PNG)
//   - Route diagrams (in [routegraph] subpackage)
//
// # Drawing
//
// [Draw] traverses a layout plan and issues canvas operations. The plan
// already carries all geometry in canvas px, so canvases stay dumb:
//
//	plan := layout.Compute(t, bundles, opts)
//	svg, err := render.SVG(plan)
//	png, err := render.PNG(plan)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used for PDF
// output and by the route diagram renderer.
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Route Diagrams
//
// The [routegraph] subpackage renders cable routes as directed graph
// diagrams using Graphviz. Locations appear as boxes connected by arrows
// labeled with cable counts.
//
//	dot := routegraph.ToDOT(cables, routegraph.Options{})
//	svg, err := routegraph.RenderSVG(dot)
//
// [routegraph]: github.com/MrToKa/traylay/pkg/render/routegraph
package render
