// Package layout computes non-overlapping 2D arrangements of cable
// cross-sections inside a tray cross-section.
//
// # Overview
//
// The engine is a deterministic heuristic, not an optimizer. Given a tray,
// its assigned cables, and a bundle map (category → diameter bucket →
// cables), [Compute] produces a [Plan]: every cable circle's canvas position,
// an optional separator line or warning overlay, and an occupancy [Summary]
// used by callers for free-space displays.
//
// Computation is pure. The engine never draws; package render consumes the
// Plan and issues drawing calls. Each call builds fresh internal state, so a
// Plan never depends on earlier invocations.
//
// # Pipeline
//
// Per category the engine runs:
//
//  1. Trefoil grouping: co-routed cables are clustered into triples.
//  2. Trefoil geometry: a tangent-circle construction places each triple as a
//     triangle; on geometric failure the triple falls back to grid packing.
//  3. Capacity planning: usable height and per-category limits yield a
//     rows × columns grid.
//  4. Column packing: cables stack bottom-up per column; the two largest
//     diameter buckets pack hexagonally when the tray is tall enough.
//
// The orchestrator assigns directions: power and medium-voltage pack from the
// left edge rightward, control and variable-frequency-drive from the right
// edge leftward. When medium-voltage cables are present they always own the
// left side and every other category packs from the right; medium-voltage
// grounding cables pack last, right-to-left.
//
// # Coordinates
//
// Plan coordinates are canvas pixels with y growing downward. Millimeters are
// converted by the scale option (px/mm). The tray floor (top of the rung
// strip) is the packing baseline; cables stack upward from it.
package layout
