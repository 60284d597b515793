package layout

import "github.com/MrToKa/traylay/pkg/tray"

// Tracer receives structured events while a layout is computed. The engine
// has no logging of its own; callers that want visibility inject a Tracer
// through [Options]. Implementations must be cheap: the engine calls them
// inline.
type Tracer interface {
	// CategoryStart fires when a category begins packing. fromLeft tells the
	// packing direction.
	CategoryStart(cat tray.Category, fromLeft bool, cables int)

	// TrefoilSolved fires for every successfully placed trefoil cluster.
	// width is the cluster extent in px.
	TrefoilSolved(cat tray.Category, width float64)

	// TrefoilFallback fires when the geometry solver fails and a triple falls
	// back to grid packing.
	TrefoilFallback(cat tray.Category)

	// ChunkPacked fires after a chunk has been placed.
	ChunkPacked(cat tray.Category, bucket tray.Bucket, rows, cols int, hexagonal bool)

	// LayoutWarning fires for user-visible policy warnings, such as too many
	// categories on one tray.
	LayoutWarning(msg string)
}

// NopTracer discards all events. It is the default when no Tracer is set.
type NopTracer struct{}

func (NopTracer) CategoryStart(tray.Category, bool, int)                  {}
func (NopTracer) TrefoilSolved(tray.Category, float64)                    {}
func (NopTracer) TrefoilFallback(tray.Category)                           {}
func (NopTracer) ChunkPacked(tray.Category, tray.Bucket, int, int, bool)  {}
func (NopTracer) LayoutWarning(string)                                    {}
