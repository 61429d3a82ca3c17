package annotate

// ToDocumentSpace converts a screen position into document space given the
// viewport origin (the document's top-left corner on screen) and the
// current zoom scale. Pure function; the inverse of render-time scaling.
func ToDocumentSpace(screen, origin Point, scale float64) Point {
	if scale == 0 {
		scale = 1
	}
	return Point{
		X: (screen.X - origin.X) / scale,
		Y: (screen.Y - origin.Y) / scale,
	}
}

// PointerEvent is a toolkit-agnostic pointer/touch sample. Touches holds
// every active contact in screen coordinates; a mouse event has exactly
// one entry.
type PointerEvent struct {
	Touches []Point
}

// Dispatcher routes pointer events between drawing and zooming. Only the
// first touch ever draws; the moment a second finger lands, the gesture is
// a zoom and drawing stays suppressed until every finger lifts.
type Dispatcher struct {
	suppressed bool
}

// DrawPoint returns the screen point to feed the engine, or ok=false when
// drawing is suppressed for this gesture (multi-touch, or no contact).
func (d *Dispatcher) DrawPoint(ev PointerEvent) (Point, bool) {
	if len(ev.Touches) == 0 {
		return Point{}, false
	}
	if len(ev.Touches) > 1 {
		d.suppressed = true
	}
	if d.suppressed {
		return Point{}, false
	}
	return ev.Touches[0], true
}

// GestureEnded must be called when all contacts lift; it re-arms drawing
// for the next gesture.
func (d *Dispatcher) GestureEnded() {
	d.suppressed = false
}
