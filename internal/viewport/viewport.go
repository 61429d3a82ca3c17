// Package viewport tracks the zoom state of a document view and interprets
// pinch-to-zoom gestures. It is independent of annotation data; it only
// supplies the scale factor the coordinate mapper and renderer consume.
// Panning is delegated to native scrolling and never handled here.
package viewport

// Zoom bounds. A document can shrink to 40% or grow to 8x of its native
// pixel size.
const (
	MinZoom = 0.4
	MaxZoom = 8.0
)

// Controller holds the zoom scale for one open document. Not persisted;
// a fresh controller is built each time a document opens.
type Controller struct {
	scale float64

	// Pinch gesture reference, valid between GestureStart and GestureEnd.
	startDist  float64
	startScale float64
}

// New creates a controller at the given initial scale, clamped to bounds.
func New(initialScale float64) *Controller {
	return &Controller{scale: clamp(initialScale)}
}

// FitWidth returns the scale at which the document's native width fills
// the viewport width. Used as the initial zoom on document load.
func FitWidth(viewportWidth, docWidth float64) float64 {
	if docWidth <= 0 {
		return 1
	}
	return clamp(viewportWidth / docWidth)
}

// Scale returns the current zoom scale.
func (c *Controller) Scale() float64 {
	return c.scale
}

// SetScale sets the zoom directly (toolbar +/- buttons), clamped.
func (c *Controller) SetScale(s float64) {
	c.scale = clamp(s)
}

// GestureStart records the initial inter-finger distance of a two-finger
// gesture along with the scale it started from.
func (c *Controller) GestureStart(dist float64) {
	if dist <= 0 {
		return
	}
	c.startDist = dist
	c.startScale = c.scale
}

// GestureMove rescales proportionally to how far the fingers spread or
// pinched since GestureStart. No-op when no gesture is active.
func (c *Controller) GestureMove(dist float64) {
	if c.startDist <= 0 || dist <= 0 {
		return
	}
	c.scale = clamp(c.startScale * (dist / c.startDist))
}

// GestureEnd clears the gesture reference.
func (c *Controller) GestureEnd() {
	c.startDist = 0
}

// Active reports whether a pinch gesture is in progress.
func (c *Controller) Active() bool {
	return c.startDist > 0
}

func clamp(s float64) float64 {
	if s < MinZoom {
		return MinZoom
	}
	if s > MaxZoom {
		return MaxZoom
	}
	return s
}
