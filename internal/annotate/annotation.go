package annotate

import "github.com/google/uuid"

// Kind distinguishes pen strokes from translucent highlighter strokes.
type Kind string

const (
	KindDraw      Kind = "draw"
	KindHighlight Kind = "highlight"
)

// Point is a position in document space. Document space is invariant under
// zoom: scale is applied only when rendering.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Annotation is one continuous freehand gesture over a document page,
// stored as an ordered point list. A committed annotation always has at
// least two points; single-point taps are never committed.
type Annotation struct {
	ID      string  `json:"id"`
	Kind    Kind    `json:"kind"`
	Points  []Point `json:"points"`
	Color   string  `json:"color"`
	Width   float64 `json:"width"`
	Opacity float64 `json:"opacity"`
}

// newAnnotation builds an annotation from a completed stroke buffer.
// The point slice is copied so later buffer reuse cannot alias it.
func newAnnotation(kind Kind, points []Point, style Style) Annotation {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Annotation{
		ID:      uuid.NewString(),
		Kind:    kind,
		Points:  pts,
		Color:   style.Color,
		Width:   style.Width,
		Opacity: style.Opacity,
	}
}
