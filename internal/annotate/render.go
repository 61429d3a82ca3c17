package annotate

// LineCap and LineJoin values for stroke rendering. Every freehand stroke
// renders with round caps and joins, matching the drawing feel of the
// capture side.
const (
	CapRound  = "round"
	JoinRound = "round"
)

// StrokeOp is one draw call for an external renderer: a connected polyline
// with pre-scaled geometry. Ops are emitted in document order so newer
// strokes land on top of older ones.
type StrokeOp struct {
	Points  []Point
	Color   string
	Width   float64
	Opacity float64
	Cap     string
	Join    string
}

// RenderOps flattens the annotation set (plus an optional in-progress
// buffer) into draw calls at the given zoom scale. Strokes with fewer than
// two points are skipped; they cannot form a line.
func RenderOps(annotations []Annotation, scale float64, inProgress []Point, style Style) []StrokeOp {
	ops := make([]StrokeOp, 0, len(annotations)+1)
	for _, ann := range annotations {
		if len(ann.Points) < 2 {
			continue
		}
		ops = append(ops, StrokeOp{
			Points:  scalePoints(ann.Points, scale),
			Color:   ann.Color,
			Width:   ann.Width * scale,
			Opacity: ann.Opacity,
			Cap:     CapRound,
			Join:    JoinRound,
		})
	}

	// The live buffer renders last so the user sees the stroke forming
	// above everything already committed.
	if len(inProgress) >= 2 {
		ops = append(ops, StrokeOp{
			Points:  scalePoints(inProgress, scale),
			Color:   style.Color,
			Width:   style.Width * scale,
			Opacity: style.Opacity,
			Cap:     CapRound,
			Join:    JoinRound,
		})
	}

	return ops
}

func scalePoints(pts []Point, scale float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X * scale, Y: p.Y * scale}
	}
	return out
}
