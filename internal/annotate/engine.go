package annotate

import "math"

// DefaultEraseRadius is the whole-stroke erase threshold in document-space
// units. It does not grow or shrink with zoom.
const DefaultEraseRadius = 15.0

// phase is the engine's pointer-session state.
type phase int

const (
	phaseIdle phase = iota
	phaseDrawing
	phaseErasing
)

// Engine owns the annotation set for a single document page and runs the
// stroke state machine: Idle -> Drawing -> Idle for pen/highlighter,
// Idle -> Erasing -> Idle for the eraser. Scroll and select never leave
// Idle; their pointer events pass through to panning.
//
// All geometry is document-space. The engine never mutates committed
// annotations in place: erasing produces a new filtered set.
type Engine struct {
	tool        Tool
	style       Style
	annotations []Annotation

	phase  phase
	buffer []Point

	eraseRadius float64
	changed     bool
}

// NewEngine creates an engine over an existing annotation set (may be nil).
func NewEngine(annotations []Annotation) *Engine {
	return &Engine{
		tool:        ToolScroll,
		style:       Style{Color: "#4f46e5", Width: 3, Opacity: 1},
		annotations: annotations,
		eraseRadius: DefaultEraseRadius,
	}
}

// Annotations returns the committed annotation set in draw order.
func (e *Engine) Annotations() []Annotation {
	return e.annotations
}

// InProgress returns the live stroke buffer, or nil when not drawing.
// The eraser never buffers, so it always reports nil.
func (e *Engine) InProgress() []Point {
	if e.phase != phaseDrawing {
		return nil
	}
	return e.buffer
}

// Tool returns the active tool.
func (e *Engine) Tool() Tool {
	return e.tool
}

// SetTool switches the active tool. A switch while a stroke is in flight
// finalizes it the same way pointer-up would, so no stale buffer survives.
func (e *Engine) SetTool(t Tool) {
	if e.phase == phaseDrawing {
		e.CommitStroke()
	}
	e.phase = phaseIdle
	e.tool = t
}

// SetStyle updates the color/width/opacity applied to future strokes.
func (e *Engine) SetStyle(s Style) {
	e.style = s
}

// SetEraseRadius overrides the erase proximity threshold.
func (e *Engine) SetEraseRadius(r float64) {
	if r > 0 {
		e.eraseRadius = r
	}
}

// BeginStroke starts a pointer session at p. For drawing tools it seeds
// the stroke buffer; for the eraser it erases immediately. Scroll and
// select tools make this a no-op.
func (e *Engine) BeginStroke(p Point) {
	if e.phase != phaseIdle {
		return
	}
	switch {
	case e.tool.Draws():
		e.phase = phaseDrawing
		e.buffer = e.buffer[:0]
		e.buffer = append(e.buffer, p)
	case e.tool.Erases():
		e.phase = phaseErasing
		e.EraseAt(p, e.eraseRadius)
	}
}

// ExtendStroke feeds a pointer-move at p into the active session. While
// drawing it appends to the buffer; while erasing it erases at p. Outside
// a session it is a no-op.
func (e *Engine) ExtendStroke(p Point) {
	switch e.phase {
	case phaseDrawing:
		e.buffer = append(e.buffer, p)
	case phaseErasing:
		e.EraseAt(p, e.eraseRadius)
	}
}

// CommitStroke ends the pointer session. A buffer with at least two points
// becomes a new annotation appended after all existing ones; anything
// shorter (a tap) is discarded. Returns the committed annotation, or nil.
func (e *Engine) CommitStroke() *Annotation {
	defer func() {
		e.phase = phaseIdle
		e.buffer = e.buffer[:0]
	}()

	if e.phase != phaseDrawing || len(e.buffer) < 2 {
		return nil
	}

	ann := newAnnotation(e.tool.kind(), e.buffer, e.styleFor(e.tool))
	e.annotations = append(e.annotations, ann)
	e.changed = true
	return &e.annotations[len(e.annotations)-1]
}

// EraseAt removes every annotation with at least one point strictly within
// radius of p. Removal is whole-stroke; partial erase is not supported.
// Returns true when the set changed, so callers can skip persistence when
// nothing was hit.
func (e *Engine) EraseAt(p Point, radius float64) bool {
	kept := e.annotations[:0:0]
	for _, ann := range e.annotations {
		if !strokeNear(ann, p, radius) {
			kept = append(kept, ann)
		}
	}
	if len(kept) == len(e.annotations) {
		return false
	}
	e.annotations = kept
	e.changed = true
	return true
}

// ConsumeChanged reports whether the set was modified since the last call
// and resets the flag. The caller uses it to debounce persistence.
func (e *Engine) ConsumeChanged() bool {
	c := e.changed
	e.changed = false
	return c
}

// styleFor derives the effective style for a commit. Pen strokes are
// always fully opaque; highlighter strokes keep the configured opacity.
func (e *Engine) styleFor(t Tool) Style {
	s := e.style
	if t == ToolPen {
		s.Opacity = 1
	}
	return s
}

// strokeNear reports whether any point of ann lies strictly within radius
// of p (straight-line document-space distance).
func strokeNear(ann Annotation, p Point, radius float64) bool {
	for _, pt := range ann.Points {
		dx := pt.X - p.X
		dy := pt.Y - p.Y
		if math.Hypot(dx, dy) < radius {
			return true
		}
	}
	return false
}
