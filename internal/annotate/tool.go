package annotate

// Tool selects how pointer input is interpreted by the engine.
type Tool string

const (
	ToolPen         Tool = "pen"
	ToolHighlighter Tool = "highlighter"
	ToolEraser      Tool = "eraser"
	ToolScroll      Tool = "scroll"
	ToolSelect      Tool = "select"
)

// Draws reports whether the tool produces strokes.
func (t Tool) Draws() bool {
	return t == ToolPen || t == ToolHighlighter
}

// Erases reports whether the tool removes strokes.
func (t Tool) Erases() bool {
	return t == ToolEraser
}

// kind returns the annotation kind a drawing tool produces.
func (t Tool) kind() Kind {
	if t == ToolHighlighter {
		return KindHighlight
	}
	return KindDraw
}

// Style holds the stroke attributes applied at commit time. Width is in
// document-space units so strokes keep their size relative to the page
// at every zoom level.
type Style struct {
	Color   string
	Width   float64
	Opacity float64
}
