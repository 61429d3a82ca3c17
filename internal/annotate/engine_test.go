package annotate

import "testing"

func drawStroke(e *Engine, pts ...Point) *Annotation {
	e.BeginStroke(pts[0])
	for _, p := range pts[1:] {
		e.ExtendStroke(p)
	}
	return e.CommitStroke()
}

func TestCommitStroke_PreservesPointOrder(t *testing.T) {
	e := NewEngine(nil)
	e.SetTool(ToolPen)

	pts := []Point{{0, 0}, {1, 2}, {3, 4}, {5, 6}}
	ann := drawStroke(e, pts...)

	if ann == nil {
		t.Fatal("expected a committed annotation")
	}
	if len(e.Annotations()) != 1 {
		t.Fatalf("annotation count = %d, want 1", len(e.Annotations()))
	}
	if len(ann.Points) != len(pts) {
		t.Fatalf("point count = %d, want %d", len(ann.Points), len(pts))
	}
	for i, p := range pts {
		if ann.Points[i] != p {
			t.Errorf("point %d = %v, want %v", i, ann.Points[i], p)
		}
	}
	if ann.ID == "" {
		t.Error("committed annotation has empty ID")
	}
	if ann.Kind != KindDraw {
		t.Errorf("kind = %q, want %q", ann.Kind, KindDraw)
	}
}

func TestCommitStroke_TapProducesNoAnnotation(t *testing.T) {
	e := NewEngine(nil)
	e.SetTool(ToolPen)

	e.BeginStroke(Point{10, 10})
	if ann := e.CommitStroke(); ann != nil {
		t.Error("single-point tap committed an annotation")
	}
	if len(e.Annotations()) != 0 {
		t.Errorf("annotation count = %d, want 0", len(e.Annotations()))
	}
}

func TestHighlighter_KeepsOpacity(t *testing.T) {
	e := NewEngine(nil)
	e.SetTool(ToolHighlighter)
	e.SetStyle(Style{Color: "#f59e0b", Width: 8, Opacity: 0.35})

	ann := drawStroke(e, Point{0, 0}, Point{5, 0})
	if ann == nil {
		t.Fatal("expected a committed annotation")
	}
	if ann.Kind != KindHighlight {
		t.Errorf("kind = %q, want %q", ann.Kind, KindHighlight)
	}
	if ann.Opacity != 0.35 {
		t.Errorf("opacity = %v, want 0.35", ann.Opacity)
	}
}

func TestScrollTool_IgnoresPointerEvents(t *testing.T) {
	e := NewEngine(nil)
	e.SetTool(ToolScroll)

	drawStroke(e, Point{0, 0}, Point{10, 10}, Point{20, 20})
	if len(e.Annotations()) != 0 {
		t.Errorf("scroll tool committed %d annotations, want 0", len(e.Annotations()))
	}
}

func TestEraseAt_RemovesStrokeWithinRadius(t *testing.T) {
	e := NewEngine(nil)
	e.SetTool(ToolPen)
	drawStroke(e, Point{0, 0}, Point{10, 0})

	tests := []struct {
		name    string
		at      Point
		radius  float64
		removed bool
	}{
		{"hit at endpoint", Point{0, 0}, 5, true},
		{"hit near endpoint", Point{3, 4}, 5.1, true},
		{"exactly at radius is a miss", Point{0, 5}, 5, false},
		{"far away", Point{100, 100}, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh := NewEngine([]Annotation{{ID: "a", Points: []Point{{0, 0}, {10, 0}}}})
			changed := fresh.EraseAt(tt.at, tt.radius)
			if changed != tt.removed {
				t.Errorf("EraseAt(%v, %v) changed = %v, want %v", tt.at, tt.radius, changed, tt.removed)
			}
			want := 1
			if tt.removed {
				want = 0
			}
			if len(fresh.Annotations()) != want {
				t.Errorf("annotation count = %d, want %d", len(fresh.Annotations()), want)
			}
		})
	}
}

func TestEraseAt_OnlyHitStrokesRemoved(t *testing.T) {
	anns := []Annotation{
		{ID: "near", Points: []Point{{0, 0}, {10, 0}}},
		{ID: "far", Points: []Point{{200, 200}, {210, 200}}},
	}
	e := NewEngine(anns)

	if !e.EraseAt(Point{0, 0}, 5) {
		t.Fatal("expected erase to remove the nearby stroke")
	}
	got := e.Annotations()
	if len(got) != 1 || got[0].ID != "far" {
		t.Errorf("surviving annotations = %v, want only %q", got, "far")
	}
}

func TestEraser_ActsContinuouslyWithoutBuffer(t *testing.T) {
	e := NewEngine([]Annotation{
		{ID: "a", Points: []Point{{0, 0}, {1, 0}}},
		{ID: "b", Points: []Point{{50, 50}, {51, 50}}},
	})
	e.SetTool(ToolEraser)

	e.BeginStroke(Point{0, 0})
	if e.InProgress() != nil {
		t.Error("eraser must not accumulate a stroke buffer")
	}
	e.ExtendStroke(Point{50, 50})
	if ann := e.CommitStroke(); ann != nil {
		t.Error("eraser session committed an annotation")
	}
	if len(e.Annotations()) != 0 {
		t.Errorf("annotation count = %d, want 0 after continuous erase", len(e.Annotations()))
	}
}

func TestSetTool_MidStrokeCommitsBuffer(t *testing.T) {
	e := NewEngine(nil)
	e.SetTool(ToolPen)

	e.BeginStroke(Point{0, 0})
	e.ExtendStroke(Point{10, 10})
	e.SetTool(ToolEraser)

	if len(e.Annotations()) != 1 {
		t.Fatalf("annotation count = %d, want 1 (tool switch finalizes stroke)", len(e.Annotations()))
	}
	if e.InProgress() != nil {
		t.Error("stale stroke buffer survived a tool switch")
	}
}

func TestConsumeChanged_DebouncesPersistence(t *testing.T) {
	e := NewEngine(nil)
	e.SetTool(ToolPen)

	if e.ConsumeChanged() {
		t.Error("fresh engine reported a change")
	}
	drawStroke(e, Point{0, 0}, Point{1, 1})
	if !e.ConsumeChanged() {
		t.Error("commit did not mark the set changed")
	}
	if e.ConsumeChanged() {
		t.Error("changed flag not reset after consumption")
	}

	// A miss never dirties the set.
	e.EraseAt(Point{500, 500}, 5)
	if e.ConsumeChanged() {
		t.Error("no-op erase marked the set changed")
	}
}
