package annotate

import "testing"

func TestRenderOps_DocumentOrderAndScaling(t *testing.T) {
	anns := []Annotation{
		{ID: "old", Points: []Point{{0, 0}, {10, 0}}, Color: "#111", Width: 3, Opacity: 1},
		{ID: "new", Points: []Point{{5, 5}, {15, 5}}, Color: "#222", Width: 2, Opacity: 0.35},
	}

	ops := RenderOps(anns, 2, nil, Style{})
	if len(ops) != 2 {
		t.Fatalf("op count = %d, want 2", len(ops))
	}

	// Document order: the older stroke renders first so newer ink sits on top.
	if ops[0].Color != "#111" || ops[1].Color != "#222" {
		t.Errorf("ops out of document order: %q then %q", ops[0].Color, ops[1].Color)
	}
	if ops[0].Width != 6 {
		t.Errorf("scaled width = %v, want 6", ops[0].Width)
	}
	if ops[0].Points[1] != (Point{20, 0}) {
		t.Errorf("scaled point = %v, want {20 0}", ops[0].Points[1])
	}
	if ops[1].Opacity != 0.35 {
		t.Errorf("opacity = %v, want 0.35", ops[1].Opacity)
	}
	for _, op := range ops {
		if op.Cap != CapRound || op.Join != JoinRound {
			t.Errorf("stroke cap/join = %q/%q, want round/round", op.Cap, op.Join)
		}
	}
}

func TestRenderOps_SkipsDegenerateStrokes(t *testing.T) {
	anns := []Annotation{
		{ID: "point", Points: []Point{{1, 1}}},
		{ID: "line", Points: []Point{{0, 0}, {1, 1}}},
	}
	ops := RenderOps(anns, 1, nil, Style{})
	if len(ops) != 1 {
		t.Fatalf("op count = %d, want 1 (single-point stroke skipped)", len(ops))
	}
}

func TestRenderOps_IncludesLiveBufferLast(t *testing.T) {
	anns := []Annotation{
		{ID: "a", Points: []Point{{0, 0}, {1, 0}}, Width: 1, Opacity: 1},
	}
	live := []Point{{2, 2}, {3, 3}}
	style := Style{Color: "#4f46e5", Width: 3, Opacity: 0.5}

	ops := RenderOps(anns, 1, live, style)
	if len(ops) != 2 {
		t.Fatalf("op count = %d, want 2", len(ops))
	}
	last := ops[len(ops)-1]
	if last.Color != style.Color || last.Width != 3 || last.Opacity != 0.5 {
		t.Errorf("live stroke op = %+v, want style %+v applied", last, style)
	}

	// A one-point live buffer renders nothing extra.
	ops = RenderOps(anns, 1, []Point{{9, 9}}, style)
	if len(ops) != 1 {
		t.Errorf("op count with degenerate live buffer = %d, want 1", len(ops))
	}
}
