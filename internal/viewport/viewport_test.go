package viewport

import "testing"

func TestGestureMove_ScalesProportionally(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		startDist float64
		moveDist  float64
		want      float64
	}{
		{"spread doubles scale", 1, 100, 200, 2},
		{"pinch halves scale", 2, 100, 50, 1},
		{"clamps at max", 1, 100, 1000, MaxZoom},
		{"clamps at min", 1, 100, 10, MinZoom},
		{"no movement keeps scale", 1.5, 100, 100, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.start)
			c.GestureStart(tt.startDist)
			c.GestureMove(tt.moveDist)
			if got := c.Scale(); got != tt.want {
				t.Errorf("scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGestureMove_WithoutStartIsNoop(t *testing.T) {
	c := New(1)
	c.GestureMove(500)
	if c.Scale() != 1 {
		t.Errorf("scale = %v, want 1 (move without start must not zoom)", c.Scale())
	}
}

func TestGestureEnd_ClearsReference(t *testing.T) {
	c := New(1)
	c.GestureStart(100)
	if !c.Active() {
		t.Fatal("gesture should be active after start")
	}
	c.GestureEnd()
	if c.Active() {
		t.Error("gesture still active after end")
	}
	c.GestureMove(300)
	if c.Scale() != 1 {
		t.Errorf("scale = %v, want 1 after gesture ended", c.Scale())
	}
}

func TestGestureMove_ReferencesStartScaleNotCurrent(t *testing.T) {
	c := New(1)
	c.GestureStart(100)
	c.GestureMove(150)
	c.GestureMove(200)
	// Both moves resolve against the scale at gesture start, so the second
	// move yields 2x, not 3x.
	if c.Scale() != 2 {
		t.Errorf("scale = %v, want 2", c.Scale())
	}
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		name      string
		viewportW float64
		docW      float64
		want      float64
	}{
		{"narrow viewport shrinks", 400, 800, 0.5},
		{"wide viewport grows", 1600, 800, 2},
		{"clamped to min", 100, 1000, MinZoom},
		{"zero doc width defaults to 1", 800, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitWidth(tt.viewportW, tt.docW); got != tt.want {
				t.Errorf("FitWidth(%v, %v) = %v, want %v", tt.viewportW, tt.docW, got, tt.want)
			}
		})
	}
}
