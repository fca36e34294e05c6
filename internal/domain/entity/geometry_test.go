package entity

import "testing"

func TestRect_Insets(t *testing.T) {
	tests := []struct {
		name                     string
		rect                     Rect
		viewport                 Size
		left, top, right, bottom int
	}{
		{
			name:     "centered",
			rect:     Rect{X: 100, Y: 150, W: 600, H: 400},
			viewport: Size{W: 1000, H: 800},
			left:     100, top: 150, right: 300, bottom: 250,
		},
		{
			name:     "overflowing is clamped",
			rect:     Rect{X: -10, Y: -5, W: 1100, H: 900},
			viewport: Size{W: 1000, H: 800},
		},
		{
			name:     "full viewport",
			rect:     Rect{W: 1000, H: 800},
			viewport: Size{W: 1000, H: 800},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, top, r, b := tt.rect.Insets(tt.viewport)
			if l != tt.left || top != tt.top || r != tt.right || b != tt.bottom {
				t.Errorf("Insets() = %d,%d,%d,%d, want %d,%d,%d,%d", l, top, r, b, tt.left, tt.top, tt.right, tt.bottom)
			}
		})
	}
}

func TestSize(t *testing.T) {
	s := Size{W: 1920, H: 1080}
	if !s.Valid() {
		t.Error("expected valid size")
	}
	if s.Longest() != 1920 || s.Shortest() != 1080 {
		t.Errorf("Longest/Shortest = %d/%d", s.Longest(), s.Shortest())
	}
	if got := s.String(); got != "1920x1080" {
		t.Errorf("String() = %q", got)
	}
	if (Size{W: 0, H: 10}).Valid() {
		t.Error("zero width must be invalid")
	}
}

func TestGeometry_Scrim(t *testing.T) {
	g := Geometry{Viewport: Size{W: 1280, H: 720}, Modal: Rect{X: 10, Y: 10, W: 100, H: 100}}
	if got := g.Scrim(); got != (Rect{W: 1280, H: 720}) {
		t.Errorf("Scrim() = %+v", got)
	}
	if g.Empty() {
		t.Error("geometry with a modal is not empty")
	}
	if !(Geometry{}).Empty() {
		t.Error("zero geometry must be empty")
	}
}

func TestRect_ScaledAround(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 200, H: 100}

	tests := []struct {
		name  string
		scale float64
		want  Rect
	}{
		{name: "identity", scale: 1, want: r},
		{name: "zero is identity", scale: 0, want: r},
		{name: "negative is identity", scale: -2, want: r},
		{name: "half", scale: 0.5, want: Rect{X: 150, Y: 125, W: 100, H: 50}},
		{name: "double", scale: 2, want: Rect{X: 0, Y: 50, W: 400, H: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ScaledAround(tt.scale); got != tt.want {
				t.Errorf("ScaledAround(%v) = %+v, want %+v", tt.scale, got, tt.want)
			}
		})
	}
}
