package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 5, 8, 1)

	tests := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{17, 5, true},
		{18, 5, false},
		{9, 5, false},
		{12, 6, false},
		{12, 4, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestClampMinMax(t *testing.T) {
	if Clamp(-4, 0, 10) != 0 || Clamp(14, 0, 10) != 10 || Clamp(3, 0, 10) != 3 {
		t.Error("Clamp out of range")
	}
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("Min/Max broken")
	}
}

func TestPointFArithmetic(t *testing.T) {
	p := PointF{X: 1.5, Y: 2}
	q := PointF{X: 0.5, Y: -3}

	if got := p.Add(q); got != (PointF{X: 2, Y: -1}) {
		t.Errorf("Add = %+v", got)
	}
	if got := p.Sub(q); got != (PointF{X: 1, Y: 5}) {
		t.Errorf("Sub = %+v", got)
	}
}

func TestRectFGrowKeepsCorner(t *testing.T) {
	r := RectF{X: 100, Y: 50, W: 300, H: 300}
	g := r.Grow(30, 30)

	if g.Min() != r.Min() {
		t.Errorf("corner moved: %+v", g.Min())
	}
	if g.MaxX() != 430 || g.MaxY() != 380 {
		t.Errorf("grown max = (%v,%v)", g.MaxX(), g.MaxY())
	}
}

func TestRectFContainsRectInclusive(t *testing.T) {
	outer := RectF{X: 0, Y: 0, W: 330, H: 330}

	tests := []struct {
		name  string
		inner RectF
		want  bool
	}{
		{"inside", RectF{X: 10, Y: 10, W: 99, H: 66}, true},
		{"touching right edge", RectF{X: 231, Y: 0, W: 99, H: 66}, true},
		{"past right edge", RectF{X: 231.5, Y: 0, W: 99, H: 66}, false},
		{"touching top-left", RectF{X: 0, Y: 0, W: 33, H: 33}, true},
		{"left of box", RectF{X: -0.1, Y: 0, W: 33, H: 33}, false},
		{"below box", RectF{X: 0, Y: 300, W: 33, H: 33.5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.ContainsRect(tc.inner); got != tc.want {
				t.Errorf("ContainsRect(%+v) = %v, expected %v", tc.inner, got, tc.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range []Color{ColorGray, ColorWhite, ColorPeach, ColorDarkGray, ColorBrightYellow} {
		got, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseColor(%q) = %v", c.String(), got)
		}
	}

	if _, err := ParseColor("ultraviolet"); err == nil {
		t.Error("unknown color should fail")
	}
	if got := Color(200).String(); got != "color(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionConfirm)
	f.Point(PointerPress, 3, 4)
	f.Point(PointerRelease, 5, 6)

	c := f.Clone()
	f.Clear()

	if !f.Empty() || f.Has(ActionConfirm) {
		t.Error("Clear should drop all input")
	}
	if !c.Has(ActionConfirm) || len(c.Pointer) != 2 {
		t.Fatalf("clone lost input: %+v", c)
	}
	if c.Pointer[1] != (PointerEvent{Kind: PointerRelease, X: 5, Y: 6}) {
		t.Errorf("pointer order = %+v", c.Pointer)
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame has no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}
