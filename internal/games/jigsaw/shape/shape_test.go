package shape_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/shape"
)

const testPitch = 33

func TestFromIndexCellCounts(t *testing.T) {
	cat := shape.NewCatalog(testPitch)

	for i := range shape.IndexCount {
		piece := cat.FromIndex(i)
		want, ok := shape.TypeOf(i)
		if !ok {
			t.Fatalf("TypeOf(%d) reported out of range", i)
		}
		if piece.Type() != want {
			t.Errorf("index %d: type = %v, expected %v", i, piece.Type(), want)
		}
		if piece.Len() != want.Count() {
			t.Errorf("index %d: %d cells, expected %d", i, piece.Len(), want.Count())
		}
		if got := piece.Occupancy().Count(); got != want.Count() {
			t.Errorf("index %d: occupancy has %d cells, expected %d", i, got, want.Count())
		}
		if piece.Occupancy() != piece.Occupancy().Normalize() {
			t.Errorf("index %d: occupancy not normalized:\n%s", i, piece.Occupancy())
		}
	}
}

func TestTypeRanges(t *testing.T) {
	tests := []struct {
		typ        shape.Type
		start, end int
		count      int
		w, h       int
	}{
		{shape.AsymmetricAngle, 0, 7, 4, 2, 3},
		{shape.Z, 8, 11, 4, 2, 3},
		{shape.LongAngle, 12, 15, 5, 3, 3},
		{shape.T, 16, 19, 5, 3, 3},
		{shape.Line, 20, 21, 3, 3, 1},
		{shape.Square, 22, 22, 1, 1, 1},
		{shape.ShortAngle, 23, 26, 3, 2, 2},
		{shape.ShortT, 27, 30, 4, 2, 3},
	}

	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			if tc.typ.Start() != tc.start || tc.typ.End() != tc.end {
				t.Errorf("range = [%d,%d], expected [%d,%d]", tc.typ.Start(), tc.typ.End(), tc.start, tc.end)
			}
			if tc.typ.Count() != tc.count {
				t.Errorf("Count() = %d, expected %d", tc.typ.Count(), tc.count)
			}
			if tc.typ.Width() != tc.w || tc.typ.Height() != tc.h {
				t.Errorf("size = %dx%d, expected %dx%d", tc.typ.Width(), tc.typ.Height(), tc.w, tc.h)
			}
		})
	}
}

func TestTypeOfOutOfRange(t *testing.T) {
	for _, i := range []int{-1, shape.IndexCount, 100} {
		if _, ok := shape.TypeOf(i); ok {
			t.Errorf("TypeOf(%d) should report out of range", i)
		}
	}
}

func TestCanonicalOccupancy(t *testing.T) {
	tests := []struct {
		typ  shape.Type
		want shape.Occupancy
	}{
		{shape.AsymmetricAngle, shape.ParseOccupancy("##.", "#..", "#..")},
		{shape.Z, shape.ParseOccupancy("#..", "##.", ".#.")},
		{shape.LongAngle, shape.ParseOccupancy("###", "#..", "#..")},
		{shape.T, shape.ParseOccupancy("###", ".#.", ".#.")},
		{shape.Line, shape.ParseOccupancy("###", "...", "...")},
		{shape.Square, shape.ParseOccupancy("#..", "...", "...")},
		{shape.ShortAngle, shape.ParseOccupancy("##.", "#..", "...")},
		{shape.ShortT, shape.ParseOccupancy("#..", "##.", "#..")},
	}

	cat := shape.NewCatalog(testPitch)
	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			got := cat.FromIndex(tc.typ.Start()).Occupancy()
			if got != tc.want {
				t.Errorf("occupancy:\n%s\nexpected:\n%s", got, tc.want)
			}
			if first := cat.Canonical(tc.typ).FirstCellGridOffset(); first != shape.C(0, 0) {
				t.Errorf("canonical first cell = %v, expected (0,0)", first)
			}
		})
	}
}

func TestFromIndexOrientations(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  shape.Occupancy
	}{
		{"asymmetric angle rotated once", 1, shape.ParseOccupancy("#..", "###", "...")},
		{"asymmetric angle mirrored", 4, shape.ParseOccupancy("##.", ".#.", ".#.")},
		{"z rotated once", 9, shape.ParseOccupancy(".##", "##.", "...")},
		{"z mirrored", 10, shape.ParseOccupancy(".#.", "##.", "#..")},
		{"vertical line", 21, shape.ParseOccupancy("#..", "#..", "#..")},
	}

	cat := shape.NewCatalog(testPitch)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cat.FromIndex(tc.index).Occupancy()
			if got != tc.want {
				t.Errorf("FromIndex(%d):\n%s\nexpected:\n%s", tc.index, got, tc.want)
			}
		})
	}
}

func TestMirroredHalfRepeats(t *testing.T) {
	cat := shape.NewCatalog(testPitch)

	// The mirrored half of the first two families is one shape repeated.
	groups := [][]int{{4, 5, 6, 7}, {10, 11}}
	for _, group := range groups {
		first := cat.FromIndex(group[0])
		for _, i := range group[1:] {
			if !cat.FromIndex(i).SameShape(first) {
				t.Errorf("index %d differs from index %d", i, group[0])
			}
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	cat := shape.NewCatalog(testPitch)

	for i := range shape.IndexCount {
		piece := cat.FromIndex(i)
		rotated := piece
		for range 4 {
			rotated = rotated.RotateClockwise()
		}
		if !rotated.SameShape(piece) {
			t.Errorf("index %d: four rotations changed the shape:\n%s\nexpected:\n%s",
				i, rotated.Occupancy(), piece.Occupancy())
		}
		if rotated.Len() != piece.Len() {
			t.Errorf("index %d: rotation changed cell count", i)
		}
	}
}

func TestMirrorTwiceIsIdentity(t *testing.T) {
	cat := shape.NewCatalog(testPitch)

	for i := range shape.IndexCount {
		piece := cat.FromIndex(i)
		if back := piece.Mirror().Mirror(); !back.SameShape(piece) {
			t.Errorf("index %d: double mirror changed the shape:\n%s\nexpected:\n%s",
				i, back.Occupancy(), piece.Occupancy())
		}
	}
}

func TestTransformedCellsAreRowMajor(t *testing.T) {
	cat := shape.NewCatalog(testPitch)

	piece := cat.Canonical(shape.Z).RotateClockwise()
	want := []shape.Cell{shape.C(0, 1), shape.C(0, 2), shape.C(1, 0), shape.C(1, 1)}
	got := piece.Cells()
	if len(got) != len(want) {
		t.Fatalf("got %d cells, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestFirstCellOffsets(t *testing.T) {
	cat := shape.NewCatalog(testPitch)

	piece := cat.FromIndex(9) // .## / ##.
	if got := piece.FirstCellGridOffset(); got != shape.C(0, 1) {
		t.Errorf("FirstCellGridOffset() = %v, expected (0,1)", got)
	}
	if got := piece.FirstCellPixelOffset(); got != (core.PointF{X: 33, Y: 0}) {
		t.Errorf("FirstCellPixelOffset() = %+v, expected {33 0}", got)
	}
}

func TestPixelSize(t *testing.T) {
	cat := shape.NewCatalog(testPitch)

	tests := []struct {
		index int
		w, h  float64
	}{
		{20, 99, 33}, // horizontal line
		{21, 33, 99}, // vertical line
		{22, 33, 33}, // square
		{27, 66, 99}, // short T
		{16, 99, 99}, // T
	}

	for _, tc := range tests {
		piece := cat.FromIndex(tc.index)
		if piece.Width() != tc.w || piece.Height() != tc.h {
			t.Errorf("index %d: size = %vx%v, expected %vx%v", tc.index, piece.Width(), piece.Height(), tc.w, tc.h)
		}
	}
}

func TestRects(t *testing.T) {
	cat := shape.NewCatalog(testPitch)

	rects := cat.Canonical(shape.ShortAngle).Rects()
	want := []core.RectF{
		{X: 0, Y: 0, W: 31, H: 31},
		{X: 0, Y: 33, W: 31, H: 31},
		{X: 33, Y: 0, W: 31, H: 31},
	}
	if len(rects) != len(want) {
		t.Fatalf("got %d rects, expected %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect %d = %+v, expected %+v", i, rects[i], want[i])
		}
	}
}

func TestFromIndexPanicsOutOfRange(t *testing.T) {
	cat := shape.NewCatalog(testPitch)

	for _, i := range []int{-1, shape.IndexCount} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("FromIndex(%d) should panic", i)
				}
			}()
			cat.FromIndex(i)
		}()
	}
}

func TestRandomDeterministic(t *testing.T) {
	cat := shape.NewCatalog(testPitch)
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for n := range 50 {
		pa, pb := cat.Random(a), cat.Random(b)
		if pa.String() != pb.String() {
			t.Fatalf("draw %d: %s != %s with the same seed", n, pa, pb)
		}
	}
}

func TestAllCoversCatalog(t *testing.T) {
	cat := shape.NewCatalog(testPitch)
	all := cat.All()
	if len(all) != shape.IndexCount {
		t.Fatalf("All() returned %d pieces, expected %d", len(all), shape.IndexCount)
	}
	for i, p := range all {
		if p.String() != cat.FromIndex(i).String() {
			t.Errorf("All()[%d] = %s, expected %s", i, p, cat.FromIndex(i))
		}
	}
}

func TestOccupancyString(t *testing.T) {
	o := shape.ParseOccupancy("#.#", ".#.", "...")
	if got, want := o.String(), "#.#\n.#.\n..."; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if o.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", o.Count())
	}
}

func TestTetrominoString(t *testing.T) {
	cat := shape.NewCatalog(testPitch)
	tests := []struct {
		piece shape.Tetromino
		want  string
	}{
		{cat.Canonical(shape.Square), "Square[(0,0)]"},
		{cat.Canonical(shape.Line), "Line[(0,0) (0,1) (0,2)]"},
		{cat.FromIndex(21), "Line[(0,0) (1,0) (2,0)]"},
	}
	for _, tc := range tests {
		if got := tc.piece.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}

func TestOccupancyNormalize(t *testing.T) {
	o := shape.ParseOccupancy("...", ".##", "..#")
	want := shape.ParseOccupancy("##.", ".#.", "...")
	if got := o.Normalize(); got != want {
		t.Errorf("Normalize():\n%s\nexpected:\n%s", got, want)
	}

	var empty shape.Occupancy
	if empty.Normalize() != empty {
		t.Error("Normalize() of an empty grid should be empty")
	}
}
