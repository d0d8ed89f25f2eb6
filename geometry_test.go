package verbal

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func assertPoint(t *testing.T, name string, got, want Point) {
	t.Helper()
	if !approxEqual(got.X, want.X, 1e-6) || !approxEqual(got.Y, want.Y, 1e-6) {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, want.X, want.Y)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{5, 5}, true},
		{"outside right", Point{11, 5}, false},
		{"outside above", Point{5, -1}, false},
		{"through shared vertex row", Point{-1, 0}, false},
		{"near corner inside", Point{0.001, 9.999}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.p, square); got != tt.want {
				t.Errorf("PointInPolygon(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointInPolygonConcave(t *testing.T) {
	// A "U" shape: the notch at x in (3,7), y < 7 is outside.
	u := []Point{{0, 0}, {3, 0}, {3, 7}, {7, 7}, {7, 0}, {10, 0}, {10, 10}, {0, 10}}
	if PointInPolygon(Point{5, 3}, u) {
		t.Error("point in the notch should be outside")
	}
	if !PointInPolygon(Point{1, 3}, u) {
		t.Error("point in the left arm should be inside")
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(Point{0, 0}, nil) {
		t.Error("empty polygon should contain nothing")
	}
}

func TestPointInCircle(t *testing.T) {
	if !PointInCircle(Point{5, 0}, Point{0, 0}, 5) {
		t.Error("boundary point should be inside")
	}
	if PointInCircle(Point{5.01, 0}, Point{0, 0}, 5) {
		t.Error("point just past the boundary should be outside")
	}
}

func TestPointInEllipse(t *testing.T) {
	c := Point{100, 100}
	tests := []struct {
		name   string
		p      Point
		rotate float64
		want   bool
	}{
		{"center", c, 0, true},
		{"on major axis end", Point{150, 100}, 0, true},
		{"past minor axis", Point{100, 125}, 0, false},
		{"rotated major axis", Point{100, 150}, 90, true},
		{"rotated minor axis", Point{120, 100}, 90, true},
		{"rotated outside", Point{140, 100}, 90, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInEllipse(tt.p, 50, 20, c, tt.rotate, false); got != tt.want {
				t.Errorf("PointInEllipse(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointInEllipseRadians(t *testing.T) {
	if !PointInEllipse(Point{0, 50}, 50, 20, Point{}, math.Pi/2, true) {
		t.Error("radian rotate should align major axis with y")
	}
}

func TestRotatePoint(t *testing.T) {
	got := RotatePoint(Point{10, 0}, Point{0, 0}, 90, false)
	assertPoint(t, "rotate 90", got, Point{0, 10})

	got = RotatePoint(Point{10, 0}, Point{0, 0}, math.Pi, true)
	assertPoint(t, "rotate pi", got, Point{-10, 0})

	p := Point{3, 4}
	if got := RotatePoint(p, Point{1, 1}, 0, false); got != p {
		t.Errorf("zero angle = %v, want %v", got, p)
	}
}

func TestRotatePointRoundTrip(t *testing.T) {
	p := Point{123.5, -42.25}
	c := Point{7, 9}
	for _, theta := range []float64{0.1, 1, 33, 90, 179.9, 270, 721, -45, -1000} {
		back := RotatePoint(RotatePoint(p, c, theta, false), c, -theta, false)
		if !approxEqual(back.X, p.X, 1e-9) || !approxEqual(back.Y, p.Y, 1e-9) {
			t.Errorf("theta %v: round trip = %v, want %v", theta, back, p)
		}
	}
}

func TestAngleConversion(t *testing.T) {
	if got := DegreesToRadians(180); got != math.Pi {
		t.Errorf("DegreesToRadians(180) = %v", got)
	}
	if got := RadiansToDegrees(math.Pi / 2); !approxEqual(got, 90, epsilon) {
		t.Errorf("RadiansToDegrees(pi/2) = %v", got)
	}
}

func TestMinBoundingBox(t *testing.T) {
	if b := MinBoundingBox(nil); b != (Bounds{}) {
		t.Errorf("empty = %+v, want zero", b)
	}
	b := MinBoundingBox([]Point{{3, 4}, {-1, 8}, {5, -2}})
	if b != (Bounds{MinX: -1, MinY: -2, MaxX: 5, MaxY: 8}) {
		t.Errorf("bounds = %+v", b)
	}
	if b.Width() != 6 || b.Height() != 10 {
		t.Errorf("size = %vx%v, want 6x10", b.Width(), b.Height())
	}
}

func TestGroupBoundingBox(t *testing.T) {
	b := GroupBoundingBox([][]Point{
		{{0, 0}, {10, 10}},
		{{-5, 3}, {2, 20}},
	})
	if b != (Bounds{MinX: -5, MinY: 0, MaxX: 10, MaxY: 20}) {
		t.Errorf("bounds = %+v", b)
	}
	if r := b.Rect(); r != (Rect{X: -5, Y: 0, Width: 15, Height: 20}) {
		t.Errorf("rect = %+v", r)
	}

	for _, in := range [][][]Point{nil, {}, {nil, {}}} {
		if b := GroupBoundingBox(in); b != (Bounds{}) {
			t.Errorf("GroupBoundingBox(%v) = %+v, want zero", in, b)
		}
	}
}

func TestRectContains(t *testing.T) {
	outer := RectVertices(0, 0, 100, 100)
	tests := []struct {
		name  string
		inner [4]Point
		want  bool
	}{
		{"inside", RectVertices(10, 10, 20, 20), true},
		{"overlapping", RectVertices(90, 90, 20, 20), false},
		{"disjoint", RectVertices(200, 200, 10, 10), false},
		{"touching edge", RectVertices(100, 0, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectContains(outer[:], tt.inner[:]); got != tt.want {
				t.Errorf("RectContains = %v, want %v", got, tt.want)
			}
		})
	}

	rotated := RotatePoints(outer[:], Point{50, 50}, 45, false)
	center := RectVertices(45, 45, 10, 10)
	if !RectContains(rotated, center[:]) {
		t.Error("center square should fit inside the rotated square")
	}
	corner := RectVertices(-15, -15, 4, 4)
	if RectContains(rotated, corner[:]) {
		t.Error("square in the rotated box's corner gap should not fit")
	}
}

func TestPointOnLineSegment(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"on segment", Point{5, 0}, true},
		{"within half width", Point{5, 1}, true},
		{"at half width", Point{5, 2}, true},
		{"past half width", Point{5, 2.1}, false},
		{"before start", Point{-0.5, 0}, false},
		{"after end", Point{10.5, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointOnLineSegment(tt.p, a, b, 4); got != tt.want {
				t.Errorf("PointOnLineSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointOnLineSegmentDegenerate(t *testing.T) {
	a := Point{3, 3}
	if !PointOnLineSegment(Point{3, 3}, a, a, 10) {
		t.Error("zero-length segment should match its own point")
	}
	if PointOnLineSegment(Point{3, 4}, a, a, 10) {
		t.Error("zero-length segment should ignore line width")
	}
}

func TestSignedAngleBetween(t *testing.T) {
	right := Vector{End: Point{1, 0}}
	left := Vector{End: Point{-1, 0}}
	down := Vector{End: Point{0, 1}}

	if got := SignedAngleBetween(upVector, upVector, false); !approxEqual(got, 0, 1e-6) {
		t.Errorf("same vector = %v, want 0", got)
	}
	if got := SignedAngleBetween(upVector, right, false); !approxEqual(got, -90, 1e-6) {
		t.Errorf("up->right = %v, want -90", got)
	}
	if got := SignedAngleBetween(upVector, left, false); !approxEqual(got, 90, 1e-6) {
		t.Errorf("up->left = %v, want 90", got)
	}
	if got := SignedAngleBetween(upVector, down, false); !approxEqual(got, 180, 1e-6) {
		t.Errorf("up->down = %v, want 180", got)
	}
	if got := SignedAngleBetween(upVector, right, true); !approxEqual(got, -math.Pi/2, 1e-9) {
		t.Errorf("radians = %v, want -pi/2", got)
	}
}

func TestMidpoint(t *testing.T) {
	if got := Midpoint(Point{0, 0}, Point{4, -6}); got != (Point{2, -3}) {
		t.Errorf("Midpoint = %v", got)
	}
}

func TestDistancePointToLine(t *testing.T) {
	if d := DistancePointToLine(Point{5, 7}, Point{0, 0}, Point{10, 0}); d != 7 {
		t.Errorf("horizontal = %v, want 7", d)
	}
	if d := DistancePointToLine(Point{3, 4}, Point{0, 0}, Point{0, 0}); d != 5 {
		t.Errorf("degenerate = %v, want 5", d)
	}
	if d := DistancePointToLine(Point{0, 10}, Point{0, 0}, Point{10, 10}); !approxEqual(d, math.Sqrt2*5, 1e-9) {
		t.Errorf("diagonal = %v", d)
	}
}

func TestPointSideOfLine(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		a, b Point
		want int
	}{
		{"horizontal above", Point{5, -1}, Point{0, 0}, Point{10, 0}, 1},
		{"horizontal below", Point{5, 1}, Point{0, 0}, Point{10, 0}, -1},
		{"horizontal on", Point{50, 0}, Point{0, 0}, Point{10, 0}, 0},
		{"vertical left", Point{-1, 5}, Point{0, 0}, Point{0, 10}, 1},
		{"vertical right", Point{1, 5}, Point{0, 0}, Point{0, 10}, -1},
		{"vertical on", Point{0, 50}, Point{0, 0}, Point{0, 10}, 0},
		{"diagonal above", Point{5, 0}, Point{0, 0}, Point{10, 10}, 1},
		{"diagonal below", Point{0, 5}, Point{0, 0}, Point{10, 10}, -1},
		{"diagonal on", Point{3, 3}, Point{0, 0}, Point{10, 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PointSideOfLine(tt.p, tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("PointSideOfLine = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPointSideOfLineDegenerate(t *testing.T) {
	_, err := PointSideOfLine(Point{1, 1}, Point{2, 2}, Point{2, 2})
	if !errors.Is(err, ErrNotALine) {
		t.Errorf("err = %v, want ErrNotALine", err)
	}
}

func TestProjectPointOntoLine(t *testing.T) {
	assertPoint(t, "vertical", ProjectPointOntoLine(Point{7, 3}, Point{2, 0}, Point{2, 10}), Point{2, 3})
	assertPoint(t, "horizontal", ProjectPointOntoLine(Point{7, 3}, Point{0, 5}, Point{10, 5}), Point{7, 5})
	assertPoint(t, "diagonal", ProjectPointOntoLine(Point{0, 10}, Point{0, 0}, Point{10, 10}), Point{5, 5})
}
