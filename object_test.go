package verbal

import (
	"strings"
	"testing"
)

func countRedraws(o *Object) *int {
	n := new(int)
	o.onRedrawRequest(func(*Event) { *n++ })
	return n
}

func TestNewObjectDefaults(t *testing.T) {
	r := NewRect(Config{Name: "r", X: 10, Y: 20, Width: 30, Height: 40})
	if r.ScaleX() != 1 || r.ScaleY() != 1 {
		t.Errorf("scale = (%v, %v), want (1, 1)", r.ScaleX(), r.ScaleY())
	}
	if !r.Visible || !r.PointerEvents {
		t.Error("new objects should be visible and pointer-enabled")
	}
	if r.Parent() != nil {
		t.Error("new objects should be detached")
	}
	if !strings.HasPrefix(r.ID(), "obj_") {
		t.Errorf("ID = %q, want obj_ prefix", r.ID())
	}
	if r.Kind() != KindWidget || r.WidgetKind() != WidgetRect || r.ContainerKind() != ContainerNone {
		t.Errorf("kinds = %v/%v/%v", r.Kind(), r.WidgetKind(), r.ContainerKind())
	}
	assertPoint(t, "center", r.Center(), Point{25, 40})
	assertGeometryConsistent(t, r)
}

func TestObjectIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewRect(Config{}).ID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestRotate90BoundingBox(t *testing.T) {
	r := NewRect(Config{X: 100, Y: 100, Width: 200, Height: 200})
	r.Update(FieldRotate, 90)

	assertPoint(t, "center", r.Center(), Point{200, 200})
	want := [4]Point{{300, 100}, {300, 300}, {100, 300}, {100, 100}}
	bb := r.BoundingBox()
	for i := range want {
		assertPoint(t, "bbox", bb[i], want[i])
	}
}

func TestSetFieldsKeepsGeometryConsistent(t *testing.T) {
	tests := []struct {
		name   string
		values Values
	}{
		{"move", Values{FieldX: 50, FieldY: -20}},
		{"resize", Values{FieldWidth: 80, FieldHeight: 10}},
		{"scale", Values{FieldScaleX: 2, FieldScaleY: 0.5}},
		{"rotate", Values{FieldRotate: 33}},
		{"everything", Values{
			FieldX: 5, FieldY: 6, FieldWidth: 70, FieldHeight: 30,
			FieldRotate: -45, FieldScaleX: 1.5, FieldScaleY: 3,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(Config{Name: tt.name, X: 10, Y: 10, Width: 40, Height: 20})
			r.SetFields(tt.values, false)
			for f, v := range tt.values {
				got, _ := r.Field(f)
				assertNear(t, f.String(), got, v)
			}
			assertGeometryConsistent(t, r)
		})
	}
}

func TestResizeWhileRotatedKeepsPivotRelation(t *testing.T) {
	r := NewRect(Config{Width: 100, Height: 50, Rotate: 90})
	assertPoint(t, "start center", r.Center(), Point{50, 25})

	r.SilentlyUpdate(FieldWidth, 200)

	// The unrotated center (100, 25) turns 90 degrees about (50, 25).
	assertPoint(t, "center", r.Center(), Point{50, 75})
	assertNear(t, "x", r.X(), -50)
	assertNear(t, "y", r.Y(), 50)
	assertGeometryConsistent(t, r)
}

func TestRotateKeepsPivot(t *testing.T) {
	r := NewRect(Config{X: 10, Y: 10, Width: 40, Height: 20})
	before := r.Center()
	r.SilentlyUpdate(FieldRotate, 30)
	assertPoint(t, "center", r.Center(), before)
	assertNear(t, "x", r.X(), 10)
	assertNear(t, "y", r.Y(), 10)
}

func TestSilentlyUpdateEmitsNothing(t *testing.T) {
	r := NewRect(Config{Width: 10, Height: 10})
	n := countRedraws(r)
	r.SilentlyUpdate(FieldX, 5)
	r.SilentlyUpdate(FieldScaleY, 2)
	if *n != 0 {
		t.Errorf("redraws = %d, want 0", *n)
	}
	assertGeometryConsistent(t, r)
}

func TestUpdateEmitsOneRedraw(t *testing.T) {
	r := NewRect(Config{Width: 10, Height: 10})
	n := countRedraws(r)
	r.Update(FieldX, 5)
	if *n != 1 {
		t.Errorf("redraws after Update = %d, want 1", *n)
	}
	r.SetFields(Values{FieldX: 1, FieldY: 2, FieldRotate: 10}, true)
	if *n != 2 {
		t.Errorf("redraws after SetFields = %d, want 2", *n)
	}
	r.SetFields(Values{FieldX: 3}, false)
	if *n != 2 {
		t.Errorf("redraws after silent SetFields = %d, want 2", *n)
	}
}

func TestUnknownFieldIsNoOp(t *testing.T) {
	r := NewRect(Config{X: 1, Y: 2, Width: 3, Height: 4})
	n := countRedraws(r)
	before := r.Geometry()
	r.Update(Field(99), 42)
	r.SilentlyUpdate(Field(99), 42)
	if *n != 0 {
		t.Errorf("redraws = %d, want 0", *n)
	}
	for f, v := range before {
		if got, _ := r.Field(f); got != v {
			t.Errorf("%v = %v, want %v", f, got, v)
		}
	}
	if _, ok := r.Field(Field(99)); ok {
		t.Error("Field(99) should report false")
	}
}

func TestLayerRootIgnoresGeometry(t *testing.T) {
	l := NewLayer(nil)
	root := l.Root()
	root.Update(FieldX, 10)
	root.SetFields(Values{FieldWidth: 10}, true)
	if root.X() != 0 || root.Width() != 0 {
		t.Errorf("layer geometry changed: x=%v w=%v", root.X(), root.Width())
	}
	if _, ok := root.Field(FieldX); ok {
		t.Error("layer Field should report false")
	}
}

func TestMoveTo(t *testing.T) {
	r := NewRect(Config{Width: 10, Height: 10})
	n := countRedraws(r)
	r.MoveTo(30, 40)
	assertPoint(t, "center", r.Center(), Point{35, 45})
	if *n != 1 {
		t.Errorf("redraws = %d, want 1", *n)
	}
}

func TestTransferBetweenContainers(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	r := NewRect(Config{X: 10, Y: 10, Width: 10, Height: 10})

	a.Place(r)
	if r.Parent() != a || !a.Contains(r) {
		t.Fatal("r should be in a")
	}
	b.Place(r)
	if r.Parent() != b || !b.Contains(r) {
		t.Fatal("r should be in b")
	}
	if a.Contains(r) || a.Size() != 0 {
		t.Errorf("a still holds r (size %d)", a.Size())
	}
	b.Remove(r)
	if r.Parent() != nil {
		t.Error("r should be detached")
	}
	assertPoint(t, "center", r.Center(), Point{15, 15})
}

func TestTransferFromLayerToGroup(t *testing.T) {
	l := NewLayer(nil)
	g := NewGroup("g")
	r := NewRect(Config{Width: 10, Height: 10})
	l.Place(r)
	g.Place(r)
	if l.Contains(r) {
		t.Error("layer still holds r")
	}
	if r.Parent() != g {
		t.Error("r parent should be g")
	}
}

func TestContainsPointRotated(t *testing.T) {
	r := NewRect(Config{X: 0, Y: 0, Width: 100, Height: 20, Rotate: 90})
	// Rotated about (50, 10) the rect spans x 40..60 and y -40..60.
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{50, 10}, true},
		{"rotated top", Point{50, -35}, true},
		{"old right end", Point{95, 10}, false},
		{"far", Point{200, 200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHitTestGates(t *testing.T) {
	r := NewRect(Config{Width: 10, Height: 10})
	if r.HitTest(Point{5, 5}) != r {
		t.Fatal("expected hit")
	}
	r.PointerEvents = false
	if r.HitTest(Point{5, 5}) != nil {
		t.Error("pointer-disabled object should not be hit")
	}
	r.PointerEvents = true
	r.Visible = false
	if r.HitTest(Point{5, 5}) != nil {
		t.Error("hidden object should not be hit")
	}
}
