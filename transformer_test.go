package verbal

import "testing"

func linkedTransformer(t *testing.T) (*Transformer, *Object) {
	t.Helper()
	l := NewLayer(nil)
	r := NewRect(Config{Name: "r", X: 100, Y: 100, Width: 100, Height: 50})
	tr := NewTransformer("tr")
	l.PlaceArray([]*Object{r, tr.Object})
	tr.LinkTo(r)
	return tr, r
}

func TestTransformerStartsHidden(t *testing.T) {
	tr := NewTransformer("tr")
	if tr.Visible || tr.Target() != nil {
		t.Error("new transformer should be hidden and unlinked")
	}
	if _, ok := tr.ControlPointAt(Point{}); ok {
		t.Error("unlinked transformer should have no live handles")
	}
	if tr.TransformTarget(Point{10, 10}, ControlBottomRight, false) != ControlBottomRight {
		t.Error("unlinked TransformTarget should return the handle unchanged")
	}
}

func TestTransformerFollowsTarget(t *testing.T) {
	tr, r := linkedTransformer(t)
	if !tr.Visible || tr.Target() != r {
		t.Fatal("linked transformer should be visible")
	}
	assertGeometry(t, tr.Object, Values{FieldX: 100, FieldY: 100, FieldWidth: 100, FieldHeight: 50})

	handles := map[ControlPoint]Point{
		ControlTopLeft:     {100, 100},
		ControlBottomRight: {200, 150},
		ControlRight:       {200, 125},
		ControlRotate:      {150, 100 - rotateHandleOffset},
	}
	for cp, want := range handles {
		assertPoint(t, "handle", tr.Handle(cp), want)
	}

	r.Update(FieldX, 120)
	assertGeometry(t, tr.Object, Values{FieldX: 120})
	r.Update(FieldScaleY, 2)
	assertGeometry(t, tr.Object, Values{FieldHeight: 100, FieldScaleY: 1})

	tr.LinkTo(nil)
	if tr.Visible || tr.Target() != nil {
		t.Error("unlinked transformer should hide")
	}
	r.Update(FieldX, 0)
	assertGeometry(t, tr.Object, Values{FieldX: 120})
}

func TestTransformerRotatedHandles(t *testing.T) {
	tr, r := linkedTransformer(t)
	r.Update(FieldRotate, 90)
	c := r.Center()
	assertPoint(t, "top left", tr.Handle(ControlTopLeft), RotatePoint(Point{100, 100}, c, 90, false))
	assertPoint(t, "rotate", tr.Handle(ControlRotate), RotatePoint(Point{150, 100 - rotateHandleOffset}, c, 90, false))
}

func TestTransformerControlPointAt(t *testing.T) {
	tr, _ := linkedTransformer(t)
	tests := []struct {
		p    Point
		want ControlPoint
		ok   bool
	}{
		{Point{200, 150}, ControlBottomRight, true},
		{Point{103, 98}, ControlTopLeft, true},
		{Point{150, 73}, ControlRotate, true},
		{Point{100, 125}, ControlLeft, true},
		{Point{150, 125}, 0, false},
	}
	for _, tt := range tests {
		got, ok := tr.ControlPointAt(tt.p)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ControlPointAt(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
	if !tr.ContainsPoint(Point{200, 150}) || tr.ContainsPoint(Point{150, 125}) {
		t.Error("transformer should be hit only on its handles")
	}
}

func TestTransformTargetResize(t *testing.T) {
	tests := []struct {
		name         string
		cp           ControlPoint
		mouse        Point
		proportional bool
		want         Values
		wantCP       ControlPoint
	}{
		{"bottom right", ControlBottomRight, Point{250, 200}, false,
			Values{FieldX: 100, FieldY: 100, FieldScaleX: 1.5, FieldScaleY: 2}, ControlBottomRight},
		{"right edge", ControlRight, Point{300, 0}, false,
			Values{FieldX: 100, FieldY: 100, FieldScaleX: 2, FieldScaleY: 1}, ControlRight},
		{"flip past left", ControlBottomRight, Point{50, 200}, false,
			Values{FieldX: 50, FieldY: 100, FieldScaleX: 0.5, FieldScaleY: 2}, ControlBottomLeft},
		{"top left", ControlTopLeft, Point{0, 50}, false,
			Values{FieldX: 0, FieldY: 50, FieldScaleX: 2, FieldScaleY: 2}, ControlTopLeft},
		{"proportional top left", ControlTopLeft, Point{0, 100}, true,
			Values{FieldX: 20, FieldY: 60, FieldScaleX: 1.8, FieldScaleY: 1.8}, ControlTopLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, r := linkedTransformer(t)
			got := tr.TransformTarget(tt.mouse, tt.cp, tt.proportional)
			if got != tt.wantCP {
				t.Errorf("control point = %v, want %v", got, tt.wantCP)
			}
			assertGeometry(t, r, tt.want)
			assertGeometry(t, tr.Object, Values{
				FieldX: r.X(), FieldY: r.Y(),
				FieldWidth: r.FinalWidth(), FieldHeight: r.FinalHeight(),
			})
		})
	}
}

func TestTransformTargetKeepsAnchorWhenRotated(t *testing.T) {
	tr, r := linkedTransformer(t)
	r.Update(FieldRotate, 30)
	anchor := tr.Handle(ControlTopLeft)
	drag := tr.Handle(ControlBottomRight)

	tr.TransformTarget(Point{drag.X + 20, drag.Y + 10}, ControlBottomRight, false)
	assertPoint(t, "anchor", tr.Handle(ControlTopLeft), anchor)
	assertGeometryConsistent(t, r)
}

func TestTransformTargetRotate(t *testing.T) {
	tests := []struct {
		name  string
		mouse Point
		want  float64
	}{
		{"up", Point{150, 0}, 0},
		{"right", Point{400, 125}, 90},
		{"left", Point{0, 125}, -90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, r := linkedTransformer(t)
			tr.TransformTarget(tt.mouse, ControlRotate, false)
			assertGeometry(t, r, Values{FieldRotate: tt.want})
			assertPoint(t, "pivot", r.Center(), Point{150, 125})
		})
	}
}

func TestTransformerRender(t *testing.T) {
	tr, _ := linkedTransformer(t)
	c := newRecordCanvas()
	drawObject(c, BasePainter{}, tr.Object)
	if got := c.count("ellipse"); got != int(controlPointCount) {
		t.Errorf("handles drawn = %d, want %d", got, controlPointCount)
	}

	c.reset()
	tr.LinkTo(nil)
	drawObject(c, BasePainter{}, tr.Object)
	if len(c.ops) != 0 {
		t.Errorf("hidden transformer drew %v", c.ops)
	}
}

func TestLineTransformer(t *testing.T) {
	ln := NewLine(Config{Vertices: []Point{{0, 0}, {100, 50}}})
	lt := NewLineTransformer("lt")
	lt.LinkTo(NewRect(Config{}))
	if lt.Target() != nil || lt.Visible {
		t.Fatal("line transformer should refuse non-lines")
	}
	lt.LinkTo(ln)

	idx, ok := lt.ControlPointAt(Point{98, 52})
	if !ok || idx != 1 {
		t.Fatalf("ControlPointAt = %d, %v; want 1, true", idx, ok)
	}
	if _, ok := lt.ControlPointAt(Point{50, 25}); ok {
		t.Error("the middle of the line is not a handle")
	}

	lt.TransformTarget(Point{120, 80}, 1)
	assertPoints(t, "endpoints", ln.Vertices(), []Point{{0, 0}, {120, 80}})
	assertGeometry(t, lt.Object, Values{FieldX: 0, FieldY: 0, FieldWidth: 120, FieldHeight: 80})

	lt.TransformTarget(Point{9, 9}, 2)
	assertPoints(t, "ignored index", ln.Vertices(), []Point{{0, 0}, {120, 80}})

	c := newRecordCanvas()
	drawObject(c, BasePainter{}, lt.Object)
	if got := c.count("ellipse"); got != 2 {
		t.Errorf("handles drawn = %d, want 2", got)
	}
}
