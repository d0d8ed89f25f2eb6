package verbal

import (
	"image/color"
	"math"
)

// ControlPoint identifies a Transformer handle.
type ControlPoint uint8

const (
	ControlTopLeft ControlPoint = iota
	ControlTopRight
	ControlBottomRight
	ControlBottomLeft
	ControlRotate
	ControlTop
	ControlRight
	ControlBottom
	ControlLeft
	controlPointCount
)

const (
	handleRadius       = 8.0
	rotateHandleOffset = 28.0
)

// handleFactors places each resize handle on the frame as a fraction of its
// width and height. The rotate handle has no factor.
var handleFactors = [controlPointCount][2]float64{
	ControlTopLeft:     {0, 0},
	ControlTopRight:    {1, 0},
	ControlBottomRight: {1, 1},
	ControlBottomLeft:  {0, 1},
	ControlRotate:      {0.5, 0},
	ControlTop:         {0.5, 0},
	ControlRight:       {1, 0.5},
	ControlBottom:      {0.5, 1},
	ControlLeft:        {0, 0.5},
}

var defaultTransformerStyle = Style{Fill: "#d2dae2", Stroke: "#3c40c6", LineWidth: 1}

// Transformer draws a resize frame with nine handles around a target and
// applies drags on those handles back to the target. It follows the target
// through its redraw requests and must live in the same container as the
// target.
type Transformer struct {
	*Object
}

// NewTransformer creates an unlinked, hidden transformer.
func NewTransformer(name string) *Transformer {
	o := newObject(KindWidget, WidgetTransformer, ContainerNone, Config{
		Name:  name,
		Style: defaultTransformerStyle,
	})
	o.Visible = false
	o.updateHandles()
	return &Transformer{o}
}

// Target returns the linked object, or nil.
func (t *Transformer) Target() *Object { return t.target }

// LinkTo attaches the transformer to target, or detaches and hides it when
// target is nil.
func (t *Transformer) LinkTo(target *Object) {
	t.Object.linkTo(target)
}

func (o *Object) linkTo(target *Object) {
	o.targetHook.Remove()
	o.targetHook = CallbackHandle{}
	o.target = target
	if target == nil {
		o.Visible = false
		o.requestRedraw()
		return
	}
	o.Visible = true
	o.targetHook = target.onRedrawRequest(func(*Event) { o.syncTarget() })
	o.syncTarget()
}

// syncTarget copies the target frame onto the transformer.
func (o *Object) syncTarget() {
	tg := o.target
	if tg == nil {
		return
	}
	if o.widget == WidgetLineTransformer {
		a, b := tg.lineEndpoints()
		box := MinBoundingBox([]Point{a, b})
		o.SetFields(Values{
			FieldX: box.MinX, FieldY: box.MinY,
			FieldWidth: box.Width(), FieldHeight: box.Height(),
		}, true)
		return
	}
	o.SetFields(Values{
		FieldWidth:  tg.FinalWidth(),
		FieldHeight: tg.FinalHeight(),
		FieldScaleX: 1,
		FieldScaleY: 1,
		FieldX:      tg.x,
		FieldY:      tg.y,
		FieldRotate: tg.rotate,
	}, true)
}

// Handle returns the position of cp in the parent's space.
func (t *Transformer) Handle(cp ControlPoint) Point {
	if cp >= controlPointCount {
		return Point{}
	}
	return t.handles[cp]
}

// localHandle returns the position of cp in the frame's unrotated space.
func (o *Object) localHandle(cp ControlPoint) Point {
	f := handleFactors[cp]
	p := Point{f[0] * o.width, f[1] * o.height}
	if cp == ControlRotate {
		p.Y = -rotateHandleOffset
	}
	return p
}

func (o *Object) updateHandles() {
	m := o.Matrix()
	for cp := ControlPoint(0); cp < controlPointCount; cp++ {
		o.handles[cp] = m.Apply(o.localHandle(cp))
	}
}

func transformerUpdate(o *Object, _, _ Values) {
	o.updateHandles()
}

// ControlPointAt returns the handle under p, given in the parent's space.
func (t *Transformer) ControlPointAt(p Point) (ControlPoint, bool) {
	if t.target == nil {
		return 0, false
	}
	for cp := ControlPoint(0); cp < controlPointCount; cp++ {
		if PointInCircle(p, t.handles[cp], handleRadius) {
			return cp, true
		}
	}
	return 0, false
}

func transformerContains(o *Object, p Point) bool {
	_, ok := (&Transformer{o}).ControlPointAt(p)
	return ok
}

// TransformTarget applies a drag of cp to mouse, given in the parent's
// space. Corner handles resize both axes, edge handles one. With
// proportional set, corners keep the frame's aspect ratio. Resizing writes
// scaleX and scaleY on the target and keeps the opposite handle anchored.
//
// The returned control point is the one the drag continues with. It differs
// from cp once the pointer crosses the anchored side and the frame flips.
func (t *Transformer) TransformTarget(mouse Point, cp ControlPoint, proportional bool) ControlPoint {
	tg := t.target
	if tg == nil || cp >= controlPointCount {
		return cp
	}
	if cp == ControlRotate {
		angle := SignedAngleBetween(Vector{Start: t.center, End: mouse}, upVector, false)
		if !math.IsNaN(angle) {
			tg.SetFields(Values{FieldRotate: angle}, true)
		}
		return cp
	}

	w, h := t.width, t.height
	local := t.ParentToLocal(mouse)
	f := handleFactors[cp]

	minX, nw, fx := resizeAxis(local.X, f[0], w)
	minY, nh, fy := resizeAxis(local.Y, f[1], h)

	isCorner := f[0] != 0.5 && f[1] != 0.5
	if proportional && isCorner && w > 0 && h > 0 {
		k := (nw*w + nh*h) / (w*w + h*h)
		nw, nh = math.Max(k*w, 1), math.Max(k*h, 1)
		anchorX, anchorY := (1-f[0])*w, (1-f[1])*h
		if fx == 1 {
			minX = anchorX
		} else {
			minX = anchorX - nw
		}
		if fy == 1 {
			minY = anchorY
		} else {
			minY = anchorY - nh
		}
	}

	center := t.LocalToParent(Point{minX + nw/2, minY + nh/2})
	values := Values{
		FieldX: center.X - nw/2,
		FieldY: center.Y - nh/2,
	}
	if tg.width != 0 {
		values[FieldScaleX] = nw / tg.width
	}
	if tg.height != 0 {
		values[FieldScaleY] = nh / tg.height
	}
	tg.SetFields(values, true)

	return controlPointFor(fx, fy, cp)
}

// resizeAxis resizes one frame axis of length size for a handle at factor f
// dragged to pos. It returns the new start, the new length (at least 1) and
// the factor the handle ends up at.
func resizeAxis(pos, f, size float64) (start, length, factor float64) {
	if f == 0.5 {
		return 0, size, f
	}
	anchor := (1 - f) * size
	length = math.Max(math.Abs(pos-anchor), 1)
	if pos >= anchor {
		return anchor, length, 1
	}
	return anchor - length, length, 0
}

func controlPointFor(fx, fy float64, fallback ControlPoint) ControlPoint {
	for cp := ControlPoint(0); cp < controlPointCount; cp++ {
		if cp == ControlRotate {
			continue
		}
		if handleFactors[cp] == [2]float64{fx, fy} {
			return cp
		}
	}
	return fallback
}

func transformerRender(o *Object, c Canvas, _ Painter) {
	if o.target == nil {
		return
	}
	fill, stroke, err := handleColors(o.style)
	if err != nil {
		Logger().Warn("transformer style", "id", o.id, "err", err)
		return
	}
	applyTransform(c, o, true)
	c.SetLineWidth(o.style.lineWidth())
	c.SetStrokeColor(stroke)
	c.SetFillColor(fill)

	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(o.width, 0)
	c.LineTo(o.width, o.height)
	c.LineTo(0, o.height)
	c.ClosePath()
	top := o.localHandle(ControlTop)
	rot := o.localHandle(ControlRotate)
	c.MoveTo(top.X, top.Y)
	c.LineTo(rot.X, rot.Y)
	strokeLogged(c, o)

	for cp := ControlPoint(0); cp < controlPointCount; cp++ {
		p := o.localHandle(cp)
		drawHandle(c, o, p)
	}
}

// LineTransformer shows a handle on each endpoint of a line and moves
// endpoints on drag.
type LineTransformer struct {
	*Object
}

// NewLineTransformer creates an unlinked, hidden line transformer.
func NewLineTransformer(name string) *LineTransformer {
	o := newObject(KindWidget, WidgetLineTransformer, ContainerNone, Config{
		Name:  name,
		Style: defaultTransformerStyle,
	})
	o.Visible = false
	return &LineTransformer{o}
}

// Target returns the linked line, or nil.
func (t *LineTransformer) Target() *Object { return t.target }

// LinkTo attaches the transformer to line. Anything other than a line
// widget detaches it.
func (t *LineTransformer) LinkTo(line *Object) {
	if line != nil && line.widget != WidgetLine {
		line = nil
	}
	t.Object.linkTo(line)
}

func (o *Object) lineHandles() ([2]Point, bool) {
	if o.target == nil {
		return [2]Point{}, false
	}
	a, b := o.target.lineEndpoints()
	return [2]Point{a, b}, true
}

// ControlPointAt returns the index of the endpoint handle under p: 0 for
// the start and 1 for the end.
func (t *LineTransformer) ControlPointAt(p Point) (int, bool) {
	hs, ok := t.lineHandles()
	if !ok {
		return 0, false
	}
	for i, h := range hs {
		if PointInCircle(p, h, handleRadius) {
			return i, true
		}
	}
	return 0, false
}

func lineTransformerContains(o *Object, p Point) bool {
	_, ok := (&LineTransformer{o}).ControlPointAt(p)
	return ok
}

// TransformTarget moves endpoint index of the line to mouse.
func (t *LineTransformer) TransformTarget(mouse Point, index int) {
	hs, ok := t.lineHandles()
	if !ok || index < 0 || index > 1 {
		return
	}
	hs[index] = mouse
	t.target.SetVertices(hs[:])
}

func lineTransformerRender(o *Object, c Canvas, _ Painter) {
	hs, ok := o.lineHandles()
	if !ok {
		return
	}
	fill, stroke, err := handleColors(o.style)
	if err != nil {
		Logger().Warn("line transformer style", "id", o.id, "err", err)
		return
	}
	c.SetLineWidth(o.style.lineWidth())
	c.SetStrokeColor(stroke)
	c.SetFillColor(fill)
	for _, h := range hs {
		drawHandle(c, o, h)
	}
}

func handleColors(s Style) (fill, stroke color.NRGBA, err error) {
	if fill, err = s.FillColor(); err != nil {
		return
	}
	stroke, err = s.StrokeColor()
	return
}

func drawHandle(c Canvas, o *Object, p Point) {
	c.BeginPath()
	c.Ellipse(p.X, p.Y, handleRadius, handleRadius)
	if err := c.Fill(); err != nil {
		Logger().Warn("fill handle", "id", o.id, "err", err)
	}
	strokeLogged(c, o)
}

func strokeLogged(c Canvas, o *Object) {
	if err := c.Stroke(); err != nil {
		Logger().Warn("stroke", "id", o.id, "kind", o.widget.String(), "err", err)
	}
}
