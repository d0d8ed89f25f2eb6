package verbal

import (
	"image"
	"math"
)

const defaultLineHitWidth = 2.0

// behavior is the per-kind capability table. Nil entries fall back to the
// generic implementation.
type behavior struct {
	// contains tests a point in the parent's space. Nil means the
	// bounding-box polygon.
	contains func(o *Object, p Point) bool
	// path builds the shape outline in local space sized w x h. Nil means
	// the painter does not handle the kind.
	path func(o *Object, c Canvas, w, h float64)
	// onUpdate refreshes kind-specific derived state after a field update.
	// prev holds the old value of every field that actually changed.
	onUpdate func(o *Object, next, prev Values)
	// render draws the object when the painter declines it. The canvas
	// state is already saved; the object transform is not yet applied.
	render func(o *Object, c Canvas, p Painter)
}

var (
	widgetBehaviors    [WidgetLineTransformer + 1]*behavior
	containerBehaviors [ContainerLayer + 1]*behavior
	emptyBehavior      = &behavior{}
)

func init() {
	widgetBehaviors[WidgetNone] = emptyBehavior
	widgetBehaviors[WidgetRect] = &behavior{path: rectPath}
	widgetBehaviors[WidgetEllipse] = &behavior{
		contains: ellipseContains,
		path:     ellipsePath,
		onUpdate: ellipseUpdate,
	}
	widgetBehaviors[WidgetPolygon] = &behavior{
		contains: polygonContains,
		path:     polygonPath,
		onUpdate: polygonUpdate,
	}
	widgetBehaviors[WidgetLine] = &behavior{
		contains: lineContains,
		path:     linePath,
	}
	widgetBehaviors[WidgetPicture] = &behavior{render: pictureRender}
	widgetBehaviors[WidgetText] = &behavior{render: textRender}
	widgetBehaviors[WidgetTransformer] = &behavior{
		contains: transformerContains,
		onUpdate: transformerUpdate,
		render:   transformerRender,
	}
	widgetBehaviors[WidgetLineTransformer] = &behavior{
		contains: lineTransformerContains,
		render:   lineTransformerRender,
	}

	containerBehaviors[ContainerNone] = emptyBehavior
	containerBehaviors[ContainerGroup] = &behavior{render: groupRender}
	containerBehaviors[ContainerCombination] = &behavior{render: groupRender}
	containerBehaviors[ContainerMultiSelect] = &behavior{
		onUpdate: selectionUpdate,
		render:   selectionRender,
	}
	containerBehaviors[ContainerLayer] = &behavior{
		contains: func(*Object, Point) bool { return false },
	}
}

func widgetBehavior(k WidgetKind) *behavior {
	if int(k) < len(widgetBehaviors) && widgetBehaviors[k] != nil {
		return widgetBehaviors[k]
	}
	return emptyBehavior
}

func containerBehavior(k ContainerKind) *behavior {
	if int(k) < len(containerBehaviors) && containerBehaviors[k] != nil {
		return containerBehaviors[k]
	}
	return emptyBehavior
}

// --- Rect ---

// NewRect creates a rectangle widget. Config.CornerRadius rounds its corners.
func NewRect(cfg Config) *Object {
	return newObject(KindWidget, WidgetRect, ContainerNone, cfg)
}

// CornerRadius returns the rectangle corner radius.
func (o *Object) CornerRadius() float64 { return o.cornerRadius }

// SetCornerRadius changes the rectangle corner radius and requests a redraw.
func (o *Object) SetCornerRadius(r float64) {
	o.cornerRadius = r
	o.requestRedraw()
}

func rectPath(o *Object, c Canvas, w, h float64) {
	r := math.Min(o.cornerRadius, math.Min(math.Abs(w), math.Abs(h))/2)
	c.BeginPath()
	c.RoundRect(0, 0, w, h, math.Max(r, 0))
}

// --- Ellipse ---

// NewEllipse creates an ellipse inscribed in (x, y, width, height).
func NewEllipse(cfg Config) *Object {
	o := newObject(KindWidget, WidgetEllipse, ContainerNone, cfg)
	o.updateAxes()
	return o
}

// Axes returns the unscaled half axes.
func (o *Object) Axes() (axisX, axisY float64) { return o.axisX, o.axisY }

func (o *Object) updateAxes() {
	o.axisX = o.width / 2
	o.axisY = o.height / 2
}

func ellipseUpdate(o *Object, next, _ Values) {
	if next.has(FieldWidth, FieldHeight) {
		o.updateAxes()
	}
}

func ellipseContains(o *Object, p Point) bool {
	rx := o.axisX * o.scaleX
	ry := o.axisY * o.scaleY
	if rx == 0 || ry == 0 {
		return false
	}
	return PointInEllipse(p, rx, ry, o.center, o.rotate, false)
}

func ellipsePath(_ *Object, c Canvas, w, h float64) {
	c.BeginPath()
	c.Ellipse(w/2, h/2, math.Abs(w/2), math.Abs(h/2))
}

// --- Polygon ---

// NewPolygon creates a polygon from Config.Vertices given in the parent's
// space. Position and size are derived from the vertices.
func NewPolygon(cfg Config) *Object {
	o := newObject(KindWidget, WidgetPolygon, ContainerNone, cfg)
	o.setPolygonVertices(cfg.Vertices)
	return o
}

// Vertices returns the shape points in the parent's space. Polygons return
// every vertex and lines their two endpoints.
func (o *Object) Vertices() []Point {
	switch o.widget {
	case WidgetPolygon:
		m := o.Matrix()
		out := make([]Point, len(o.vertices))
		for i, v := range o.vertices {
			out[i] = m.Apply(v)
		}
		return out
	case WidgetLine:
		a, b := o.lineEndpoints()
		return []Point{a, b}
	}
	return nil
}

// SetVertices replaces the points of a polygon, or the two endpoints of a
// line, and requests a redraw. Rotation and scale are reset since the
// points fully describe the shape.
func (o *Object) SetVertices(vertices []Point) {
	switch o.widget {
	case WidgetPolygon:
		o.rotate = 0
		o.scaleX, o.scaleY = 1, 1
		o.setPolygonVertices(vertices)
	case WidgetLine:
		if len(vertices) != 2 {
			return
		}
		o.setLineEndpoints(vertices[0], vertices[1])
	default:
		return
	}
	o.requestRedraw()
}

// setPolygonVertices normalises vertices to their min corner and derives
// x, y, width and height from them.
func (o *Object) setPolygonVertices(vertices []Point) {
	b := MinBoundingBox(vertices)
	o.vertices = make([]Point, len(vertices))
	for i, v := range vertices {
		o.vertices[i] = Point{v.X - b.MinX, v.Y - b.MinY}
	}
	o.x, o.y = b.MinX, b.MinY
	o.width, o.height = b.Width(), b.Height()
	o.updateCenter()
	o.updateBoundingBox()
}

// polygonUpdate stretches the local vertices when the unscaled size changes.
func polygonUpdate(o *Object, _, prev Values) {
	if old, ok := prev[FieldWidth]; ok && old != 0 {
		k := o.width / old
		for i := range o.vertices {
			o.vertices[i].X *= k
		}
	}
	if old, ok := prev[FieldHeight]; ok && old != 0 {
		k := o.height / old
		for i := range o.vertices {
			o.vertices[i].Y *= k
		}
	}
}

func polygonContains(o *Object, p Point) bool {
	return PointInPolygon(p, o.Vertices())
}

func polygonPath(o *Object, c Canvas, w, h float64) {
	if len(o.vertices) == 0 {
		return
	}
	kx, ky := 1.0, 1.0
	if o.width != 0 {
		kx = w / o.width
	}
	if o.height != 0 {
		ky = h / o.height
	}
	c.BeginPath()
	for i, v := range o.vertices {
		if i == 0 {
			c.MoveTo(v.X*kx, v.Y*ky)
		} else {
			c.LineTo(v.X*kx, v.Y*ky)
		}
	}
	c.ClosePath()
}

// --- Line ---

// NewLine creates a segment from Config.Vertices[0] to Config.Vertices[1].
// Without two vertices the segment runs from (X, Y) to (X+Width, Y+Height).
func NewLine(cfg Config) *Object {
	o := newObject(KindWidget, WidgetLine, ContainerNone, cfg)
	if len(cfg.Vertices) == 2 {
		o.setLineEndpoints(cfg.Vertices[0], cfg.Vertices[1])
	}
	return o
}

// setLineEndpoints maps two endpoints onto x, y, width and height. Width and
// height may be negative.
func (o *Object) setLineEndpoints(a, b Point) {
	o.rotate = 0
	o.scaleX, o.scaleY = 1, 1
	o.x, o.y = a.X, a.Y
	o.width, o.height = b.X-a.X, b.Y-a.Y
	o.updateCenter()
	o.updateBoundingBox()
}

func (o *Object) lineEndpoints() (Point, Point) {
	m := o.Matrix()
	return m.Apply(Point{}), m.Apply(Point{o.width, o.height})
}

func lineContains(o *Object, p Point) bool {
	w := o.style.LineWidth
	if w <= 0 {
		w = defaultLineHitWidth
	}
	a, b := o.lineEndpoints()
	return PointOnLineSegment(p, a, b, w)
}

func linePath(_ *Object, c Canvas, w, h float64) {
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(w, h)
}

// --- Picture ---

// NewPicture creates a widget drawing Config.Image into its box. A zero
// Width or Height takes the image's own size.
func NewPicture(cfg Config) *Object {
	if cfg.Image != nil {
		b := cfg.Image.Bounds()
		if cfg.Width == 0 {
			cfg.Width = float64(b.Dx())
		}
		if cfg.Height == 0 {
			cfg.Height = float64(b.Dy())
		}
	}
	o := newObject(KindWidget, WidgetPicture, ContainerNone, cfg)
	o.img = cfg.Image
	return o
}

// Image returns the picture source.
func (o *Object) Image() image.Image { return o.img }

// SetImage swaps the picture source and requests a redraw. Canvases cache
// decoded images by identity, so the next render picks up the new one.
func (o *Object) SetImage(img image.Image) {
	o.img = img
	o.requestRedraw()
}

func pictureRender(o *Object, c Canvas, _ Painter) {
	if o.img == nil {
		return
	}
	applyTransform(c, o, false)
	c.DrawImage(o.img, 0, 0, o.width, o.height)
}

// --- Text ---

// NewText creates a single-line text widget sized by the current
// TextMeasurer.
func NewText(cfg Config) *Object {
	o := newObject(KindWidget, WidgetText, ContainerNone, cfg)
	o.text = cfg.Text
	o.measureText()
	return o
}

// Text returns the text content.
func (o *Object) Text() string { return o.text }

// SetText changes the content, re-measures and requests a redraw.
func (o *Object) SetText(s string) {
	o.text = s
	o.measureText()
	o.requestRedraw()
}

func (o *Object) measureText() {
	w, h := currentMeasurer().MeasureText(o.text, o.style.fontSize())
	o.width, o.height = w, h
	if o.rotate == 0 {
		o.updateCenter()
	} else {
		o.fixCenterAfterResize()
	}
	o.updateBoundingBox()
}

func textRender(o *Object, c Canvas, _ Painter) {
	if o.text == "" {
		return
	}
	col, err := o.style.FillColor()
	if err != nil {
		// Text without a fill color draws in black, like a bare 2D context.
		col, _ = ParseColor("#000")
	}
	applyTransform(c, o, false)
	c.SetFillColor(col)
	c.DrawText(o.text, 0, 0, o.style.fontSize())
}

// --- Style ---

// Style returns the paint properties.
func (o *Object) Style() Style { return o.style }

// SetStyle replaces the paint properties and requests a redraw. Text
// widgets are re-measured when the font size changes.
func (o *Object) SetStyle(s Style) {
	resize := o.widget == WidgetText && s.fontSize() != o.style.fontSize()
	o.style = s
	if resize {
		o.measureText()
	}
	o.requestRedraw()
}
