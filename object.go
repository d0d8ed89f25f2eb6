package verbal

import (
	"image"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.jetify.com/typeid/v2"
)

const idPrefix = "obj"

// newObjectID returns a fresh type-prefixed identifier such as
// "obj_01h455vb4pex5vsknk084sn02q".
func newObjectID() string {
	return typeid.MustGenerate(idPrefix).String()
}

// Config is the construction record shared by every object constructor.
// Fields a variant does not use are ignored. A zero ScaleX or ScaleY
// means 1.
type Config struct {
	Name string

	X, Y          float64
	Width, Height float64
	Rotate        float64 // degrees
	ScaleX        float64
	ScaleY        float64

	Style          Style
	FixedLineWidth bool

	CornerRadius float64     // rect
	Vertices     []Point     // polygon, line
	Text         string      // text
	Image        image.Image // picture
}

// Object is the single scene-graph element type. Widgets and containers
// share one flat struct tagged by kind; per-kind behavior comes from a
// capability table rather than embedding.
//
// Geometry is only mutated through SetFields, SilentlyUpdate and Update,
// which keep Center and BoundingBox in sync on every path.
type Object struct {
	// Identity
	id        string
	Name      string
	kind      ObjectKind
	widget    WidgetKind
	container ContainerKind
	behavior  *behavior

	// Geometry (parent space)
	x, y          float64
	width, height float64
	rotate        float64
	scaleX        float64
	scaleY        float64

	// Derived, recomputed on every mutation
	center Point
	bbox   [4]Point

	// Gates
	Visible        bool
	PointerEvents  bool
	FixedLineWidth bool

	// Metadata
	UserData any

	// Hierarchy: non-owning back reference
	parent *Object

	handlers handlerTable

	// Widget data
	style        Style
	cornerRadius float64
	vertices     []Point
	axisX, axisY float64
	text         string
	img          image.Image

	// Container data
	members     *orderedmap.OrderedMap[string, *Object]
	memberHooks map[string]CallbackHandle
	baseW       float64 // group extents captured at the last recompute
	baseH       float64
	layer       *Layer // set on a layer's root only

	// Transformer data
	target     *Object
	targetHook CallbackHandle
	handles    [controlPointCount]Point
}

// newObject allocates an object with defaults applied and derived state
// computed.
func newObject(kind ObjectKind, wk WidgetKind, ck ContainerKind, cfg Config) *Object {
	o := &Object{
		id:             newObjectID(),
		Name:           cfg.Name,
		kind:           kind,
		widget:         wk,
		container:      ck,
		x:              cfg.X,
		y:              cfg.Y,
		width:          cfg.Width,
		height:         cfg.Height,
		rotate:         cfg.Rotate,
		scaleX:         cfg.ScaleX,
		scaleY:         cfg.ScaleY,
		Visible:        true,
		PointerEvents:  true,
		FixedLineWidth: cfg.FixedLineWidth,
		style:          cfg.Style,
		cornerRadius:   cfg.CornerRadius,
	}
	if o.scaleX == 0 {
		o.scaleX = 1
	}
	if o.scaleY == 0 {
		o.scaleY = 1
	}
	if kind == KindContainer {
		o.members = orderedmap.New[string, *Object]()
		o.memberHooks = make(map[string]CallbackHandle)
		o.behavior = containerBehavior(ck)
	} else {
		o.behavior = widgetBehavior(wk)
	}
	o.updateCenter()
	o.updateBoundingBox()
	return o
}

// --- Accessors ---

// ID returns the object's unique, immutable identifier.
func (o *Object) ID() string { return o.id }

// Kind reports whether the object is a widget or a container.
func (o *Object) Kind() ObjectKind { return o.kind }

// WidgetKind returns the shape kind, or WidgetNone for containers.
func (o *Object) WidgetKind() WidgetKind { return o.widget }

// ContainerKind returns the container kind, or ContainerNone for widgets.
func (o *Object) ContainerKind() ContainerKind { return o.container }

// X returns the left edge before rotation.
func (o *Object) X() float64 { return o.x }

// Y returns the top edge before rotation.
func (o *Object) Y() float64 { return o.y }

// Width returns the unscaled width.
func (o *Object) Width() float64 { return o.width }

// Height returns the unscaled height.
func (o *Object) Height() float64 { return o.height }

// Rotate returns the rotation in degrees about Center.
func (o *Object) Rotate() float64 { return o.rotate }

// ScaleX returns the horizontal scale.
func (o *Object) ScaleX() float64 { return o.scaleX }

// ScaleY returns the vertical scale.
func (o *Object) ScaleY() float64 { return o.scaleY }

// FinalWidth returns Width * ScaleX.
func (o *Object) FinalWidth() float64 { return o.width * o.scaleX }

// FinalHeight returns Height * ScaleY.
func (o *Object) FinalHeight() float64 { return o.height * o.scaleY }

// Center returns the rotation pivot, (X + FinalWidth/2, Y + FinalHeight/2).
func (o *Object) Center() Point { return o.center }

// BoundingBox returns the corners of (X, Y, FinalWidth, FinalHeight) rotated
// about Center, clockwise from the unrotated top-left.
func (o *Object) BoundingBox() [4]Point { return o.bbox }

// Parent returns the container holding this object, or nil when detached.
func (o *Object) Parent() *Object { return o.parent }

// Field returns the current value of f. The second result is false for
// unknown fields and for layers, which have no geometry.
func (o *Object) Field(f Field) (float64, bool) {
	if o.container == ContainerLayer {
		return 0, false
	}
	switch f {
	case FieldX:
		return o.x, true
	case FieldY:
		return o.y, true
	case FieldWidth:
		return o.width, true
	case FieldHeight:
		return o.height, true
	case FieldRotate:
		return o.rotate, true
	case FieldScaleX:
		return o.scaleX, true
	case FieldScaleY:
		return o.scaleY, true
	}
	return 0, false
}

// Geometry returns all seven fields as Values.
func (o *Object) Geometry() Values {
	return Values{
		FieldX: o.x, FieldY: o.y,
		FieldWidth: o.width, FieldHeight: o.height,
		FieldRotate: o.rotate,
		FieldScaleX: o.scaleX, FieldScaleY: o.scaleY,
	}
}

func (o *Object) setField(f Field, v float64) {
	switch f {
	case FieldX:
		o.x = v
	case FieldY:
		o.y = v
	case FieldWidth:
		o.width = v
	case FieldHeight:
		o.height = v
	case FieldRotate:
		o.rotate = v
	case FieldScaleX:
		o.scaleX = v
	case FieldScaleY:
		o.scaleY = v
	}
}

// --- Derived state ---

// updateCenter applies the direct formula.
func (o *Object) updateCenter() {
	o.center = Point{
		X: o.x + o.FinalWidth()/2,
		Y: o.y + o.FinalHeight()/2,
	}
}

// fixCenterAfterResize recomputes the center after a size or scale change
// while rotated. The new unrotated center is rotated about the previous
// center and x/y are re-derived from it.
func (o *Object) fixCenterAfterResize() {
	hw := o.FinalWidth() / 2
	hh := o.FinalHeight() / 2
	next := Point{o.x + hw, o.y + hh}
	o.center = RotatePoint(next, o.center, o.rotate, false)
	o.x = o.center.X - hw
	o.y = o.center.Y - hh
}

func (o *Object) updateBoundingBox() {
	o.bbox = RectVertices(o.x, o.y, o.FinalWidth(), o.FinalHeight())
	if o.rotate != 0 {
		for i := range o.bbox {
			o.bbox[i] = RotatePoint(o.bbox[i], o.center, o.rotate, false)
		}
	}
}

// --- Update protocol ---

var (
	sizeFields     = []Field{FieldWidth, FieldHeight, FieldScaleX, FieldScaleY}
	positionFields = []Field{FieldX, FieldY, FieldRotate}
)

// SetFields applies a batch of field values. Size and scale fields are
// applied first, then position and rotation, then the bounding box is
// rebuilt and the kind-specific hook runs. When redraw is true exactly one
// redraw request is emitted afterwards. Layers ignore the call.
func (o *Object) SetFields(values Values, redraw bool) {
	if o.container == ContainerLayer || len(values) == 0 {
		return
	}
	prev := make(Values, len(values))
	for f, v := range values {
		if cur, ok := o.Field(f); ok && cur != v {
			prev[f] = cur
		}
	}

	if values.has(sizeFields...) {
		for _, f := range sizeFields {
			if v, ok := values[f]; ok {
				o.setField(f, v)
			}
		}
		if o.rotate == 0 {
			o.updateCenter()
		} else {
			o.fixCenterAfterResize()
		}
	}
	if values.has(positionFields...) {
		for _, f := range positionFields {
			if v, ok := values[f]; ok {
				o.setField(f, v)
			}
		}
		o.updateCenter()
	}
	o.updateBoundingBox()

	if o.behavior.onUpdate != nil {
		o.behavior.onUpdate(o, values, prev)
	}
	if redraw {
		o.requestRedraw()
	}
}

// SilentlyUpdate sets a single field without emitting a redraw request and
// performs the matching fix-up. Unknown fields and layers are ignored.
func (o *Object) SilentlyUpdate(f Field, v float64) {
	old, ok := o.Field(f)
	if !ok {
		return
	}
	o.setField(f, v)
	switch {
	case f == FieldRotate:
		// The pivot does not move.
	case o.rotate == 0, f == FieldX, f == FieldY:
		o.updateCenter()
	default:
		o.fixCenterAfterResize()
	}
	o.updateBoundingBox()

	if o.behavior.onUpdate != nil {
		prev := Values{}
		if old != v {
			prev[f] = old
		}
		o.behavior.onUpdate(o, Values{f: v}, prev)
	}
}

// Update is SilentlyUpdate followed by one redraw request.
func (o *Object) Update(f Field, v float64) {
	if _, ok := o.Field(f); !ok {
		return
	}
	o.SilentlyUpdate(f, v)
	o.requestRedraw()
}

// MoveTo sets X and Y in one step and requests a redraw.
func (o *Object) MoveTo(x, y float64) {
	o.SetFields(Values{FieldX: x, FieldY: y}, true)
}

// --- Reparenting ---

// transfer points o at newParent. When o is moving between two containers
// the old one drops its slot first through release, which never calls back
// into transfer.
func (o *Object) transfer(newParent *Object) {
	if newParent == o.parent {
		return
	}
	if o.parent != nil && newParent != nil {
		o.parent.release(o)
	}
	o.parent = newParent
}

// release removes member from this container's membership on the owning
// side, including any coordinate restoration, and clears its parent link.
func (o *Object) release(member *Object) {
	switch o.container {
	case ContainerGroup, ContainerCombination:
		o.removeMembers([]*Object{member})
	case ContainerLayer:
		if o.layer != nil && o.layer.removeObjects([]*Object{member}) > 0 {
			o.layer.RequestRender()
		}
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Object) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Hit testing ---

// ContainsPoint reports whether p, given in the parent's space, lies on the
// object's shape.
func (o *Object) ContainsPoint(p Point) bool {
	if o.behavior.contains != nil {
		return o.behavior.contains(o, p)
	}
	return PointInPolygon(p, o.bbox[:])
}

// HitTest returns the deepest pointer-enabled, visible object under p (in
// the parent's space), or nil. Groups return the member hit, or themselves
// when p falls inside their box but on no member. Combinations are picked
// as a unit.
func (o *Object) HitTest(p Point) *Object {
	if !o.Visible || !o.PointerEvents {
		return nil
	}
	if !o.ContainsPoint(p) {
		return nil
	}
	if o.container != ContainerGroup {
		return o
	}
	local := o.ParentToLocal(p)
	for pair := o.members.Newest(); pair != nil; pair = pair.Prev() {
		if hit := pair.Value.HitTest(local); hit != nil {
			return hit
		}
	}
	return o
}
