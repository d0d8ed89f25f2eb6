package verbal

// Point is a 2D coordinate in scene space. The origin is the top-left of the
// drawing surface with Y increasing downward.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned box given by its top-left corner and size, used
// for cheap rejects before exact polygon tests.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies in r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and o share at least one point. Boxes that
// only touch along an edge intersect.
func (r Rect) Intersects(o Rect) bool {
	return o.X <= r.X+r.Width && r.X <= o.X+o.Width &&
		o.Y <= r.Y+r.Height && r.Y <= o.Y+o.Height
}

// ObjectKind separates leaf shapes from containers.
type ObjectKind uint8

const (
	KindWidget    ObjectKind = iota // leaf drawable
	KindContainer                   // owns a membership of other objects
)

func (k ObjectKind) String() string {
	if k == KindContainer {
		return "container"
	}
	return "widget"
}

// WidgetKind selects the shape behavior of a widget.
type WidgetKind uint8

const (
	WidgetNone            WidgetKind = iota // containers
	WidgetRect                              // rounded rectangle
	WidgetEllipse                           // two-axis ellipse
	WidgetPolygon                           // closed vertex list
	WidgetLine                              // two-point segment
	WidgetPicture                           // raster image
	WidgetText                              // single-line text
	WidgetTransformer                       // resize/rotate handles around a target
	WidgetLineTransformer                   // endpoint handles around a line
)

var widgetKindNames = [...]string{
	WidgetNone:            "none",
	WidgetRect:            "rect",
	WidgetEllipse:         "ellipse",
	WidgetPolygon:         "polygon",
	WidgetLine:            "line",
	WidgetPicture:         "picture",
	WidgetText:            "text",
	WidgetTransformer:     "transformer",
	WidgetLineTransformer: "line-transformer",
}

func (k WidgetKind) String() string {
	if int(k) < len(widgetKindNames) {
		return widgetKindNames[k]
	}
	return "unknown"
}

// ContainerKind selects container semantics.
type ContainerKind uint8

const (
	ContainerNone        ContainerKind = iota // widgets
	ContainerGroup                            // rigid, rebases member coordinates
	ContainerCombination                      // a group drawn and picked as one unit
	ContainerMultiSelect                      // transient selection, no rebasing
	ContainerLayer                            // root bound to a drawing surface
)

var containerKindNames = [...]string{
	ContainerNone:        "none",
	ContainerGroup:       "group",
	ContainerCombination: "combination",
	ContainerMultiSelect: "multi-select",
	ContainerLayer:       "layer",
}

func (k ContainerKind) String() string {
	if int(k) < len(containerKindNames) {
		return containerKindNames[k]
	}
	return "unknown"
}

// Field names one of the geometry attributes accepted by the update protocol.
type Field uint8

const (
	FieldX Field = iota
	FieldY
	FieldWidth
	FieldHeight
	FieldRotate // degrees
	FieldScaleX
	FieldScaleY
	fieldCount
)

var fieldNames = [...]string{"x", "y", "width", "height", "rotate", "scaleX", "scaleY"}

func (f Field) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}
	return "unknown"
}

// Values is a partial set of field assignments.
type Values map[Field]float64

// has reports whether any of the given fields is present.
func (v Values) has(fields ...Field) bool {
	for _, f := range fields {
		if _, ok := v[f]; ok {
			return true
		}
	}
	return false
}

// EventType identifies a kind of scene event.
type EventType uint8

const (
	EventClick        EventType = iota // press then release over the same object
	EventPointerDown                   // button pressed
	EventPointerUp                     // button released
	EventPointerMove                   // pointer moved
	EventPointerEnter                  // pointer moved onto an object
	EventPointerLeave                  // pointer moved off an object
	eventRedrawRequest                 // object visual state changed
	eventTypeCount
)

var eventTypeNames = [...]string{
	EventClick:         "click",
	EventPointerDown:   "pointerdown",
	EventPointerUp:     "pointerup",
	EventPointerMove:   "pointermove",
	EventPointerEnter:  "pointerenter",
	EventPointerLeave:  "pointerleave",
	eventRedrawRequest: "redraw-request",
}

func (e EventType) String() string {
	if e < eventTypeCount {
		return eventTypeNames[e]
	}
	return "unknown"
}

// InputKind tags a raw pointer input fed to the dispatcher.
type InputKind uint8

const (
	InputMove InputKind = iota
	InputDown
	InputUp
	InputClick
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
