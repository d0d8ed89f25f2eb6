package verbal

import (
	"image/color"
	"time"
)

// FrameScheduler runs a callback on the next animation frame. The layer uses
// it to coalesce redraw requests into one render per frame.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is the default FrameScheduler. Queued callbacks run on the next
// Flush, which Layer.Tick calls. Callbacks queued while flushing wait for
// the following Flush.
type FrameQueue struct {
	pending []func()
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of queued callbacks.
func (q *FrameQueue) Len() int { return len(q.pending) }

// Flush runs every callback queued before the call and returns how many ran.
func (q *FrameQueue) Flush() int {
	fns := q.pending
	q.pending = nil
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Animator is advanced once per Layer.Tick. Advance returns true when the
// animator has finished and should be dropped.
type Animator interface {
	Advance(dt time.Duration) bool
}

// LayerOption configures a Layer at construction.
type LayerOption func(*Layer)

// WithPainter replaces the default BasePainter.
func WithPainter(p Painter) LayerOption {
	return func(l *Layer) {
		if p != nil {
			l.painter = p
		}
	}
}

// WithScheduler replaces the default FrameQueue. Layer.Tick then only
// advances animators; the scheduler owner runs the frames.
func WithScheduler(s FrameScheduler) LayerOption {
	return func(l *Layer) {
		if s != nil {
			l.scheduler = s
			l.queue = nil
		}
	}
}

// WithBackground paints every frame with c after clearing.
func WithBackground(c color.Color) LayerOption {
	return func(l *Layer) {
		l.background = c
	}
}

// Layer is the root of a scene bound to one drawing surface. It owns the
// ordered list of top-level objects, the painter, render coalescing and
// pointer dispatch. A Layer has no geometry of its own.
type Layer struct {
	root       *Object
	canvas     Canvas
	painter    Painter
	scheduler  FrameScheduler
	queue      *FrameQueue // the default scheduler, nil when replaced
	background color.Color

	// Render coalescing
	pending    bool
	requesters []*Object

	// Dispatch state
	hovered   *Object
	hoverPath []*Object // hovered and its ancestors at the last move
	lastPoint Point

	animators []Animator
}

// NewLayer creates a layer drawing onto c. A nil canvas gives a headless
// layer that keeps its scene and dispatches input but never renders.
func NewLayer(c Canvas, opts ...LayerOption) *Layer {
	root := newObject(KindContainer, WidgetNone, ContainerLayer, Config{Name: "layer"})
	q := &FrameQueue{}
	l := &Layer{
		root:      root,
		canvas:    c,
		painter:   BasePainter{},
		scheduler: q,
		queue:     q,
	}
	root.layer = l
	root.onRedrawRequest(l.handleRedrawRequest)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Root returns the layer-kind object every top-level member is parented to.
func (l *Layer) Root() *Object { return l.root }

// Canvas returns the drawing surface, or nil for a headless layer.
func (l *Layer) Canvas() Canvas { return l.canvas }

// Painter returns the active painter.
func (l *Layer) Painter() Painter { return l.painter }

// SetPainter replaces the painter and requests a render. A nil painter
// restores BasePainter.
func (l *Layer) SetPainter(p Painter) {
	if p == nil {
		p = BasePainter{}
	}
	l.painter = p
	l.RequestRender()
}

// On registers a layer-level handler. Layer handlers run last in every
// bubble walk and also receive events that hit nothing.
func (l *Layer) On(ev EventType, fn func(*Event)) CallbackHandle {
	return l.root.On(ev, fn)
}

// --- Membership ---

// Place adds obj on top of the layer. See PlaceArray.
func (l *Layer) Place(obj *Object) {
	l.PlaceArray([]*Object{obj})
}

// PlaceArray adds objects on top in order, taking them out of any previous
// container. Nil entries, objects already placed and layer roots are
// skipped. The layer renders once if anything was added.
func (l *Layer) PlaceArray(objs []*Object) {
	added := 0
	for _, obj := range objs {
		if obj == nil || obj.container == ContainerLayer || l.root.Contains(obj) {
			continue
		}
		obj.transfer(l.root)
		l.root.members.Set(obj.id, obj)
		l.root.hookMember(obj)
		added++
	}
	if added == 0 {
		return
	}
	debugCheckContainer(l.root)
	l.Render()
}

// Remove takes obj off the layer. See RemoveArray.
func (l *Layer) Remove(obj *Object) {
	l.RemoveArray([]*Object{obj})
}

// RemoveArray takes objects off the layer and detaches them. Objects that
// are not top-level members are ignored. The layer renders once if anything
// was removed.
func (l *Layer) RemoveArray(objs []*Object) {
	if l.removeObjects(objs) > 0 {
		l.Render()
	}
}

// removeObjects drops the membership slots and detaches the objects. It
// never renders.
func (l *Layer) removeObjects(objs []*Object) int {
	removed := 0
	for _, obj := range objs {
		if !l.root.Contains(obj) {
			continue
		}
		l.root.members.Delete(obj.id)
		l.root.unhookMember(obj)
		obj.transfer(nil)
		removed++
	}
	return removed
}

// Clear removes every object.
func (l *Layer) Clear() {
	l.RemoveArray(l.Objects())
}

// Size returns the number of top-level objects.
func (l *Layer) Size() int { return l.root.Size() }

// Contains reports whether obj is a top-level member.
func (l *Layer) Contains(obj *Object) bool { return l.root.Contains(obj) }

// Objects returns the top-level objects from bottom to top.
func (l *Layer) Objects() []*Object { return l.root.Members() }

// ChangeObjectIndex moves obj to position index in the drawing order, 0
// being the bottom, and renders. It panics when index is out of range and
// ignores objects that are not top-level members.
func (l *Layer) ChangeObjectIndex(obj *Object, index int) {
	if !l.root.Contains(obj) {
		return
	}
	n := l.root.members.Len()
	if index < 0 || index >= n {
		panic("verbal: object index out of range")
	}
	i := 0
	for pair := l.root.members.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == obj {
			continue
		}
		if i == index {
			_ = l.root.members.MoveBefore(obj.id, pair.Key)
			l.Render()
			return
		}
		i++
	}
	_ = l.root.members.MoveToBack(obj.id)
	l.Render()
}

// HitTestTopmost returns the deepest object under p, searching top-level
// objects from the top of the drawing order down, or nil.
func (l *Layer) HitTestTopmost(p Point) *Object {
	objs := l.Objects()
	for i := len(objs) - 1; i >= 0; i-- {
		if hit := objs[i].HitTest(p); hit != nil {
			return hit
		}
	}
	return nil
}

// --- Rendering ---

// Render clears the surface and draws every visible object from bottom to
// top. Headless layers do nothing.
func (l *Layer) Render() {
	c := l.canvas
	if c == nil {
		return
	}
	c.Clear()
	if l.background != nil {
		w, h := c.Size()
		c.Save()
		c.SetFillColor(l.background)
		c.BeginPath()
		c.RoundRect(0, 0, float64(w), float64(h), 0)
		if err := c.Fill(); err != nil {
			Logger().Warn("fill background", "err", err)
		}
		c.Restore()
	}
	for _, obj := range l.Objects() {
		drawObject(c, l.painter, obj)
	}
}

// RequestRender schedules a render on the next frame, coalesced with any
// redraw requests already pending.
func (l *Layer) RequestRender() {
	l.schedule(l.root)
}

func (l *Layer) handleRedrawRequest(e *Event) {
	l.schedule(e.Target)
}

func (l *Layer) schedule(requester *Object) {
	l.requesters = append(l.requesters, requester)
	if l.pending {
		return
	}
	l.pending = true
	l.scheduler.RequestFrame(l.flush)
}

// flush renders once if any requester is still in the scene. Requests from
// objects removed since scheduling are dropped.
func (l *Layer) flush() {
	reqs := l.requesters
	l.pending = false
	l.requesters = nil
	for _, r := range reqs {
		if l.owns(r) {
			Logger().Debug("flushing frame", "requests", len(reqs))
			l.Render()
			return
		}
	}
	Logger().Debug("dropped stale frame", "requests", len(reqs))
}

// owns reports whether o is the root or nested anywhere under it.
func (l *Layer) owns(o *Object) bool {
	for p := o; p != nil; p = p.parent {
		if p == l.root {
			return true
		}
	}
	return false
}

// Animate registers a to be advanced on every Tick until it finishes.
func (l *Layer) Animate(a Animator) {
	if a == nil {
		return
	}
	for _, cur := range l.animators {
		if cur == a {
			return
		}
	}
	l.animators = append(l.animators, a)
}

// Tick advances animators by dt and then runs the frames queued on the
// default FrameQueue, so changes made by animators render in the same tick.
func (l *Layer) Tick(dt time.Duration) {
	current := l.animators
	l.animators = nil
	for _, a := range current {
		if !a.Advance(dt) {
			l.animators = append(l.animators, a)
		}
	}
	if l.queue != nil {
		l.queue.Flush()
	}
}
