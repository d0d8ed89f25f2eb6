package verbal

import "time"

// Dispatch routes in to the entry point matching in.Kind and returns the
// object hit, or nil.
func (l *Layer) Dispatch(in PointerInput) *Object {
	switch in.Kind {
	case InputDown:
		return l.DispatchPointerDown(in)
	case InputUp:
		return l.DispatchPointerUp(in)
	case InputClick:
		return l.DispatchClick(in)
	default:
		return l.DispatchPointerMove(in)
	}
}

// DispatchClick fires EventClick at the topmost object under the input and
// bubbles it to the layer.
func (l *Layer) DispatchClick(in PointerInput) *Object {
	return l.fire(EventClick, in)
}

// DispatchPointerDown fires EventPointerDown. See DispatchClick.
func (l *Layer) DispatchPointerDown(in PointerInput) *Object {
	return l.fire(EventPointerDown, in)
}

// DispatchPointerUp fires EventPointerUp. See DispatchClick.
func (l *Layer) DispatchPointerUp(in PointerInput) *Object {
	return l.fire(EventPointerUp, in)
}

// DispatchPointerMove updates hover state and fires EventPointerMove. When
// the object under the pointer changes, EventPointerLeave bubbles from the
// previous object first and EventPointerEnter from the new one after.
func (l *Layer) DispatchPointerMove(in PointerInput) *Object {
	in = stampInput(in)
	p := Point{in.X, in.Y}
	l.lastPoint = p
	hit := l.HitTestTopmost(p)

	if hit != l.hovered {
		if prev := l.hovered; prev != nil {
			// A hovered object removed since the last move still reports
			// leave along the chain it was hovered through.
			path := l.hoverPath
			if l.owns(prev) {
				path = ancestry(prev)
			}
			emitAlong(path, newEvent(EventPointerLeave, prev, in))
		}
		l.hovered = hit
		l.hoverPath = nil
		if hit != nil {
			l.hoverPath = ancestry(hit)
			emitAlong(l.hoverPath, newEvent(EventPointerEnter, hit, in))
		}
	}

	if hit != nil {
		l.hoverPath = ancestry(hit)
		emitAlong(l.hoverPath, newEvent(EventPointerMove, hit, in))
	} else {
		l.fireOnLayer(EventPointerMove, in)
	}
	return hit
}

// Hovered returns the object the pointer is currently over, or nil.
func (l *Layer) Hovered() *Object { return l.hovered }

// LastPoint returns the scene position of the last pointer move.
func (l *Layer) LastPoint() Point { return l.lastPoint }

func (l *Layer) fire(ev EventType, in PointerInput) *Object {
	in = stampInput(in)
	hit := l.HitTestTopmost(Point{in.X, in.Y})
	if hit == nil {
		l.fireOnLayer(ev, in)
		return nil
	}
	l.bubble(hit, newEvent(ev, hit, in))
	return hit
}

// fireOnLayer delivers an event that hit nothing to the layer's own
// handlers, with the root as both target and current target.
func (l *Layer) fireOnLayer(ev EventType, in PointerInput) {
	if !l.root.HasHandlers(ev) {
		return
	}
	l.root.emit(newEvent(ev, l.root, in))
}

// bubble runs e's handlers on target and then on each ancestor up to and
// including the layer root. There is no capture phase. The chain is fixed
// before the first handler runs, so handlers may detach or reparent objects
// on it.
func (l *Layer) bubble(target *Object, e *Event) {
	emitAlong(ancestry(target), e)
}

// ancestry returns o followed by each of its ancestors.
func ancestry(o *Object) []*Object {
	var path []*Object
	for ; o != nil; o = o.parent {
		path = append(path, o)
	}
	return path
}

func emitAlong(path []*Object, e *Event) {
	for _, o := range path {
		o.emit(e)
	}
}

func newEvent(ev EventType, target *Object, in PointerInput) *Event {
	return &Event{
		Type:   ev,
		Target: target,
		Input:  in,
		X:      in.X,
		Y:      in.Y,
		Time:   in.Time,
	}
}

func stampInput(in PointerInput) PointerInput {
	if in.Time.IsZero() {
		in.Time = time.Now()
	}
	return in
}
