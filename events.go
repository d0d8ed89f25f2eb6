package verbal

import "time"

// PointerInput is a raw pointer sample in scene coordinates. Adapters map
// device or window coordinates into scene space before building one.
type PointerInput struct {
	X, Y   float64
	Kind   InputKind
	Button MouseButton
	Time   time.Time
}

// Event is the payload passed to handlers. A fresh value is built for every
// dispatch and shared by every handler along one bubble walk.
type Event struct {
	Type EventType
	// Target is the object the event was fired at.
	Target *Object
	// CurrentTarget is the object whose handlers are running.
	CurrentTarget *Object
	// Input is the raw sample that produced the event. Zero for redraw
	// requests.
	Input PointerInput
	X, Y  float64
	Time  time.Time
}

// Point returns the event position in scene coordinates.
func (e *Event) Point() Point { return Point{e.X, e.Y} }

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(*Event)
}

type handlerTable struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered handler.
type CallbackHandle struct {
	id    uint32
	table *handlerTable
	event EventType
}

// Remove unregisters this handler so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.table == nil {
		return
	}
	h.table.byType[h.event] = removeHandler(h.table.byType[h.event], h.id)
}

func removeHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (t *handlerTable) add(ev EventType, fn func(*Event)) CallbackHandle {
	t.nextID++
	id := t.nextID
	t.byType[ev] = append(t.byType[ev], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, table: t, event: ev}
}

// run invokes every handler for ev in registration order. The slice is
// snapshotted so handlers may add or remove handlers while running.
func (t *handlerTable) run(ev EventType, e *Event) {
	hs := t.byType[ev]
	if len(hs) == 0 {
		return
	}
	snapshot := make([]eventHandler, len(hs))
	copy(snapshot, hs)
	for _, h := range snapshot {
		h.fn(e)
	}
}

// --- Object-level registration ---

// On registers fn for events of type ev on this object. Handlers fire in
// registration order.
func (o *Object) On(ev EventType, fn func(*Event)) CallbackHandle {
	return o.handlers.add(ev, fn)
}

// Off removes every handler registered for ev.
func (o *Object) Off(ev EventType) {
	o.handlers.byType[ev] = nil
}

// HasHandlers reports whether any handler is registered for ev.
func (o *Object) HasHandlers(ev EventType) bool {
	return len(o.handlers.byType[ev]) > 0
}

// emit runs this object's own handlers for e.Type with CurrentTarget set to o.
func (o *Object) emit(e *Event) {
	e.CurrentTarget = o
	o.handlers.run(e.Type, e)
}

// onRedrawRequest listens for redraw requests on this object.
func (o *Object) onRedrawRequest(fn func(*Event)) CallbackHandle {
	return o.handlers.add(eventRedrawRequest, fn)
}

// requestRedraw broadcasts a redraw request to this object's own handlers.
// It never renders synchronously.
func (o *Object) requestRedraw() {
	o.emit(&Event{
		Type:   eventRedrawRequest,
		Target: o,
		Time:   time.Now(),
	})
}

// RequestRedraw signals that the object's appearance changed outside the
// field-update protocol, for example after editing Style directly.
func (o *Object) RequestRedraw() {
	o.requestRedraw()
}
