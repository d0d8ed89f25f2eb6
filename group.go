package verbal

// NewGroup creates an empty group. Members placed into a group are rebased
// into its local space and follow its transform.
func NewGroup(name string) *Object {
	return newObject(KindContainer, WidgetNone, ContainerGroup, Config{Name: name})
}

// NewCombination creates an empty combination: a group that is hit-tested
// and selected as a single unit.
func NewCombination(name string) *Object {
	return newObject(KindContainer, WidgetNone, ContainerCombination, Config{Name: name})
}

func (o *Object) mustBeContainer(op string) {
	if o.kind != KindContainer {
		panic("verbal: " + op + " called on a " + o.widget.String() + " widget")
	}
}

// Place adds obj to the container. See PlaceArray.
func (o *Object) Place(obj *Object) {
	o.PlaceArray([]*Object{obj})
}

// PlaceArray adds objects to the container in order. Nil entries, objects
// already contained, the container itself, its ancestors and multi-select
// lists are skipped. Groups take ownership of the survivors, pulling them out
// of their previous container, and re-wrap their box tightly around all
// members. One redraw request is emitted if anything was added.
func (o *Object) PlaceArray(objs []*Object) {
	o.mustBeContainer("Place")
	switch o.container {
	case ContainerLayer:
		o.layer.PlaceArray(objs)
	case ContainerMultiSelect:
		o.selectMembers(objs)
	default:
		o.placeMembers(objs)
	}
}

// Remove takes obj out of the container. See RemoveArray.
func (o *Object) Remove(obj *Object) {
	o.RemoveArray([]*Object{obj})
}

// RemoveArray takes objects out of the container. Group members get their
// parent-space coordinates back and are detached. Objects that are not
// members are ignored.
func (o *Object) RemoveArray(objs []*Object) {
	o.mustBeContainer("Remove")
	switch o.container {
	case ContainerLayer:
		o.layer.RemoveArray(objs)
	case ContainerMultiSelect:
		o.unselectMembers(objs)
	default:
		o.removeMembers(objs)
	}
}

// Clear removes every member.
func (o *Object) Clear() {
	o.mustBeContainer("Clear")
	o.RemoveArray(o.Members())
}

// Size returns the number of members.
func (o *Object) Size() int {
	if o.members == nil {
		return 0
	}
	return o.members.Len()
}

// Contains reports whether obj is a direct member.
func (o *Object) Contains(obj *Object) bool {
	if obj == nil || o.members == nil {
		return false
	}
	m, ok := o.members.Get(obj.id)
	return ok && m == obj
}

// Members returns the members in insertion (drawing) order.
func (o *Object) Members() []*Object {
	if o.members == nil {
		return nil
	}
	out := make([]*Object, 0, o.members.Len())
	for pair := o.members.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// acceptMembers drops entries that cannot join o.
func (o *Object) acceptMembers(objs []*Object) []*Object {
	seen := make(map[*Object]struct{}, len(objs))
	out := make([]*Object, 0, len(objs))
	for _, obj := range objs {
		if obj == nil || o.Contains(obj) {
			continue
		}
		if obj.container == ContainerMultiSelect || obj.container == ContainerLayer {
			continue
		}
		if isAncestor(obj, o) {
			continue
		}
		if _, dup := seen[obj]; dup {
			continue
		}
		seen[obj] = struct{}{}
		out = append(out, obj)
	}
	return out
}

func (o *Object) placeMembers(objs []*Object) {
	added := o.acceptMembers(objs)
	if len(added) == 0 {
		return
	}
	o.unbakeMembers()
	for _, m := range added {
		m.transfer(o)
		o.members.Set(m.id, m)
		o.hookMember(m)
	}
	o.recomputeBox()
	o.bakeMembers()
	debugCheckContainer(o)
	o.requestRedraw()
}

func (o *Object) removeMembers(objs []*Object) {
	removed := make([]*Object, 0, len(objs))
	for _, m := range objs {
		if o.Contains(m) {
			removed = append(removed, m)
		}
	}
	if len(removed) == 0 {
		return
	}
	o.unbakeMembers()
	for _, m := range removed {
		o.members.Delete(m.id)
		o.unhookMember(m)
		m.transfer(nil)
	}
	o.recomputeBox()
	o.bakeMembers()
	o.requestRedraw()
}

// hookMember forwards the member's redraw requests as this container's own.
// The event keeps the member as Target.
func (o *Object) hookMember(m *Object) {
	o.memberHooks[m.id] = m.onRedrawRequest(func(e *Event) {
		o.emit(e)
	})
}

func (o *Object) unhookMember(m *Object) {
	if h, ok := o.memberHooks[m.id]; ok {
		h.Remove()
		delete(o.memberHooks, m.id)
	}
}

// unbakeMembers converts every member from the group's local drawing space
// to the group's parent space. Scale multiplies by the group's local scale
// and rotation adds the group's rotation. Non-uniform group scale on a
// rotated member cannot be expressed without skew and is approximated.
func (o *Object) unbakeMembers() {
	sx, sy := o.localScale()
	m := o.Matrix()
	for pair := o.members.Oldest(); pair != nil; pair = pair.Next() {
		mem := pair.Value
		c := m.Apply(mem.center)
		nsx, nsy := mem.scaleX*sx, mem.scaleY*sy
		fw, fh := mem.width*nsx, mem.height*nsy
		mem.SetFields(Values{
			FieldScaleX: nsx,
			FieldScaleY: nsy,
			FieldRotate: mem.rotate + o.rotate,
			FieldX:      c.X - fw/2,
			FieldY:      c.Y - fh/2,
		}, false)
	}
}

// bakeMembers converts every member into the group's freshly recomputed
// local space, which is its parent space shifted by the group origin.
func (o *Object) bakeMembers() {
	for pair := o.members.Oldest(); pair != nil; pair = pair.Next() {
		mem := pair.Value
		mem.SetFields(Values{FieldX: mem.x - o.x, FieldY: mem.y - o.y}, false)
	}
}

// recomputeBox wraps the container tightly around its members' bounding
// boxes, which must be in the container's parent space. Rotation and scale
// reset to their identity values.
func (o *Object) recomputeBox() {
	boxes := make([][]Point, 0, o.members.Len())
	for pair := o.members.Oldest(); pair != nil; pair = pair.Next() {
		bb := pair.Value.bbox
		boxes = append(boxes, bb[:])
	}
	if len(boxes) == 0 {
		o.width, o.height = 0, 0
	} else {
		b := GroupBoundingBox(boxes)
		o.x, o.y = b.MinX, b.MinY
		o.width, o.height = b.Width(), b.Height()
	}
	o.rotate = 0
	o.scaleX, o.scaleY = 1, 1
	o.baseW, o.baseH = o.width, o.height
	o.updateCenter()
	o.updateBoundingBox()
}

func groupRender(o *Object, c Canvas, p Painter) {
	applyTransform(c, o, false)
	for pair := o.members.Oldest(); pair != nil; pair = pair.Next() {
		drawObject(c, p, pair.Value)
	}
}
