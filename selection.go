package verbal

var defaultSelectionStyle = Style{Stroke: "#3c40c6", LineWidth: 1}

// NewMultipleSelectList creates an empty selection. A selection wraps its
// members in a box without taking ownership: members keep their parent and
// coordinates. Moving or rotating the selection moves or rotates every
// member by the same delta. Place the selection in the members' layer so its
// outline is drawn and its changes trigger a render.
func NewMultipleSelectList(name string) *Object {
	return newObject(KindContainer, WidgetNone, ContainerMultiSelect, Config{
		Name:  name,
		Style: defaultSelectionStyle,
	})
}

func (o *Object) selectMembers(objs []*Object) {
	added := 0
	for _, obj := range o.acceptMembers(objs) {
		o.members.Set(obj.id, obj)
		added++
	}
	if added == 0 {
		return
	}
	o.Refresh()
}

func (o *Object) unselectMembers(objs []*Object) {
	removed := 0
	for _, obj := range objs {
		if o.Contains(obj) {
			o.members.Delete(obj.id)
			removed++
		}
	}
	if removed == 0 {
		return
	}
	o.Refresh()
}

// Refresh re-wraps a selection around its members, for example after a
// member was edited directly, and requests a redraw.
func (o *Object) Refresh() {
	if o.container != ContainerMultiSelect {
		return
	}
	o.recomputeBox()
	o.requestRedraw()
}

// selectionUpdate applies position and rotation deltas to every member.
// Size and scale changes only resize the selection box.
func selectionUpdate(o *Object, _, prev Values) {
	var dx, dy, dr float64
	if old, ok := prev[FieldX]; ok {
		dx = o.x - old
	}
	if old, ok := prev[FieldY]; ok {
		dy = o.y - old
	}
	if old, ok := prev[FieldRotate]; ok {
		dr = o.rotate - old
	}
	if dx == 0 && dy == 0 && dr == 0 {
		return
	}
	for pair := o.members.Oldest(); pair != nil; pair = pair.Next() {
		m := pair.Value
		c := Point{m.center.X + dx, m.center.Y + dy}
		c = RotatePoint(c, o.center, dr, false)
		m.SetFields(Values{
			FieldX:      c.X - m.FinalWidth()/2,
			FieldY:      c.Y - m.FinalHeight()/2,
			FieldRotate: m.rotate + dr,
		}, false)
	}
}

func selectionRender(o *Object, c Canvas, _ Painter) {
	if o.Size() == 0 || !o.style.HasStroke() {
		return
	}
	col, err := o.style.StrokeColor()
	if err != nil {
		Logger().Warn("selection style", "id", o.id, "err", err)
		return
	}
	c.SetStrokeColor(col)
	c.SetLineWidth(o.style.lineWidth())
	c.BeginPath()
	for i, p := range o.bbox {
		if i == 0 {
			c.MoveTo(p.X, p.Y)
		} else {
			c.LineTo(p.X, p.Y)
		}
	}
	c.ClosePath()
	strokeLogged(c, o)
}
