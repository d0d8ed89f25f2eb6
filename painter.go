package verbal

// Painter draws a single object onto a canvas. Draw returns false when it
// does not handle the object, in which case the layer falls back to the
// object's own render path.
type Painter interface {
	Draw(c Canvas, o *Object) bool
}

// BasePainter is the default Painter. It fills and strokes rect, ellipse,
// polygon and line widgets from their Style and declines everything else.
type BasePainter struct{}

// Draw implements Painter.
func (BasePainter) Draw(c Canvas, o *Object) bool {
	if o.kind != KindWidget {
		return false
	}
	b := o.behavior
	if b.path == nil {
		return false
	}

	c.Save()
	defer c.Restore()

	applyTransform(c, o, o.FixedLineWidth)
	w, h := o.width, o.height
	if o.FixedLineWidth {
		w, h = o.FinalWidth(), o.FinalHeight()
	}

	s := o.style
	fill, fillErr := s.FillColor()
	stroke, strokeErr := s.StrokeColor()
	if s.HasFill() && fillErr != nil {
		Logger().Warn("fill color", "id", o.id, "err", fillErr)
	}
	if s.HasStroke() && strokeErr != nil {
		Logger().Warn("stroke color", "id", o.id, "err", strokeErr)
	}
	c.SetLineWidth(s.lineWidth())

	b.path(o, c, w, h)

	if s.HasFill() && fillErr == nil {
		c.SetFillColor(fill)
		if err := c.Fill(); err != nil {
			Logger().Warn("fill", "id", o.id, "kind", o.widget.String(), "err", err)
		}
	}
	if s.HasStroke() && strokeErr == nil {
		c.SetStrokeColor(stroke)
		strokeLogged(c, o)
	}
	return true
}

// drawObject renders o and, for containers, its members. Invisible objects
// are skipped along with their subtree.
func drawObject(c Canvas, p Painter, o *Object) {
	if !o.Visible {
		return
	}
	if p.Draw(c, o) {
		return
	}
	if o.behavior.render == nil {
		return
	}
	c.Save()
	defer c.Restore()
	o.behavior.render(o, c, p)
}
