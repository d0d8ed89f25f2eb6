// Package demo builds the interactive sample scene shown by the verbal
// command: a combination of overlapping shapes, loose widgets, and a pair of
// transformers that edit whatever was pressed last.
package demo

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/phanxgames/verbal"
)

type dragMode uint8

const (
	dragNone dragMode = iota
	dragMove
	dragResize
	dragLine
)

const (
	polygonFill  = "#dc143c"
	polygonHot   = "#ff6b81"
	wobblePeriod = 2 * time.Second
)

// Scene holds the demo objects and the pointer drag state.
type Scene struct {
	Layer           *verbal.Layer
	Combination     *verbal.Object
	Polygon         *verbal.Object
	Text            *verbal.Object
	Line            *verbal.Object
	Picture         *verbal.Object
	Transformer     *verbal.Transformer
	LineTransformer *verbal.LineTransformer

	wobble  *verbal.Animation
	picked  *verbal.Object
	drag    dragMode
	cp      verbal.ControlPoint
	lineIdx int
	last    verbal.Point
}

// Build places the demo objects on l and wires pointer handling to it.
func Build(l *verbal.Layer) *Scene {
	s := &Scene{Layer: l}

	rect := verbal.NewRect(verbal.Config{
		Name: "rect", X: 200, Y: 100, Width: 200, Height: 200, FixedLineWidth: true,
		Style: verbal.Style{Fill: "#2e8b57", Stroke: "#0000ff", LineWidth: 12},
	})
	rect2 := verbal.NewRect(verbal.Config{
		Name: "rect2", X: 300, Y: 300, Width: 200, Height: 200, FixedLineWidth: true, CornerRadius: 16,
		Style: verbal.Style{Fill: "#eccc68", Stroke: "#008000", LineWidth: 6},
	})
	ellipse := verbal.NewEllipse(verbal.Config{
		Name: "ellipse", X: 200, Y: 200, Width: 200, Height: 200,
		Style: verbal.Style{Fill: "#ffa500", Opacity: 0.8},
	})
	s.Combination = verbal.NewCombination("combination")
	s.Combination.PlaceArray([]*verbal.Object{rect, ellipse, rect2})

	s.Polygon = verbal.NewPolygon(verbal.Config{
		Name:     "polygon",
		Vertices: []verbal.Point{{X: 620, Y: 300}, {X: 520, Y: 300}, {X: 570, Y: 400}},
		Style:    verbal.Style{Fill: polygonFill},
	})
	s.Text = verbal.NewText(verbal.Config{
		Name: "text", X: 40, Y: 30, Text: "Hello World!",
		Style: verbal.Style{Fill: "#0000ff", FontSize: 40},
	})
	s.Line = verbal.NewLine(verbal.Config{
		Name:     "line",
		Vertices: []verbal.Point{{X: 560, Y: 100}, {X: 720, Y: 200}},
		Style:    verbal.Style{Stroke: "#008000", LineWidth: 10},
	})
	s.Picture = verbal.NewPicture(verbal.Config{
		Name: "picture", X: 560, Y: 440, Width: 160, Height: 100,
		Image: checkerboard(16, 10, 8),
	})
	s.Transformer = verbal.NewTransformer("transformer")
	s.LineTransformer = verbal.NewLineTransformer("line-transformer")

	l.PlaceArray([]*verbal.Object{
		s.Combination, s.Polygon, s.Text, s.Line, s.Picture,
		s.Transformer.Object, s.LineTransformer.Object,
	})

	s.Polygon.On(verbal.EventPointerEnter, func(*verbal.Event) { s.setPolygonFill(polygonHot) })
	s.Polygon.On(verbal.EventPointerLeave, func(*verbal.Event) { s.setPolygonFill(polygonFill) })

	l.On(verbal.EventPointerDown, s.pointerDown)
	l.On(verbal.EventPointerMove, s.pointerMove)
	l.On(verbal.EventPointerUp, func(*verbal.Event) { s.drag = dragNone })
	return s
}

func (s *Scene) setPolygonFill(fill string) {
	st := s.Polygon.Style()
	st.Fill = fill
	s.Polygon.SetStyle(st)
}

// Selected returns the object the transformers are attached to, or nil.
func (s *Scene) Selected() *verbal.Object { return s.picked }

// Select attaches the matching transformer to o and detaches the other.
// A nil o clears the selection.
func (s *Scene) Select(o *verbal.Object) {
	s.picked = o
	if o != nil && o.WidgetKind() == verbal.WidgetLine {
		s.Transformer.LinkTo(nil)
		s.LineTransformer.LinkTo(o)
		return
	}
	s.LineTransformer.LinkTo(nil)
	s.Transformer.LinkTo(o)
}

func (s *Scene) pointerDown(e *verbal.Event) {
	p := e.Point()
	s.last = p
	s.drag = dragNone
	switch e.Target {
	case s.Transformer.Object:
		if cp, ok := s.Transformer.ControlPointAt(p); ok {
			s.drag, s.cp = dragResize, cp
		}
		return
	case s.LineTransformer.Object:
		if i, ok := s.LineTransformer.ControlPointAt(p); ok {
			s.drag, s.lineIdx = dragLine, i
		}
		return
	case s.Layer.Root():
		s.Select(nil)
		return
	}
	s.Select(topLevel(e.Target, s.Layer.Root()))
	s.drag = dragMove
}

func (s *Scene) pointerMove(e *verbal.Event) {
	p := e.Point()
	switch s.drag {
	case dragMove:
		if s.picked != nil {
			d := p.Sub(s.last)
			s.picked.MoveTo(s.picked.X()+d.X, s.picked.Y()+d.Y)
		}
	case dragResize:
		s.cp = s.Transformer.TransformTarget(p, s.cp, false)
	case dragLine:
		s.LineTransformer.TransformTarget(p, s.lineIdx)
	}
	s.last = p
}

// topLevel returns the ancestor of o that sits directly under root.
func topLevel(o, root *verbal.Object) *verbal.Object {
	for o.Parent() != nil && o.Parent() != root {
		o = o.Parent()
	}
	return o
}

// StartWobble swings the picture left and right until StopWobble.
func (s *Scene) StartWobble() {
	if s.wobble != nil && s.wobble.Running() {
		return
	}
	baseX := s.Picture.X()
	s.wobble = verbal.NewAnimation(func(elapsed, _ time.Duration) bool {
		phase := 2 * math.Pi * elapsed.Seconds() / wobblePeriod.Seconds()
		s.Picture.Update(verbal.FieldX, baseX+60*math.Sin(phase))
		return true
	})
	s.wobble.Start(s.Layer)
}

// StopWobble halts the picture animation.
func (s *Scene) StopWobble() {
	if s.wobble != nil {
		s.wobble.Stop()
	}
}

func checkerboard(cols, rows, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, cols*cell, rows*cell))
	dark := color.NRGBA{0x48, 0x54, 0x60, 0xff}
	light := color.NRGBA{0xd2, 0xda, 0xe2, 0xff}
	for y := 0; y < rows*cell; y++ {
		for x := 0; x < cols*cell; x++ {
			c := light
			if (x/cell+y/cell)%2 == 0 {
				c = dark
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
