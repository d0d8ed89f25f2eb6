package ebitenview

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/verbal"
)

type paintState struct {
	m            verbal.Matrix
	fill, stroke color.Color
	lineWidth    float64
}

// Canvas implements verbal.Canvas on an offscreen ebiten image. Paths are
// transformed on the CPU as they are built, so fills and strokes are drawn
// with ebiten's vector package in surface coordinates.
type Canvas struct {
	img    *ebiten.Image
	state  paintState
	stack  []paintState
	path   vector.Path
	images map[image.Image]*ebiten.Image
}

// NewCanvas allocates a width x height offscreen canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: ebiten.NewImage(width, height),
		state: paintState{
			m:         verbal.IdentityMatrix,
			fill:      color.Black,
			stroke:    color.Black,
			lineWidth: 1,
		},
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Image returns the offscreen target.
func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear() {
	c.img.Clear()
	c.path = vector.Path{}
}

func (c *Canvas) Save() { c.stack = append(c.stack, c.state) }

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) {
	c.state.m = c.state.m.Multiply(verbal.TranslateMatrix(x, y))
}

func (c *Canvas) Rotate(rad float64) {
	c.state.m = c.state.m.Multiply(verbal.RotateMatrix(rad))
}

func (c *Canvas) Scale(sx, sy float64) {
	c.state.m = c.state.m.Multiply(verbal.ScaleMatrix(sx, sy))
}

func (c *Canvas) point(x, y float64) (float32, float32) {
	p := c.state.m.Apply(verbal.Point{X: x, Y: y})
	return float32(p.X), float32(p.Y)
}

func (c *Canvas) BeginPath() { c.path = vector.Path{} }

func (c *Canvas) MoveTo(x, y float64) { c.path.MoveTo(c.point(x, y)) }

func (c *Canvas) LineTo(x, y float64) { c.path.LineTo(c.point(x, y)) }

// CubicTo implements verbal.PathBuilder.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ax, ay := c.point(c1x, c1y)
	bx, by := c.point(c2x, c2y)
	ex, ey := c.point(x, y)
	c.path.CubicTo(ax, ay, bx, by, ex, ey)
}

func (c *Canvas) ClosePath() { c.path.Close() }

func (c *Canvas) RoundRect(x, y, w, h, r float64) {
	verbal.AppendRoundRect(c, x, y, w, h, r)
}

func (c *Canvas) Ellipse(cx, cy, rx, ry float64) {
	verbal.AppendEllipse(c, cx, cy, rx, ry)
}

func (c *Canvas) SetFillColor(col color.Color)   { c.state.fill = col }
func (c *Canvas) SetStrokeColor(col color.Color) { c.state.stroke = col }
func (c *Canvas) SetLineWidth(w float64)         { c.state.lineWidth = w }

func pathOptions(col color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(col)
	return op
}

func (c *Canvas) Fill() error {
	vector.FillPath(c.img, &c.path, &vector.FillOptions{FillRule: vector.FillRuleNonZero}, pathOptions(c.state.fill))
	return nil
}

// Stroke draws the current path with the line width scaled by the current
// transform, matching what a transformed 2D context does.
func (c *Canvas) Stroke() error {
	w := c.state.lineWidth * c.state.m.ScaleFactor()
	vector.StrokePath(c.img, &c.path, &vector.StrokeOptions{
		Width:    float32(w),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}, pathOptions(c.state.stroke))
	return nil
}

// DrawImage draws img scaled into (x, y, w, h). Uploaded textures are
// cached per image value.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	tex, ok := c.images[img]
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		c.images[img] = tex
	}
	b := tex.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geoM(c.state.m))
	c.img.DrawImage(tex, op)
}

// DrawText draws s with its top-left at (x, y) under the current transform.
func (c *Canvas) DrawText(s string, x, y, size float64) {
	src := defaultFaceSource()
	if src == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geoM(c.state.m))
	op.ColorScale.ScaleWithColor(c.state.fill)
	text.Draw(c.img, s, &text.GoTextFace{Source: src, Size: size}, op)
}

// Pixels reads region r back as straight-alpha NRGBA. It may only be called
// while the game loop is running.
func (c *Canvas) Pixels(r image.Rectangle) *image.NRGBA {
	r = r.Intersect(c.img.Bounds())
	sub := c.img.SubImage(r).(*ebiten.Image)
	rgba := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	sub.ReadPixels(rgba.Pix)
	out := image.NewNRGBA(rgba.Bounds())
	draw.Draw(out, out.Bounds(), rgba, image.Point{}, draw.Src)
	return out
}

func geoM(m verbal.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

var (
	faceOnce   sync.Once
	faceSource *text.GoTextFaceSource
)

func defaultFaceSource() *text.GoTextFaceSource {
	faceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			verbal.Logger().Warn("ebitenview: load default font", "err", err)
			return
		}
		faceSource = src
	})
	return faceSource
}

// TextMeasurer sizes text with the same face the canvas draws with.
type TextMeasurer struct{}

// MeasureText implements verbal.TextMeasurer.
func (TextMeasurer) MeasureText(s string, size float64) (float64, float64) {
	src := defaultFaceSource()
	if src == nil {
		return 0, 0
	}
	face := &text.GoTextFace{Source: src, Size: size}
	w, _ := text.Measure(s, face, 0)
	m := face.Metrics()
	return w, m.HAscent + m.HDescent
}
