package verbal

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
)

type paintState struct {
	fill, stroke color.Color
	lineWidth    float64
}

// ImageCanvas is a headless Canvas backed by a gg software context. It is
// used for bitmap export and for rendering without a window.
//
// Text is drawn upright at the transformed anchor point; rotation and scale
// do not apply to glyphs.
type ImageCanvas struct {
	dc     *gg.Context
	fonts  *FontSet
	state  paintState
	stack  []paintState
	images map[image.Image]*gg.ImageBuf
}

// NewImageCanvas creates a transparent canvas of the given size.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{
		dc:     gg.NewContext(width, height),
		fonts:  defaultFonts(),
		state:  paintState{fill: color.Black, stroke: color.Black, lineWidth: defaultLineWidth},
		images: make(map[image.Image]*gg.ImageBuf),
	}
}

// SetFonts replaces the font set used by DrawText.
func (c *ImageCanvas) SetFonts(f *FontSet) { c.fonts = f }

// Context exposes the underlying gg context.
func (c *ImageCanvas) Context() *gg.Context { return c.dc }

// Image returns the current pixels.
func (c *ImageCanvas) Image() image.Image { return c.dc.Image() }

// Close releases the gg context.
func (c *ImageCanvas) Close() error { return c.dc.Close() }

func (c *ImageCanvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

func (c *ImageCanvas) Clear() {
	c.dc.ClearPath()
	c.dc.Clear()
}

func (c *ImageCanvas) Save() {
	c.dc.Push()
	c.stack = append(c.stack, c.state)
}

func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.dc.Pop()
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *ImageCanvas) Translate(x, y float64) { c.dc.Translate(x, y) }
func (c *ImageCanvas) Rotate(rad float64)     { c.dc.Rotate(rad) }
func (c *ImageCanvas) Scale(sx, sy float64)   { c.dc.Scale(sx, sy) }

func (c *ImageCanvas) BeginPath()          { c.dc.ClearPath() }
func (c *ImageCanvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }
func (c *ImageCanvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }
func (c *ImageCanvas) ClosePath()          { c.dc.ClosePath() }

// CubicTo implements PathBuilder.
func (c *ImageCanvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (c *ImageCanvas) RoundRect(x, y, w, h, r float64) {
	AppendRoundRect(c, x, y, w, h, r)
}

func (c *ImageCanvas) Ellipse(cx, cy, rx, ry float64) {
	AppendEllipse(c, cx, cy, rx, ry)
}

func (c *ImageCanvas) SetFillColor(col color.Color)   { c.state.fill = col }
func (c *ImageCanvas) SetStrokeColor(col color.Color) { c.state.stroke = col }
func (c *ImageCanvas) SetLineWidth(w float64)         { c.state.lineWidth = w }

// Fill paints the current path. gg shares one brush between fill and
// stroke, so the brush is set right before painting.
func (c *ImageCanvas) Fill() error {
	c.dc.SetFillBrush(gg.Solid(gg.FromColor(c.state.fill)))
	return c.dc.FillPreserve()
}

func (c *ImageCanvas) Stroke() error {
	c.dc.SetLineWidth(c.state.lineWidth)
	c.dc.SetStrokeBrush(gg.Solid(gg.FromColor(c.state.stroke)))
	return c.dc.StrokePreserve()
}

// DrawImage draws img scaled into (x, y, w, h). Converted buffers are cached
// per image value, so replace an image rather than mutating it in place.
func (c *ImageCanvas) DrawImage(img image.Image, x, y, w, h float64) {
	buf, ok := c.images[img]
	if !ok {
		buf = gg.ImageBufFromImage(img)
		c.images[img] = buf
	}
	c.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  w,
		DstHeight: h,
	})
}

func (c *ImageCanvas) DrawText(s string, x, y, size float64) {
	face := c.fonts.Face(size)
	if face == nil {
		return
	}
	px, py := c.dc.TransformPoint(x, y+c.fonts.Ascent(size))
	c.dc.SetFont(face)
	c.dc.SetColor(c.state.fill)
	c.dc.DrawString(s, px, py)
}

// Pixels copies region r as straight-alpha NRGBA.
func (c *ImageCanvas) Pixels(r image.Rectangle) *image.NRGBA {
	src := c.dc.Image()
	r = r.Intersect(src.Bounds())
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), src, r.Min, draw.Src)
	return out
}
