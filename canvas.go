package verbal

import (
	"image"
	"image/color"
)

// Canvas is the drawing surface a Layer renders onto. It follows the
// immediate-mode 2D context model: a transform and paint state stack, a
// current path that Fill and Stroke paint without consuming, and pixel
// readback for export.
//
// Angles are in radians. Coordinates passed to path and draw calls are in
// the current transformed space.
type Canvas interface {
	// Size returns the surface size in pixels.
	Size() (width, height int)
	// Clear resets every pixel to the background.
	Clear()

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(rad float64)
	Scale(sx, sy float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// RoundRect adds a closed rectangle with corner radius r.
	RoundRect(x, y, w, h, r float64)
	// Ellipse adds a closed axis-aligned ellipse centered at (cx, cy).
	Ellipse(cx, cy, rx, ry float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	// Fill paints the current path with the fill color and keeps the path.
	Fill() error
	// Stroke outlines the current path with the stroke color and keeps the
	// path.
	Stroke() error

	// DrawImage draws img scaled into (x, y, w, h).
	DrawImage(img image.Image, x, y, w, h float64)
	// DrawText draws s with its top-left corner at (x, y) in the fill color.
	DrawText(s string, x, y, size float64)

	// Pixels returns a straight-alpha copy of the region r, clipped to the
	// surface.
	Pixels(r image.Rectangle) *image.NRGBA
}
