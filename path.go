package verbal

import "math"

// kappa is the control-point distance for a cubic quarter circle.
const kappa = 0.5522847498307936

// PathBuilder is the cubic path subset shared by canvas backends.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// AppendRoundRect adds a closed rectangle with corners of radius r to b. The
// radius is clamped to half the shorter side; zero gives square corners.
func AppendRoundRect(b PathBuilder, x, y, w, h, r float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 {
		b.MoveTo(x, y)
		b.LineTo(x+w, y)
		b.LineTo(x+w, y+h)
		b.LineTo(x, y+h)
		b.ClosePath()
		return
	}
	k := r * kappa
	b.MoveTo(x+r, y)
	b.LineTo(x+w-r, y)
	b.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	b.LineTo(x+w, y+h-r)
	b.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	b.LineTo(x+r, y+h)
	b.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	b.LineTo(x, y+r)
	b.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	b.ClosePath()
}

// AppendEllipse adds a closed axis-aligned ellipse centered at (cx, cy) to b
// as four cubic arcs.
func AppendEllipse(b PathBuilder, cx, cy, rx, ry float64) {
	ox, oy := rx*kappa, ry*kappa
	b.MoveTo(cx+rx, cy)
	b.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	b.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	b.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	b.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	b.ClosePath()
}
