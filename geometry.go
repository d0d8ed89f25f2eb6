package verbal

import (
	"errors"
	"math"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// ErrNotALine is returned by PointSideOfLine when both line points coincide.
var ErrNotALine = errors.New("verbal: line endpoints coincide")

// Vector is a directed segment from Start to End.
type Vector struct {
	Start, End Point
}

// upVector points from the origin straight up (negative Y on a canvas).
var upVector = Vector{End: Point{0, -1}}

// Bounds is an axis-aligned min/max box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Rect converts the bounds to an origin/size rectangle.
func (b Bounds) Rect() Rect {
	return Rect{X: b.MinX, Y: b.MinY, Width: b.Width(), Height: b.Height()}
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointInPolygon reports whether p lies inside the polygon using the even-odd
// ray cast. Shared vertices are counted once because each edge uses a
// half-open interval on y.
func PointInPolygon(p Point, vertices []Point) bool {
	inside := false
	n := len(vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := vertices[i].X, vertices[i].Y
		xj, yj := vertices[j].X, vertices[j].Y
		if (yi > p.Y) != (yj > p.Y) &&
			p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// PointInCircle reports whether p lies inside or on the circle.
func PointInCircle(p, center Point, radius float64) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx+dy*dy <= radius*radius
}

// PointInEllipse reports whether p lies inside or on the ellipse with the
// given half axes, centered at center and rotated by rotate.
func PointInEllipse(p Point, radiusX, radiusY float64, center Point, rotate float64, radians bool) bool {
	if !radians {
		rotate = DegreesToRadians(rotate)
	}
	sin, cos := math.Sincos(rotate)
	dx := p.X - center.X
	dy := p.Y - center.Y
	lx := cos*dx + sin*dy
	ly := -sin*dx + cos*dy
	nx := lx / radiusX
	ny := ly / radiusY
	return nx*nx+ny*ny <= 1
}

// RotatePoint rotates p about pivot. A zero angle returns p unchanged.
func RotatePoint(p, pivot Point, angle float64, radians bool) Point {
	if angle == 0 {
		return p
	}
	if !radians {
		angle = DegreesToRadians(angle)
	}
	sin, cos := math.Sincos(angle)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X: dx*cos - dy*sin + pivot.X,
		Y: dx*sin + dy*cos + pivot.Y,
	}
}

// RotatePoints rotates every vertex about pivot into a new slice.
func RotatePoints(vertices []Point, pivot Point, angle float64, radians bool) []Point {
	out := make([]Point, len(vertices))
	for i, v := range vertices {
		out[i] = RotatePoint(v, pivot, angle, radians)
	}
	return out
}

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(deg float64) float64 { return deg * degToRad }

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(rad float64) float64 { return rad * radToDeg }

// MinBoundingBox returns the min/max box of vertices. Empty input yields a
// zero box.
func MinBoundingBox(vertices []Point) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: vertices[0].X, MinY: vertices[0].Y, MaxX: vertices[0].X, MaxY: vertices[0].Y}
	for _, v := range vertices[1:] {
		b.MinX = math.Min(b.MinX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	return b
}

// GroupBoundingBox returns the min/max box over every listed polygon.
// With no vertices at all it returns a zero Bounds, like MinBoundingBox.
func GroupBoundingBox(polygons [][]Point) Bounds {
	n := 0
	for _, poly := range polygons {
		n += len(poly)
	}
	if n == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, poly := range polygons {
		for _, v := range poly {
			b.MinX = math.Min(b.MinX, v.X)
			b.MinY = math.Min(b.MinY, v.Y)
			b.MaxX = math.Max(b.MaxX, v.X)
			b.MaxY = math.Max(b.MaxY, v.Y)
		}
	}
	return b
}

// RectContains reports whether every vertex of inner lies inside outer.
func RectContains(outer, inner []Point) bool {
	box := MinBoundingBox(outer).Rect()
	if !box.Intersects(MinBoundingBox(inner).Rect()) {
		return false
	}
	for _, v := range inner {
		if !box.Contains(v) || !PointInPolygon(v, outer) {
			return false
		}
	}
	return true
}

// RectVertices returns the corners of (x, y, w, h) clockwise from top-left.
func RectVertices(x, y, w, h float64) [4]Point {
	return [4]Point{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
	}
}

// PointOnLineSegment reports whether p lies within lineWidth/2 of the
// segment a-b. Points projecting outside the segment never match. A
// zero-length segment matches only its own point.
func PointOnLineSegment(p, a, b Point, lineWidth float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p == a
	}
	tx := p.X - a.X
	ty := p.Y - a.Y
	t := (tx*dx + ty*dy) / lenSq
	if t < 0 || t > 1 {
		return false
	}
	cross := tx*dy - ty*dx
	half := lineWidth / 2
	return cross*cross/lenSq <= half*half
}

// SignedAngleBetween returns the directed angle between v1 and v2 in
// (-180, 180] degrees, or radians when asked. The result is negative when
// the cross product v1 x v2 is positive. Zero-length vectors yield NaN.
func SignedAngleBetween(v1, v2 Vector, radians bool) float64 {
	x1 := v1.End.X - v1.Start.X
	y1 := v1.End.Y - v1.Start.Y
	x2 := v2.End.X - v2.Start.X
	y2 := v2.End.Y - v2.Start.Y
	cos := (x1*x2 + y1*y2) / (math.Sqrt(x1*x1+y1*y1) * math.Sqrt(x2*x2+y2*y2))
	// Rounding can push the ratio just outside acos's domain.
	cos = math.Max(-1, math.Min(1, cos))
	angle := math.Acos(cos)
	if x1*y2-y1*x2 > 0 {
		angle = -angle
	}
	if radians {
		return angle
	}
	return RadiansToDegrees(angle)
}

// Midpoint returns the point halfway between p1 and p2.
func Midpoint(p1, p2 Point) Point {
	return Point{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}
}

// lineCoefficients returns A, B, C of the line Ax + By + C = 0 through a and b.
func lineCoefficients(a, b Point) (A, B, C float64) {
	return b.Y - a.Y, a.X - b.X, b.X*a.Y - a.X*b.Y
}

// DistancePointToLine returns the distance from p to the infinite line
// through a and b, or to a when the two coincide.
func DistancePointToLine(p, a, b Point) float64 {
	A, B, C := lineCoefficients(a, b)
	if A == 0 && B == 0 {
		return Distance(p, a)
	}
	return math.Abs(A*p.X+B*p.Y+C) / math.Sqrt(A*A+B*B)
}

// PointSideOfLine returns 1 when p is above (or left of) the line through a
// and b, -1 when below (or right), and 0 when exactly on it. Horizontal lines
// compare y only and vertical lines compare x only.
func PointSideOfLine(p, a, b Point) (int, error) {
	A, B, C := lineCoefficients(a, b)
	if A == 0 && B == 0 {
		return 0, ErrNotALine
	}
	side := 1
	switch {
	case A == 0:
		if p.Y > b.Y {
			side = -1
		} else if p.Y == b.Y {
			side = 0
		}
	case B == 0:
		if p.X > b.X {
			side = -1
		} else if p.X == b.X {
			side = 0
		}
	default:
		yn := (-C - A*p.X) / B
		if p.Y > yn {
			side = -1
		} else if p.Y == yn {
			side = 0
		}
	}
	return side, nil
}

// ProjectPointOntoLine returns the orthogonal projection of p onto the
// infinite line through a and b.
func ProjectPointOntoLine(p, a, b Point) Point {
	run := b.X - a.X
	if run == 0 {
		return Point{a.X, p.Y}
	}
	m := (b.Y - a.Y) / run
	c := a.Y - m*a.X
	x := (m*p.Y + p.X - m*c) / (m*m + 1)
	return Point{x, m*x + c}
}
