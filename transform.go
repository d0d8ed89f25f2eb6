package verbal

import "math"

// Matrix is a 2D affine transform laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// IdentityMatrix is the identity transform.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// TranslateMatrix returns a translation by (x, y).
func TranslateMatrix(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// RotateMatrix returns a rotation by rad radians.
func RotateMatrix(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// ScaleMatrix returns a scale by (sx, sy).
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Multiply returns m * o, which applies o first and then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Invert returns the inverse of m, or the identity if m is singular.
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms p by m.
func (m Matrix) Apply(p Point) Point {
	return Point{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// ScaleFactor returns the geometric mean of the axis scales, used to size
// strokes drawn under m.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[2]*m[1]))
}

// localScale returns the factor mapping the object's local drawing
// coordinates onto its final extents. Widgets draw in [0,w]x[0,h] so this is
// their scale. Groups draw members in the space captured at their last
// recompute, so it is the ratio of current to captured extents.
func (o *Object) localScale() (float64, float64) {
	if o.kind == KindContainer && o.container != ContainerMultiSelect {
		sx, sy := 1.0, 1.0
		if o.baseW != 0 {
			sx = o.FinalWidth() / o.baseW
		}
		if o.baseH != 0 {
			sy = o.FinalHeight() / o.baseH
		}
		return sx, sy
	}
	return o.scaleX, o.scaleY
}

// Matrix returns the transform from the object's local drawing space to its
// parent's space:
//
//	Translate(center) -> Rotate(rotate) -> Translate(-finalW/2, -finalH/2) -> Scale
//
// With rotate == 0 this reduces to Translate(x, y) -> Scale.
func (o *Object) Matrix() Matrix {
	if o.container == ContainerLayer {
		return IdentityMatrix
	}
	sx, sy := o.localScale()
	if o.rotate == 0 {
		return Matrix{sx, 0, 0, sy, o.x, o.y}
	}
	m := TranslateMatrix(o.center.X, o.center.Y).
		Multiply(RotateMatrix(DegreesToRadians(o.rotate))).
		Multiply(TranslateMatrix(-o.FinalWidth()/2, -o.FinalHeight()/2)).
		Multiply(ScaleMatrix(sx, sy))
	return m
}

// WorldMatrix composes Matrix with every ancestor's, mapping local drawing
// space to scene space.
func (o *Object) WorldMatrix() Matrix {
	m := o.Matrix()
	for p := o.parent; p != nil; p = p.parent {
		m = p.Matrix().Multiply(m)
	}
	return m
}

// LocalToParent maps a point in the object's local drawing space to its
// parent's space.
func (o *Object) LocalToParent(p Point) Point {
	return o.Matrix().Apply(p)
}

// ParentToLocal maps a point in the parent's space into the object's local
// drawing space.
func (o *Object) ParentToLocal(p Point) Point {
	return o.Matrix().Invert().Apply(p)
}

// SceneToLocal maps a scene-space point into the object's local drawing space.
func (o *Object) SceneToLocal(p Point) Point {
	return o.WorldMatrix().Invert().Apply(p)
}

// applyTransform pushes the object's matrix onto the canvas as the same
// translate/rotate/scale sequence Matrix describes. When noScale is set the
// scale step is skipped so the caller can draw at final size.
func applyTransform(c Canvas, o *Object, noScale bool) {
	sx, sy := o.localScale()
	if o.rotate != 0 {
		c.Translate(o.center.X, o.center.Y)
		c.Rotate(DegreesToRadians(o.rotate))
		c.Translate(-o.FinalWidth()/2, -o.FinalHeight()/2)
	} else {
		c.Translate(o.x, o.y)
	}
	if !noScale {
		c.Scale(sx, sy)
	}
}
