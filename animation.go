package verbal

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 geometry fields of an object simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotate, TweenSize) and either call Update(dt) each frame or hand it
// to Layer.Animate. Every step writes all fields through SetFields, so the
// object emits one redraw request per step.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]Field
	count  int
	target *Object
	Done   bool
}

func newTweenGroup(o *Object, duration float32, fn ease.TweenFunc, to map[Field]float64, order ...Field) *TweenGroup {
	g := &TweenGroup{target: o}
	for _, f := range order {
		from, _ := o.Field(f)
		g.tweens[g.count] = gween.New(float32(from), float32(to[f]), duration, fn)
		g.fields[g.count] = f
		g.count++
	}
	return g
}

// Update advances all tweens by dt seconds and writes the values to the
// target.
func (g *TweenGroup) Update(dt float32) {
	if g.Done || g.target == nil {
		return
	}
	values := make(Values, g.count)
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		values[g.fields[i]] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.target.SetFields(values, true)
	g.Done = allDone
}

// Advance implements Animator.
func (g *TweenGroup) Advance(dt time.Duration) bool {
	g.Update(float32(dt.Seconds()))
	return g.Done
}

// TweenPosition animates X and Y to (toX, toY) over duration seconds.
func TweenPosition(o *Object, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(o, duration, fn,
		map[Field]float64{FieldX: toX, FieldY: toY}, FieldX, FieldY)
}

// TweenScale animates ScaleX and ScaleY.
func TweenScale(o *Object, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(o, duration, fn,
		map[Field]float64{FieldScaleX: toSX, FieldScaleY: toSY}, FieldScaleX, FieldScaleY)
}

// TweenRotate animates Rotate to deg degrees.
func TweenRotate(o *Object, deg float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(o, duration, fn, map[Field]float64{FieldRotate: deg}, FieldRotate)
}

// TweenSize animates Width and Height.
func TweenSize(o *Object, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(o, duration, fn,
		map[Field]float64{FieldWidth: toW, FieldHeight: toH}, FieldWidth, FieldHeight)
}

// Animation is a frame callback driven by Layer.Tick. The callback receives
// the time since Start and the frame delta and returns false to stop.
type Animation struct {
	fn      func(elapsed, dt time.Duration) bool
	elapsed time.Duration
	layer   *Layer
	stopped bool
}

// NewAnimation wraps fn. Call Start to run it.
func NewAnimation(fn func(elapsed, dt time.Duration) bool) *Animation {
	return &Animation{fn: fn}
}

// Start registers the animation with l and resets its clock.
func (a *Animation) Start(l *Layer) {
	a.elapsed = 0
	a.stopped = false
	a.layer = l
	l.Animate(a)
}

// Stop ends the animation before the next frame.
func (a *Animation) Stop() { a.stopped = true }

// Running reports whether the animation is started and not stopped.
func (a *Animation) Running() bool { return a.layer != nil && !a.stopped }

// Advance implements Animator.
func (a *Animation) Advance(dt time.Duration) bool {
	if a.stopped || a.fn == nil {
		a.layer = nil
		return true
	}
	a.elapsed += dt
	if !a.fn(a.elapsed, dt) {
		a.stopped = true
		a.layer = nil
		return true
	}
	return false
}
