package ebitenview

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/phanxgames/verbal"
)

type pointerLog struct{ got []string }

func (p *pointerLog) watch(t *testing.T, o *verbal.Object, tag string) {
	t.Helper()
	for _, ev := range []verbal.EventType{
		verbal.EventPointerDown, verbal.EventPointerUp, verbal.EventClick,
		verbal.EventPointerEnter, verbal.EventPointerLeave,
	} {
		o.On(ev, func(e *verbal.Event) {
			if e.Target == e.CurrentTarget {
				p.got = append(p.got, fmt.Sprintf("%s %s", tag, e.Type))
			}
		})
	}
}

func trackerScene(t *testing.T) (*verbal.Layer, *pointerLog) {
	t.Helper()
	l := verbal.NewLayer(nil)
	a := verbal.NewRect(verbal.Config{Name: "a", Width: 10, Height: 10})
	b := verbal.NewRect(verbal.Config{Name: "b", X: 50, Width: 10, Height: 10})
	l.PlaceArray([]*verbal.Object{a, b})
	log := &pointerLog{}
	log.watch(t, a, "a")
	log.watch(t, b, "b")
	return l, log
}

func TestPointerTrackerClick(t *testing.T) {
	l, log := trackerScene(t)
	var p pointerTracker
	now := time.Now()
	p.sample(l, 5, 5, false, verbal.MouseButtonLeft, now)
	p.sample(l, 5, 5, true, verbal.MouseButtonLeft, now)
	p.sample(l, 5, 5, true, verbal.MouseButtonLeft, now)
	p.sample(l, 6, 5, false, verbal.MouseButtonLeft, now)

	want := []string{"a pointerenter", "a pointerdown", "a pointerup", "a click"}
	if !reflect.DeepEqual(log.got, want) {
		t.Errorf("events = %v, want %v", log.got, want)
	}
}

func TestPointerTrackerReleaseElsewhere(t *testing.T) {
	l, log := trackerScene(t)
	var p pointerTracker
	now := time.Now()
	p.sample(l, 5, 5, true, verbal.MouseButtonLeft, now)
	p.sample(l, 55, 5, false, verbal.MouseButtonLeft, now)

	want := []string{"a pointerenter", "a pointerdown", "a pointerleave", "b pointerenter", "b pointerup"}
	if !reflect.DeepEqual(log.got, want) {
		t.Errorf("events = %v, want %v", log.got, want)
	}
}

func TestPointerTrackerKeepsPressedButton(t *testing.T) {
	l, _ := trackerScene(t)
	var buttons []verbal.MouseButton
	l.On(verbal.EventPointerUp, func(e *verbal.Event) { buttons = append(buttons, e.Input.Button) })
	var p pointerTracker
	now := time.Now()
	p.sample(l, 200, 200, true, verbal.MouseButtonRight, now)
	p.sample(l, 200, 200, false, verbal.MouseButtonLeft, now)
	if len(buttons) != 1 || buttons[0] != verbal.MouseButtonRight {
		t.Errorf("up buttons = %v, want [right]", buttons)
	}
}

func TestPointerTrackerMovesOnlyOnChange(t *testing.T) {
	l, _ := trackerScene(t)
	moves := 0
	l.On(verbal.EventPointerMove, func(*verbal.Event) { moves++ })
	var p pointerTracker
	now := time.Now()
	for i := 0; i < 3; i++ {
		p.sample(l, 200, 200, false, verbal.MouseButtonLeft, now)
	}
	p.sample(l, 201, 200, false, verbal.MouseButtonLeft, now)
	if moves != 2 {
		t.Errorf("moves = %d, want 2", moves)
	}
}

func TestGeoMMatchesMatrix(t *testing.T) {
	m := verbal.TranslateMatrix(10, 20).Multiply(verbal.RotateMatrix(0.5)).Multiply(verbal.ScaleMatrix(2, 3))
	g := geoM(m)
	p := m.Apply(verbal.Point{X: 4, Y: -7})
	x, y := g.Apply(4, -7)
	if d := x - p.X; d > 1e-9 || d < -1e-9 {
		t.Errorf("x = %v, want %v", x, p.X)
	}
	if d := y - p.Y; d > 1e-9 || d < -1e-9 {
		t.Errorf("y = %v, want %v", y, p.Y)
	}
}

func TestCanvasStateStack(t *testing.T) {
	c := &Canvas{state: paintState{m: verbal.IdentityMatrix, lineWidth: 1}}
	c.Save()
	c.Translate(10, 5)
	c.SetLineWidth(4)
	x, y := c.point(1, 1)
	if x != 11 || y != 6 {
		t.Errorf("point = (%v, %v), want (11, 6)", x, y)
	}
	c.Restore()
	c.Restore()
	if c.state.m != verbal.IdentityMatrix || c.state.lineWidth != 1 {
		t.Errorf("restore did not pop state: %+v", c.state)
	}
}
