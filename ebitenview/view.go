// Package ebitenview shows a verbal.Layer in an ebiten window and feeds it
// mouse input.
package ebitenview

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/verbal"
)

// View implements ebiten.Game around a layer drawn onto a Canvas.
type View struct {
	Layer  *verbal.Layer
	Canvas *Canvas

	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// OnUpdate runs once per tick after input has been dispatched.
	OnUpdate func(dt time.Duration) error

	width, height int
	pointer       pointerTracker
	fpsImg        *ebiten.Image
	fpsAge        time.Duration
}

// New creates a width x height canvas and a layer bound to it.
func New(width, height int, opts ...verbal.LayerOption) *View {
	c := NewCanvas(width, height)
	return &View{
		Layer:  verbal.NewLayer(c, opts...),
		Canvas: c,
		width:  width,
		height: height,
	}
}

// Run opens a window titled title and blocks until it closes.
func (v *View) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(v.width, v.height)
	return ebiten.RunGame(v)
}

// Update polls the mouse, dispatches input, and advances the layer.
func (v *View) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)

	mx, my := ebiten.CursorPosition()
	var pressed bool
	var button verbal.MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = verbal.MouseButtonLeft
		} else if right {
			button = verbal.MouseButtonRight
		} else {
			button = verbal.MouseButtonMiddle
		}
	}
	v.pointer.sample(v.Layer, float64(mx), float64(my), pressed, button, time.Now())

	v.Layer.Tick(dt)
	if v.OnUpdate != nil {
		if err := v.OnUpdate(dt); err != nil {
			return err
		}
	}
	if v.ShowFPS {
		v.updateFPS(dt)
	}
	return nil
}

func (v *View) updateFPS(dt time.Duration) {
	if v.fpsImg == nil {
		// 100x32 fits "FPS: 60.0\nTPS: 60.0".
		v.fpsImg = ebiten.NewImage(100, 32)
		v.fpsAge = time.Second
	}
	v.fpsAge += dt
	if v.fpsAge < time.Second/2 {
		return
	}
	v.fpsAge = 0
	v.fpsImg.Clear()
	v.fpsImg.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(v.fpsImg, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw blits the layer canvas to the screen.
func (v *View) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.Canvas.Image(), nil)
	if v.ShowFPS && v.fpsImg != nil {
		screen.DrawImage(v.fpsImg, nil)
	}
}

// Layout keeps the logical screen at the canvas size.
func (v *View) Layout(int, int) (int, int) {
	return v.width, v.height
}
