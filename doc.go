// Package verbal is a retained-mode 2D scene graph for interactive drawing
// surfaces.
//
// Shapes, pictures, text and groups are placed on a [Layer], positioned with
// affine transforms, hit-tested against pointer input and re-rendered on
// demand. The package keeps every object's derived geometry (center point,
// bounding box, final size) consistent under any mix of move, scale and
// rotate operations, rebases coordinates when objects are grouped, and
// routes pointer input with bubbling and enter/leave transitions.
//
// # Quick start
//
//	canvas := verbal.NewImageCanvas(800, 600)
//	layer := verbal.NewLayer(canvas)
//
//	rect := verbal.NewRect(verbal.Config{
//		X: 100, Y: 100, Width: 200, Height: 120,
//		Style: verbal.Style{Fill: "#0fbcf9", Stroke: "#3c40c6", LineWidth: 2},
//	})
//	layer.Place(rect)
//
//	rect.On(verbal.EventClick, func(e *verbal.Event) {
//		rect.Update(verbal.FieldRotate, rect.Rotate()+15)
//	})
//	layer.DispatchClick(verbal.PointerInput{X: 150, Y: 150})
//	layer.Tick(time.Second / 60) // coalesced render
//
// For a window, see the ebitenview package, which adapts a Layer to an
// ebiten.Game.
//
// # Objects
//
// Every element is an [Object]. Widgets are leaf shapes created with
// [NewRect], [NewEllipse], [NewPolygon], [NewLine], [NewPicture] and
// [NewText]. Containers are [NewGroup], [NewCombination] and
// [NewMultipleSelectList]; the layer itself is backed by a container root.
//
// Geometry is changed only through the update protocol: [Object.SetFields]
// for batches, [Object.Update] for one field, and [Object.SilentlyUpdate]
// when no redraw should be requested. Each change recomputes the center and
// bounding box before returning.
//
// # Rendering
//
// Redraw requests bubble from objects to their layer and are coalesced into
// at most one render per frame. A [FrameScheduler] decides when a frame
// runs; the default [FrameQueue] runs on [Layer.Tick]. The [Painter] draws
// shapes onto a [Canvas]; [ImageCanvas] is a headless canvas built on
// [gg], also used for [Layer.ExportRegion] and [Layer.Snapshot].
//
// [gg]: https://github.com/gogpu/gg
package verbal
