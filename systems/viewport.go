package systems

import (
	"log"

	"github.com/automoto/keyframe/components"
	"github.com/automoto/keyframe/shared/loop"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SetWindowSize records the outside size reported by ebiten's Layout. The
// canvas follows it once the size has been stable for the quiet period.
func SetWindowSize(ecs *ecs.ECS, width, height int) {
	entry, ok := components.Canvas.First(ecs.World)
	if !ok {
		return
	}
	components.Canvas.Get(entry).Window = loop.Size{Width: width, Height: height}
}

// UpdateViewport applies a debounced window resize to the canvas extents and
// ground line. The character itself is never moved by a resize.
func UpdateViewport(ecs *ecs.ECS) {
	entry, ok := components.Canvas.First(ecs.World)
	if !ok {
		return
	}
	canvas := components.Canvas.Get(entry)
	now := GetOrCreateLoop(ecs).Clock.Now()

	canvas.Resize.Notify(now, canvas.Window)
	size, ok := canvas.Resize.Poll(now)
	if !ok || size.Width <= 0 || size.Height <= 0 {
		return
	}
	ResizeCanvas(canvas, size)
	log.Printf("viewport: canvas resized to %dx%d, ground at %.0f", size.Width, size.Height, canvas.Bounds.GroundY())
}

// ResizeCanvas swaps in a canvas image of the new size.
func ResizeCanvas(canvas *components.CanvasData, size loop.Size) {
	if canvas.Image != nil {
		canvas.Image.Deallocate()
	}
	canvas.Image = ebiten.NewImage(size.Width, size.Height)
	canvas.Bounds.Resize(float64(size.Width), float64(size.Height))
}
