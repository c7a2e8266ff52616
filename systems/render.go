package systems

import (
	"image/color"

	"github.com/automoto/keyframe/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	canvasOp = &ebiten.DrawImageOptions{}
)

// CanvasSink draws onto the canvas entity's image. It reads the image on every
// call so a resize swapping the image is picked up.
type CanvasSink struct {
	Canvas *components.CanvasData
}

func (s *CanvasSink) Clear(width, height float64) {
	s.Canvas.Image.Clear()
}

// Blit scales img to w x h at (x, y). Mirroring flips it about its own box so
// the sprite faces left in the same place.
func (s *CanvasSink) Blit(img *ebiten.Image, x, y, w, h float64, mirrored bool) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if mirrored {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(w, 0)
	}
	drawOp.GeoM.Translate(x, y)
	drawOp.Filter = ebiten.FilterLinear

	s.Canvas.Image.DrawImage(img, drawOp)
}

// DrawCanvas presents the canvas. It runs every frame; the canvas only
// changes on scheduler ticks.
func DrawCanvas(ecs *ecs.ECS, screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	entry, ok := components.Canvas.First(ecs.World)
	if !ok {
		return
	}
	canvas := components.Canvas.Get(entry)
	canvasOp.GeoM.Reset()
	screen.DrawImage(canvas.Image, canvasOp)
}
