package components

import (
	"github.com/automoto/keyframe/shared/character"
	"github.com/automoto/keyframe/shared/loop"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CanvasData is the retained drawing surface. The character is drawn into
// Image on scheduler ticks; the screen shows Image every frame.
type CanvasData struct {
	Image  *ebiten.Image
	Bounds *character.Canvas
	Resize *loop.Debouncer
	// Window is the latest outside size reported by ebiten's Layout.
	Window loop.Size
}

var Canvas = donburi.NewComponentType[CanvasData]()
