package factory

import (
	"github.com/automoto/keyframe/archetypes"
	"github.com/automoto/keyframe/components"
	cfg "github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/shared/character"
	"github.com/automoto/keyframe/shared/loop"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCanvas spawns the retained canvas sized to the window.
func CreateCanvas(ecs *ecs.ECS, width, height int) *donburi.Entry {
	canvas := archetypes.Canvas.Spawn(ecs)

	size := loop.Size{Width: width, Height: height}
	components.Canvas.SetValue(canvas, components.CanvasData{
		Image: ebiten.NewImage(width, height),
		Bounds: &character.Canvas{
			Width:        float64(width),
			Height:       float64(height),
			GroundOffset: cfg.Character.GroundOffset,
		},
		Resize: loop.NewDebouncer(cfg.Loop.ResizeQuiet, size),
		Window: size,
	})

	return canvas
}
