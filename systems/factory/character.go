package factory

import (
	"github.com/automoto/keyframe/archetypes"
	"github.com/automoto/keyframe/assets"
	"github.com/automoto/keyframe/components"
	cfg "github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/shared/character"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns the sprite idle on the ground at the configured
// start X. sink is where the renderer draws.
func CreateCharacter(ecs *ecs.ECS, catalog *character.Catalog, loader *assets.AnimationLoader,
	canvas *components.CanvasData, sink character.Sink[*ebiten.Image]) *donburi.Entry {
	player := archetypes.Character.Spawn(ecs)

	components.Character.SetValue(player, *character.NewState(cfg.Character.StartX, canvas.Bounds.GroundY()))

	settings := cfg.CharacterSettings()
	components.Animation.SetValue(player, components.AnimationData{
		Controller: character.NewController(catalog, settings, canvas.Bounds),
		Renderer: &character.Renderer[*ebiten.Image]{
			Catalog: catalog,
			Images:  loader,
			Sink:    sink,
			Canvas:  canvas.Bounds,
			Width:   settings.SpriteWidth,
			Height:  settings.SpriteHeight,
		},
		Loader: loader,
	})

	return player
}
