package components

import (
	"github.com/automoto/keyframe/assets"
	"github.com/automoto/keyframe/shared/character"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData carries what steps and draws the character: the controller
// that owns the state machine rules and the renderer that blits its frames.
type AnimationData struct {
	Controller *character.Controller
	Renderer   *character.Renderer[*ebiten.Image]
	Loader     *assets.AnimationLoader
}

var Animation = donburi.NewComponentType[AnimationData]()
