package components

import (
	"github.com/automoto/keyframe/shared/character"
	"github.com/yohamta/donburi"
)

// Character is the single sprite's motion state.
var Character = donburi.NewComponentType[character.State]()
