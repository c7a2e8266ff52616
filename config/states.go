package config

import "github.com/automoto/keyframe/shared/character"

// Type alias: config.StateID is the headless character motion.
type StateID = character.Motion

// Re-export character motion constants.
const (
	Idle    = character.Idle
	Running = character.Run
	Jump    = character.Jump
	Punch   = character.Punch
)

// States lists every character state in catalog order.
var States = []StateID{Idle, Running, Jump, Punch}
