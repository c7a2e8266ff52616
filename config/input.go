package config

import "time"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPunch
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the keys bound to an action by ebiten key name
// ("A", "ArrowLeft", "Space").
type InputBinding struct {
	Keys []string
}

// RepeatConfig emulates OS key repeat for held keys.
type RepeatConfig struct {
	Delay    time.Duration `yaml:"delay"`
	Interval time.Duration `yaml:"interval"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	Repeat   RepeatConfig `yaml:"repeat"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Repeat: RepeatConfig{
			Delay:    500 * time.Millisecond,
			Interval: 33 * time.Millisecond,
		},
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []string{"A", "ArrowLeft"},
			},
			ActionMoveRight: {
				Keys: []string{"D", "ArrowRight"},
			},
			ActionJump: {
				Keys: []string{"Space"},
			},
			ActionPunch: {
				Keys: []string{"P"},
			},
		},
	}
}
