package config

import (
	"time"

	"github.com/automoto/keyframe/shared/character"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CharacterConfig contains all sprite-related configuration values
type CharacterConfig struct {
	// Source art size; the sprite is drawn at FrameWidth*Scale x FrameHeight*Scale.
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
	Scale       float64 `yaml:"scale"`

	MoveStep     float64 `yaml:"move_step"`     // pixels per move intent
	GroundOffset float64 `yaml:"ground_offset"` // groundY = canvas height - GroundOffset
	StartX       float64 `yaml:"start_x"`
}

// SpriteSize returns the drawn sprite size in pixels.
func (c CharacterConfig) SpriteSize() (float64, float64) {
	return float64(c.FrameWidth) * c.Scale, float64(c.FrameHeight) * c.Scale
}

// PhysicsConfig contains jump physics values
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // per tick, positive pulls down
	JumpPower float64 `yaml:"jump_power"` // initial vertical velocity, negative is up
}

// LoopConfig contains frame pacing values
type LoopConfig struct {
	TargetHz    float64       `yaml:"target_hz"`
	ResizeQuiet time.Duration `yaml:"resize_quiet"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // Draw state readout over the canvas
}

// Global configuration instances
var C *Config
var Character CharacterConfig
var Physics PhysicsConfig
var Animation AnimationConfig
var Loop LoopConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "keyframe",
	}

	Character = CharacterConfig{
		FrameWidth:   796,
		FrameHeight:  719,
		Scale:        0.25,
		MoveStep:     10,
		GroundOffset: 395,
		StartX:       0,
	}

	Physics = PhysicsConfig{
		Gravity:   0.8,
		JumpPower: -10,
	}

	Animation = defaultAnimations()

	Loop = LoopConfig{
		TargetHz:    60,
		ResizeQuiet: 200 * time.Millisecond,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
	}
}

// CharacterSettings builds the controller tunables from the current globals.
func CharacterSettings() character.Settings {
	w, h := Character.SpriteSize()
	s := character.Settings{
		SpriteWidth:  w,
		SpriteHeight: h,
		MoveStep:     Character.MoveStep,
		JumpPower:    Physics.JumpPower,
		Gravity:      Physics.Gravity,
	}
	for _, state := range States {
		s.FrameRates[state] = Animation.Def(state).FrameRate
	}
	return s
}
