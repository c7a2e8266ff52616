package components

import (
	"time"

	cfg "github.com/automoto/keyframe/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current    [cfg.ActionCount]bool          // Current frame's Pressed state
	Previous   [cfg.ActionCount]bool          // Previous frame's Pressed state
	NextRepeat [cfg.ActionCount]time.Duration // Loop clock time of the next repeated key-down
	Keys       [cfg.ActionCount][]ebiten.Key
}

var Input = donburi.NewComponentType[InputData]()
