package components

import (
	"github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/shared/loop"
	"github.com/yohamta/donburi"
)

type LoopData struct {
	Clock     loop.Clock
	Scheduler *loop.Scheduler
	// Drawn reports whether the last pass put a frame on the canvas.
	Drawn bool
}

var Loop = donburi.NewComponentType[LoopData]()

// ReloadData holds the config file watcher, if hot reload is on.
type ReloadData struct {
	Path    string
	Watcher *config.Watcher
}

var Reload = donburi.NewComponentType[ReloadData]()
