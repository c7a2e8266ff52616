package systems

import (
	"log"

	"github.com/automoto/keyframe/components"
	cfg "github.com/automoto/keyframe/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReload applies a changed config file between ticks. Tunables
// (physics, frame rates, move step, key repeat, cadence, resize quiet period,
// overlay) take effect
// immediately; sprite art and frame sequences need a restart.
func UpdateReload(ecs *ecs.ECS) {
	entry, ok := components.Reload.First(ecs.World)
	if !ok {
		return
	}
	reload := components.Reload.Get(entry)
	if reload.Watcher == nil {
		return
	}

	select {
	case err, ok := <-reload.Watcher.Errors:
		if ok {
			log.Printf("Warning: config: watcher: %v", err)
		}
		return
	case _, ok := <-reload.Watcher.Events:
		if !ok {
			return
		}
	default:
		return
	}

	next, err := cfg.ReadFile(reload.Path)
	if err != nil {
		log.Printf("Warning: config: reload rejected: %v", err)
		return
	}
	next, fixed := cfg.KeepFixed(next, cfg.Current())
	if fixed {
		log.Printf("Warning: config: %s changes window, sprite or sequence settings; restart to apply them", reload.Path)
	}
	cfg.Apply(next)
	ApplyConfig(ecs)
	log.Printf("config: reloaded %s", reload.Path)
}

// ApplyConfig pushes the current globals into the live controller, scheduler
// and resize debouncer.
func ApplyConfig(ecs *ecs.ECS) {
	if entry, ok := components.Character.First(ecs.World); ok {
		anim := components.Animation.Get(entry)
		anim.Controller.Settings = cfg.CharacterSettings()
		anim.Renderer.Width = anim.Controller.Settings.SpriteWidth
		anim.Renderer.Height = anim.Controller.Settings.SpriteHeight
	}
	if entry, ok := components.Canvas.First(ecs.World); ok {
		components.Canvas.Get(entry).Resize.SetQuiet(cfg.Loop.ResizeQuiet)
	}
	GetOrCreateLoop(ecs).Scheduler.SetCadence(cfg.Loop.TargetHz)
}
