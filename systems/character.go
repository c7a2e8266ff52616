package systems

import (
	"github.com/automoto/keyframe/components"
	cfg "github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/shared/loop"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacter offers the scheduler a tick. When one is due it steps the
// state machine and then draws the result onto the canvas, in that order.
func UpdateCharacter(ecs *ecs.ECS) {
	entry, ok := components.Character.First(ecs.World)
	if !ok {
		return
	}
	state := components.Character.Get(entry)
	anim := components.Animation.Get(entry)
	l := GetOrCreateLoop(ecs)

	l.Scheduler.Advance(l.Clock.Now(), func() {
		anim.Controller.Step(state)
		l.Drawn = anim.Renderer.Draw(state)
	})
}

// GetOrCreateLoop returns the singleton Loop component, creating it with the
// system clock if needed.
func GetOrCreateLoop(ecs *ecs.ECS) *components.LoopData {
	entry, ok := components.Loop.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Loop))
		components.Loop.SetValue(entry, components.LoopData{
			Clock:     loop.NewSystemClock(),
			Scheduler: loop.NewScheduler(cfg.Loop.TargetHz),
		})
	}
	return components.Loop.Get(entry)
}
