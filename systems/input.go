package systems

import (
	"log"

	"github.com/automoto/keyframe/components"
	cfg "github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/shared/character"
	"github.com/automoto/keyframe/shared/loop"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// actionKeys maps bound actions to the translator's key symbols.
var actionKeys = [cfg.ActionCount]character.Key{
	cfg.ActionNone:      character.KeyOther,
	cfg.ActionMoveLeft:  character.KeyLeft,
	cfg.ActionMoveRight: character.KeyRight,
	cfg.ActionJump:      character.KeyJump,
	cfg.ActionPunch:     character.KeyPunch,
}

// UpdateInput polls the keyboard and feeds key-down / key-up symbols to the
// character controller. Held keys re-fire key-down on the configured repeat.
// Must run BEFORE UpdateCharacter in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var pressed [cfg.ActionCount]bool
	for action, keys := range input.Keys {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				pressed[action] = true
				break
			}
		}
	}
	DispatchInput(ecs, pressed)
}

// DispatchInput records this update's pressed actions and sends the resulting
// key-down / key-up symbols to the character. Repeats are timed on the loop
// clock so a held key moves at the same speed on any display rate.
func DispatchInput(ecs *ecs.ECS, pressed [cfg.ActionCount]bool) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = pressed

	entry, ok := components.Character.First(ecs.World)
	if !ok {
		return
	}
	state := components.Character.Get(entry)
	controller := components.Animation.Get(entry).Controller

	now := GetOrCreateLoop(ecs).Clock.Now()
	repeat := loop.Repeat{Delay: cfg.Input.Repeat.Delay, Interval: cfg.Input.Repeat.Interval}
	for action := cfg.ActionID(1); action < cfg.ActionCount; action++ {
		key := actionKeys[action]
		a := GetAction(input, action)
		switch {
		case a.Pressed:
			var fire bool
			fire, input.NextRepeat[action] = repeat.Fire(now, input.NextRepeat[action], a.JustPressed)
			if fire {
				controller.KeyDown(state, key)
			}
		case a.JustReleased:
			controller.KeyUp(state, key)
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{Keys: resolveBindings(cfg.Input.Bindings)})
	}
	return components.Input.Get(entry)
}

// resolveBindings turns configured key names into ebiten keys. Unknown names
// are logged and skipped.
func resolveBindings(bindings map[cfg.ActionID]cfg.InputBinding) [cfg.ActionCount][]ebiten.Key {
	var keys [cfg.ActionCount][]ebiten.Key
	for action, binding := range bindings {
		if action <= cfg.ActionNone || action >= cfg.ActionCount {
			continue
		}
		for _, name := range binding.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				log.Printf("Warning: input: unknown key %q for action %d: %v", name, action, err)
				continue
			}
			keys[action] = append(keys[action], k)
		}
	}
	return keys
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
