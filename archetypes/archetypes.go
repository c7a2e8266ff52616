package archetypes

import (
	"github.com/automoto/keyframe/components"
	"github.com/automoto/keyframe/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Animation,
	)
	Canvas = newArchetype(
		tags.Canvas,
		components.Canvas,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.Default,
		append(a.components, cs...)...,
	))
	return e
}
