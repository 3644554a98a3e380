package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/tags"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Object,
		components.Movement,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
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
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
