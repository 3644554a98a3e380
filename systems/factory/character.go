package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/archetypes"
	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/leveldata"
	"github.com/automoto/dashcrawler/tags"
)

// CreateCharacter spawns a character body centered on a spawn point, facing
// the spawn's yaw. The controller is attached separately.
func CreateCharacter(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	size := cfg.Character.CapsuleRadius * 2
	obj := resolv.NewObject(spawn.X-size/2, spawn.Y-size/2, size, size, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})

	components.Movement.SetValue(character, components.MovementData{
		Yaw:          spawn.Facing,
		Params:       cfg.Character.Walk,
		RotationRate: cfg.Character.RotationRate,
	})
	components.Character.SetValue(character, components.CharacterData{
		SpawnIndex: spawn.Index,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return character
}
