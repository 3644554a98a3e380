package factory

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/archetypes"
	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/shared/leveldata"
)

// CreateSpace creates the collision space covering an arena.
func CreateSpace(ecs *ecs.ECS, arena *leveldata.ArenaData, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w := int(math.Ceil(arena.Width))
	h := int(math.Ceil(arena.Height))
	components.Space.Set(space, resolv.NewSpace(w, h, cellSize, cellSize))
	return space
}
