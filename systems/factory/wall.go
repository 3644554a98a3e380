package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/archetypes"
	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/shared/leveldata"
	"github.com/automoto/dashcrawler/tags"
)

func CreateWall(ecs *ecs.ECS, w leveldata.Wall) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(w.X, w.Y, w.W, w.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w.W, w.H))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
