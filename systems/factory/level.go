package factory

import (
	"errors"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/archetypes"
	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/shared/leveldata"
)

// CreateLevel selects the named arena, falling back to the first one when the
// name is unknown.
func CreateLevel(ecs *ecs.ECS, arenas map[string]*leveldata.ArenaData, names []string, name string) (*donburi.Entry, error) {
	if len(names) == 0 {
		return nil, errors.New("create level: no arenas")
	}

	index := 0
	for i, n := range names {
		if n == name {
			index = i
			break
		}
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Current: arenas[names[index]],
		Arenas:  arenas,
		Names:   names,
		Index:   index,
	})
	return level, nil
}
