package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/dashcrawler/shared/leveldata"
)

type LevelData struct {
	Current *leveldata.ArenaData
	Arenas  map[string]*leveldata.ArenaData
	Names   []string // sorted arena names
	Index   int      // position of Current in Names
}

var Level = donburi.NewComponentType[LevelData]()
