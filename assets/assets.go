package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/dashcrawler/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelDir is the embedded directory holding the arena TMX files.
const LevelDir = "levels"

// LoadArenas parses every embedded arena. Names are sorted.
func LoadArenas() (map[string]*leveldata.ArenaData, []string, error) {
	arenas, names, err := leveldata.LoadAllArenas(assetFS, LevelDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load embedded arenas: %w", err)
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("no arenas found in %s", LevelDir)
	}
	return arenas, names, nil
}
