package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	WallLayer    = "walls"
	SpawnObjects = "PlayerSpawn"
)

// ErrNoSpawn is returned for an arena without a PlayerSpawn object.
var ErrNoSpawn = errors.New("arena has no player spawn")

// LoadArena parses a TMX file into ArenaData. It takes an fs.FS so callers can pass
// the embedded assets or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	data := &ArenaData{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    float64(levelMap.Width) * tileW,
		Height:   float64(levelMap.Height) * tileH,
		TileSize: tileW,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
				switch {
				case solid && runStart < 0:
					runStart = x
				case !solid && runStart >= 0:
					data.Walls = append(data.Walls, Wall{
						X: float64(runStart) * tileW,
						Y: float64(y) * tileH,
						W: float64(x-runStart) * tileW,
						H: tileH,
					})
					runStart = -1
				}
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnObjects {
			continue
		}
		for _, o := range og.Objects {
			data.Spawns = append(data.Spawns, Spawn{
				X:      o.X + o.Width/2,
				Y:      o.Y + o.Height/2,
				Facing: float64(o.Properties.GetInt("facing")),
				Index:  o.Properties.GetInt("spawnIndex"),
			})
		}
	}
	if len(data.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	sort.Slice(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Index < data.Spawns[j].Index
	})

	return data, nil
}

// LoadAllArenas loads every .tmx file in dir, keyed by file stem, plus the sorted names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
