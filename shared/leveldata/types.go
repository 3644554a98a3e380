// Package leveldata parses arena TMX files into plain data. It has no dependency on
// ebitengine, donburi or resolv.
package leveldata

// ArenaData is everything the game needs from an arena file. All values are in world
// units; one TMX pixel is one world unit.
type ArenaData struct {
	Name     string
	Walls    []Wall
	Spawns   []Spawn
	Width    float64
	Height   float64
	TileSize float64
}

// Wall is an axis-aligned solid block. Neighbouring wall tiles on a row are merged.
type Wall struct {
	X, Y, W, H float64
}

// Spawn is a player start. Facing is a yaw in degrees.
type Spawn struct {
	X, Y   float64
	Facing float64
	Index  int
}

// Spawn returns the spawn with the given index, falling back to the first one.
func (a *ArenaData) Spawn(index int) (Spawn, bool) {
	for _, s := range a.Spawns {
		if s.Index == index {
			return s, true
		}
	}
	if len(a.Spawns) > 0 {
		return a.Spawns[0], true
	}
	return Spawn{}, false
}
