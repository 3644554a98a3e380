package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const smallArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="100" tileheight="100" infinite="0">
 <tileset firstgid="1" name="solid" tilewidth="100" tileheight="100" tilecount="1" columns="1"/>
 <layer id="1" name="walls" width="4" height="3">
  <data encoding="csv">
1,1,0,1,
0,0,0,0,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="250" y="150">
   <properties>
    <property name="facing" type="int" value="180"/>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="1" x="50" y="150">
   <properties>
    <property name="facing" type="int" value="-90"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="100" tileheight="100" infinite="0">
 <tileset firstgid="1" name="solid" tilewidth="100" tileheight="100" tilecount="1" columns="1"/>
 <layer id="1" name="walls" width="1" height="1">
  <data encoding="csv">
0
</data>
 </layer>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"levels/small.tmx": {Data: []byte(smallArena)}}

	a, err := LoadArena(fsys, "levels/small.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if a.Name != "small" || a.Width != 400 || a.Height != 300 || a.TileSize != 100 {
		t.Fatalf("arena header = %+v", a)
	}

	want := []Wall{
		{X: 0, Y: 0, W: 200, H: 100},
		{X: 300, Y: 0, W: 100, H: 100},
		{X: 0, Y: 200, W: 400, H: 100},
	}
	if len(a.Walls) != len(want) {
		t.Fatalf("walls = %+v", a.Walls)
	}
	for i := range want {
		if a.Walls[i] != want[i] {
			t.Errorf("wall %d = %+v, want %+v", i, a.Walls[i], want[i])
		}
	}

	if len(a.Spawns) != 2 {
		t.Fatalf("spawns = %+v", a.Spawns)
	}
	if s := a.Spawns[0]; s.Index != 0 || s.X != 50 || s.Facing != -90 {
		t.Errorf("first spawn = %+v", s)
	}
	if s, ok := a.Spawn(1); !ok || s.X != 250 || s.Facing != 180 {
		t.Errorf("Spawn(1) = %+v, %v", s, ok)
	}
	if s, ok := a.Spawn(7); !ok || s.Index != 0 {
		t.Errorf("missing index should fall back to first spawn, got %+v", s)
	}
}

func TestLoadArenaErrors(t *testing.T) {
	fsys := fstest.MapFS{"levels/empty.tmx": {Data: []byte(noSpawnArena)}}

	if _, err := LoadArena(fsys, "levels/empty.tmx"); !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("err = %v, want ErrNoSpawn", err)
	}
	if _, err := LoadArena(fsys, "levels/missing.tmx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":     {Data: []byte(smallArena)},
		"levels/a.tmx":     {Data: []byte(smallArena)},
		"levels/notes.txt": {Data: []byte("ignored")},
	}
	arenas, names, err := LoadAllArenas(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllArenas: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v", names)
	}
	if arenas["b"] == nil {
		t.Fatal("arena b missing")
	}

	if _, _, err := LoadAllArenas(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected error for empty dir")
	}
}
