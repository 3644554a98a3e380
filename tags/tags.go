package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Wall      = donburi.NewTag().SetName("Wall")
	Particle  = donburi.NewTag().SetName("Particle")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
)
