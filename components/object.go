package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision box of an entity in the level space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the level's collision space singleton.
var Space = donburi.NewComponentType[resolv.Space]()
