package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/dashcrawler/shared/character"
)

type CharacterData struct {
	Controller  *character.Controller
	Unsubscribe func() // detaches the scene's dash listener
	SpawnIndex  int
	Afterimage  int  // frames until the next afterimage while launched
	WasReady    bool // dash availability last frame, for the ready cue
}

var Character = donburi.NewComponentType[CharacterData]()
