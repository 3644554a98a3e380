package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused     bool
	FramesPaused int // frames since the pause began
}

var Pause = donburi.NewComponentType[PauseData]()
