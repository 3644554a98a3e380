package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/dashcrawler/shared/timer"
)

// ClockData is the scene's simulated clock. Dash cooldowns are scheduled on it.
type ClockData struct {
	Clock *timer.Clock
}

var Clock = donburi.NewComponentType[ClockData]()
