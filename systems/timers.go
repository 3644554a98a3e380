package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
)

// UpdateClock advances the scene clock by one tick, firing due callbacks
// such as dash cooldown resets. Wrapped in the pause check so cooldowns
// freeze while paused.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	components.Clock.Get(entry).Clock.Advance(time.Second / time.Duration(cfg.C.TPS))
}
