package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/archetypes"
	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/shared/timer"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Clock: timer.NewClock()})
	return clock
}
