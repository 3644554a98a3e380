package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"

	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/character"
	"github.com/automoto/dashcrawler/shared/gamemath"
)

// DashStartedEvent is published by a character's dash listener.
type DashStartedEvent struct {
	Entry *donburi.Entry
	Dash  character.DashEvent
}

var DashStarted = events.NewEventType[DashStartedEvent]()

// SubscribeDashEvents hooks the feedback for a dash: camera shake, body
// squash along the dash and the whoosh.
func SubscribeDashEvents(e *ecs.ECS) {
	DashStarted.Subscribe(e.World, func(w donburi.World, ev DashStartedEvent) {
		TriggerScreenShake(e, cfg.VFX.ShakeIntensity, cfg.VFX.ShakeDuration)
		if ev.Entry.Valid() {
			TriggerSquashStretch(ev.Entry, gamemath.VectorToYaw(ev.Dash.Direction))
		}
		PlaySFX(e, cfg.SoundDash)
	})
}

// ProcessEvents delivers queued events. Runs after the systems that publish.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
