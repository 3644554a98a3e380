package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/gamemath"
)

// UpdateMovement integrates walking for every body, then moves it through
// the collision space.
func UpdateMovement(ecs *ecs.ECS) {
	dt := 1 / float64(cfg.C.TPS)

	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		mv := components.Movement.Get(e)
		input := mv.PendingInput
		mv.PendingInput = gamemath.Vec2{}

		StepMovement(mv, input, dt)

		if e.HasComponent(components.Object) {
			MoveAndCollide(mv, components.Object.Get(e).Object, dt)
		}
	})
}

// StepMovement advances velocity and facing by one tick of accumulated input.
func StepMovement(mv *components.MovementData, input gamemath.Vec2, dt float64) {
	mv.Velocity = gamemath.StepWalking(mv.Velocity, input, mv.Params, dt)

	if mv.Launched && mv.Velocity.Len() <= mv.Params.MaxWalkSpeed {
		mv.Launched = false
	}

	// Keep the dash facing until the launch has bled off
	if mv.Launched || input.IsNearlyZero(gamemath.NearlyZeroTolerance) {
		return
	}
	mv.Yaw = gamemath.RotateToMovement(mv.Yaw, input, mv.RotationRate, dt)
}
