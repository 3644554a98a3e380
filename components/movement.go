package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/dashcrawler/shared/gamemath"
)

// MovementData is the ground movement state of a walking body. World units,
// Z up; the body never leaves the floor so only X/Y are integrated.
type MovementData struct {
	Velocity     gamemath.Vec2
	PendingInput gamemath.Vec2 // accumulated movement intent, consumed each tick
	Yaw          float64       // facing in degrees
	Params       gamemath.WalkParams
	RotationRate float64 // degrees per second

	// Launched is set by a dash and cleared once speed falls back to walking speed.
	Launched bool
}

var Movement = donburi.NewComponentType[MovementData]()
