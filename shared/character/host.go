package character

import (
	"time"

	"github.com/automoto/dashcrawler/shared/gamemath"
	"github.com/automoto/dashcrawler/shared/timer"
)

// Transform is a world location plus a facing yaw in degrees.
type Transform struct {
	Location gamemath.Vec3
	Yaw      float64
}

// Forward is the unit facing direction on the ground plane.
func (t Transform) Forward() gamemath.Vec3 {
	return gamemath.YawToVector(t.Yaw)
}

// OrientationSource provides the live camera yaw.
type OrientationSource interface {
	CameraYaw() float64
}

// MovementSink accumulates movement intent for the current frame.
type MovementSink interface {
	AddMovementIntent(intent gamemath.Vec3)
}

// PhysicsSink replaces the body velocity outright.
type PhysicsSink interface {
	Launch(velocity gamemath.Vec3)
}

// EffectSink spawns one-shot visual effects.
type EffectSink interface {
	SpawnOneShot(effect string, at Transform)
}

// Body exposes where the character is and which way it faces.
type Body interface {
	Transform() Transform
}

// Scheduler runs one-shot callbacks on the simulation goroutine.
// *timer.Clock satisfies it.
type Scheduler interface {
	Now() time.Duration
	AfterFunc(d time.Duration, fn func()) timer.Handle
	Stop(h timer.Handle) bool
}

var _ Scheduler = (*timer.Clock)(nil)
