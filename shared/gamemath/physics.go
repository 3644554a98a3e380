package gamemath

import "math"

const (
	// brakeToStopSpeed snaps small residual velocities to zero after braking.
	brakeToStopSpeed = 10.0
	// brakingSubStep keeps braking stable at low frame rates.
	brakingSubStep = 1.0 / 33.0
	// exceedTolerance allows 1% over max speed before braking kicks in.
	exceedTolerance = 1.01
)

// WalkParams configures the ground movement integrator.
type WalkParams struct {
	MaxWalkSpeed          float64 // units per second at full input
	MaxAcceleration       float64 // units per second squared at full input
	BrakingDeceleration   float64 // constant deceleration with no input
	GroundFriction        float64 // turning responsiveness and braking friction
	BrakingFrictionFactor float64 // multiplier on GroundFriction while braking
}

// ApplyBraking slows vel with friction plus a constant deceleration. It never
// reverses the velocity.
func ApplyBraking(vel Vec2, friction, decel, dt float64) Vec2 {
	if dt <= 0 || vel.IsNearlyZero(NearlyZeroTolerance) || (friction == 0 && decel == 0) {
		return vel
	}

	old := vel
	revAccel := vel.Normalized().Scale(-math.Max(decel, 0))
	friction = math.Max(friction, 0)

	for remaining := dt; remaining >= 1e-6; {
		step := math.Min(remaining, brakingSubStep)
		remaining -= step
		vel = vel.Add(vel.Scale(-friction).Add(revAccel).Scale(step))
		if vel.Dot(old) <= 0 {
			return Vec2{}
		}
	}

	if vel.Len() < brakeToStopSpeed {
		return Vec2{}
	}
	return vel
}

// StepWalking integrates one tick of walking movement. input is the accumulated
// movement intent for the tick; it is clamped to unit length here.
func StepWalking(vel, input Vec2, p WalkParams, dt float64) Vec2 {
	if dt <= 0 {
		return vel
	}

	input = input.ClampedToMaxSize(1)
	analog := input.Len()
	zeroAccel := analog < NearlyZeroTolerance
	accel := input.Scale(p.MaxAcceleration)
	exceeding := vel.Len() > p.MaxWalkSpeed*exceedTolerance

	if zeroAccel || exceeding {
		old := vel
		vel = ApplyBraking(vel, p.GroundFriction*p.BrakingFrictionFactor, p.BrakingDeceleration, dt)
		// Still steering while over max speed: don't brake below it.
		if exceeding && !zeroAccel && vel.Len() < p.MaxWalkSpeed && accel.Dot(old) > 0 {
			vel = old.Normalized().Scale(p.MaxWalkSpeed)
		}
	} else {
		speed := vel.Len()
		dir := accel.Normalized()
		vel = vel.Sub(vel.Sub(dir.Scale(speed)).Scale(math.Min(dt*p.GroundFriction, 1)))
	}

	if zeroAccel {
		return vel
	}

	maxInputSpeed := p.MaxWalkSpeed * analog
	if l := vel.Len(); l > maxInputSpeed {
		maxInputSpeed = l
	}
	return vel.Add(accel.Scale(dt)).ClampedToMaxSize(maxInputSpeed)
}

// RotateToMovement turns yaw toward the direction of dir at rate degrees per second.
// A near-zero dir leaves the yaw unchanged.
func RotateToMovement(yaw float64, dir Vec2, rate, dt float64) float64 {
	if dir.IsNearlyZero(NearlyZeroTolerance) {
		return yaw
	}
	desired := math.Atan2(dir.Y, dir.X) * 180 / math.Pi
	return FixedTurn(yaw, desired, rate*dt)
}
