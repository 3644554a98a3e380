package gamemath

import (
	"math"
	"testing"
)

var testWalk = WalkParams{
	MaxWalkSpeed:          800,
	MaxAcceleration:       2048,
	BrakingDeceleration:   2000,
	GroundFriction:        8,
	BrakingFrictionFactor: 2,
}

const tick = 1.0 / 60.0

func TestStepWalkingAcceleratesToMaxSpeed(t *testing.T) {
	vel := Vec2{}
	for i := 0; i < 600; i++ {
		vel = StepWalking(vel, Vec2{1, 0}, testWalk, tick)
		if vel.Len() > testWalk.MaxWalkSpeed+1e-6 {
			t.Fatalf("tick %d: speed %v exceeds max", i, vel.Len())
		}
	}
	if !near(vel.Len(), testWalk.MaxWalkSpeed) {
		t.Fatalf("settled speed = %v, want %v", vel.Len(), testWalk.MaxWalkSpeed)
	}
	if vel.Y != 0 || vel.X <= 0 {
		t.Fatalf("velocity drifted off axis: %+v", vel)
	}
}

func TestStepWalkingClampsDiagonalInput(t *testing.T) {
	vel := Vec2{}
	for i := 0; i < 600; i++ {
		vel = StepWalking(vel, Vec2{1, 1}, testWalk, tick)
	}
	if vel.Len() > testWalk.MaxWalkSpeed+1e-6 {
		t.Fatalf("diagonal speed %v exceeds max", vel.Len())
	}
}

func TestStepWalkingAnalogScalesSpeed(t *testing.T) {
	vel := Vec2{}
	for i := 0; i < 600; i++ {
		vel = StepWalking(vel, Vec2{0, 0.5}, testWalk, tick)
	}
	if !near(vel.Len(), testWalk.MaxWalkSpeed/2) {
		t.Fatalf("half tilt speed = %v, want %v", vel.Len(), testWalk.MaxWalkSpeed/2)
	}
}

func TestStepWalkingBrakesToStop(t *testing.T) {
	vel := Vec2{800, 0}
	for i := 0; i < 120; i++ {
		next := StepWalking(vel, Vec2{}, testWalk, tick)
		if next.X < 0 {
			t.Fatalf("braking reversed velocity: %+v", next)
		}
		if next.Len() > vel.Len() {
			t.Fatalf("braking sped up: %v -> %v", vel.Len(), next.Len())
		}
		vel = next
	}
	if vel != (Vec2{}) {
		t.Fatalf("expected full stop, got %+v", vel)
	}
}

func TestStepWalkingDecaysLaunchWithInput(t *testing.T) {
	vel := Vec2{3000, 0}
	vel = StepWalking(vel, Vec2{1, 0}, testWalk, tick)
	if vel.Len() >= 3000 {
		t.Fatalf("launch speed should decay, got %v", vel.Len())
	}
	if vel.Len() < testWalk.MaxWalkSpeed {
		t.Fatalf("steering launch dropped below max walk speed: %v", vel.Len())
	}

	for i := 0; i < 120; i++ {
		vel = StepWalking(vel, Vec2{1, 0}, testWalk, tick)
	}
	if math.Abs(vel.Len()-testWalk.MaxWalkSpeed) > 1 {
		t.Fatalf("launch did not settle at walk speed: %v", vel.Len())
	}
}

func TestStepWalkingZeroDT(t *testing.T) {
	vel := Vec2{12, 34}
	if got := StepWalking(vel, Vec2{1, 0}, testWalk, 0); got != vel {
		t.Fatalf("zero dt changed velocity: %+v", got)
	}
}

func TestApplyBrakingNoForces(t *testing.T) {
	vel := Vec2{100, 0}
	if got := ApplyBraking(vel, 0, 0, tick); got != vel {
		t.Fatalf("got %+v", got)
	}
}

func TestRotateToMovement(t *testing.T) {
	yaw := RotateToMovement(0, Vec2{0, 1}, 640, tick)
	if !near(yaw, 640*tick) {
		t.Fatalf("yaw after one tick = %v, want %v", yaw, 640*tick)
	}
	if got := RotateToMovement(33, Vec2{}, 640, tick); got != 33 {
		t.Fatalf("zero direction changed yaw to %v", got)
	}
	yaw = 0
	for i := 0; i < 60; i++ {
		yaw = RotateToMovement(yaw, Vec2{-1, 0}, 640, tick)
	}
	if !near(math.Abs(yaw), 180) {
		t.Fatalf("yaw = %v, want 180", yaw)
	}
}

func TestViewProjection(t *testing.T) {
	v := View{
		Target:             Vec3{X: 1000, Y: 1000},
		Yaw:                0,
		Pitch:              -90,
		ArmLength:          1500,
		ReferenceArmLength: 1500,
		PixelsPerUnit:      0.2,
		ScreenW:            640,
		ScreenH:            360,
	}

	if x, y := v.Project(v.Target); !near(x, 320) || !near(y, 180) {
		t.Fatalf("target projects to (%v, %v)", x, y)
	}

	// Camera forward reads as screen-up.
	x, y := v.Project(Vec3{X: 1100, Y: 1000})
	if !near(x, 320) || !near(y, 160) {
		t.Fatalf("forward point projects to (%v, %v)", x, y)
	}

	// Camera right reads as screen-right.
	x, y = v.Project(Vec3{X: 1000, Y: 1100})
	if !near(x, 340) || !near(y, 180) {
		t.Fatalf("right point projects to (%v, %v)", x, y)
	}

	v.Yaw = 90
	x, y = v.Project(Vec3{X: 1000, Y: 1100})
	if !near(x, 320) || !near(y, 160) {
		t.Fatalf("rotated camera: forward point projects to (%v, %v)", x, y)
	}

	v.ArmLength = 3000
	if !near(v.Scale(), 0.1) {
		t.Fatalf("longer arm should zoom out, scale = %v", v.Scale())
	}
}

func TestViewUnprojectRoundTrip(t *testing.T) {
	v := View{
		Target:             Vec3{X: 200, Y: -50},
		Yaw:                45,
		Pitch:              -50,
		ArmLength:          1500,
		ReferenceArmLength: 1500,
		PixelsPerUnit:      0.25,
		ScreenW:            640,
		ScreenH:            360,
	}
	p := Vec3{X: 420, Y: 130}
	x, y := v.Project(p)
	if got := v.Unproject(x, y); !nearVec3(got, p) {
		t.Fatalf("round trip = %+v, want %+v", got, p)
	}
}
