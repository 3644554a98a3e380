// Package gamemath holds the engine-free vector and movement math shared by the
// character core and the ECS host. World space is Z-up with yaw measured in degrees
// around Z; yaw 0 faces +X and yaw 90 faces +Y.
package gamemath

import "math"

// NearlyZeroTolerance is the length below which a vector counts as zero.
const NearlyZeroTolerance = 1e-4

// Vec2 is a raw 2D input sample: X strafes, Y moves forward.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) IsNearlyZero(tol float64) bool { return v.Len() < tol }

// Normalized returns the unit vector, or the zero vector when v is nearly zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < NearlyZeroTolerance {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampedToMaxSize shortens v to max if it is longer.
func (v Vec2) ClampedToMaxSize(max float64) Vec2 {
	if max <= 0 {
		return Vec2{}
	}
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Scale(max / l)
}

// ClampAxes clamps each component to [-1, 1].
func (v Vec2) ClampAxes() Vec2 {
	return Vec2{Clamp(v.X, -1, 1), Clamp(v.Y, -1, 1)}
}

// Vec3 is a world-space vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Len2D ignores Z.
func (v Vec3) Len2D() float64 { return math.Hypot(v.X, v.Y) }

// XY drops Z.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

func (v Vec3) IsNearlyZero(tol float64) bool { return v.Len() < tol }

// Normalized returns the unit vector, or the zero vector when v is nearly zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l < NearlyZeroTolerance {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// FromXY lifts a ground-plane vector to world space with Z = 0.
func FromXY(v Vec2) Vec3 { return Vec3{X: v.X, Y: v.Y} }

// YawBasis returns the horizontal forward and right unit vectors for a yaw in degrees.
// Right is forward turned 90 degrees clockwise seen from above.
func YawBasis(yawDeg float64) (forward, right Vec3) {
	s, c := math.Sincos(yawDeg * math.Pi / 180)
	forward = Vec3{X: c, Y: s}
	right = Vec3{X: -s, Y: c}
	return forward, right
}

// ToWorld maps a raw input sample into world space using the yaw basis, unnormalized.
func ToWorld(input Vec2, yawDeg float64) Vec3 {
	forward, right := YawBasis(yawDeg)
	return forward.Scale(input.Y).Add(right.Scale(input.X))
}

// YawToVector is the forward vector for a yaw.
func YawToVector(yawDeg float64) Vec3 {
	f, _ := YawBasis(yawDeg)
	return f
}

// VectorToYaw returns the yaw of the horizontal part of v, in (-180, 180].
func VectorToYaw(v Vec3) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// NormalizeAxis wraps an angle in degrees into (-180, 180].
func NormalizeAxis(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// FixedTurn turns current toward desired by at most step degrees, taking the short way.
func FixedTurn(current, desired, step float64) float64 {
	if step <= 0 {
		return NormalizeAxis(current)
	}
	delta := NormalizeAxis(desired - current)
	if math.Abs(delta) <= step {
		return NormalizeAxis(desired)
	}
	if delta > 0 {
		return NormalizeAxis(current + step)
	}
	return NormalizeAxis(current - step)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp blends a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
