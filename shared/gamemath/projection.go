package gamemath

import "math"

// View is an orthographic camera looking down at Target from the end of a boom.
// The boom yaw decides which world direction reads as screen-up; the pitch
// foreshortens ground depth.
type View struct {
	Target             Vec3
	Yaw                float64 // degrees
	Pitch              float64 // degrees, negative looks down
	ArmLength          float64
	ReferenceArmLength float64 // arm length at which PixelsPerUnit applies
	PixelsPerUnit      float64
	ScreenW, ScreenH   float64
}

// Scale is the number of screen pixels per world unit.
func (v View) Scale() float64 {
	if v.ArmLength <= 0 || v.ReferenceArmLength <= 0 {
		return v.PixelsPerUnit
	}
	return v.PixelsPerUnit * v.ReferenceArmLength / v.ArmLength
}

// Project maps a world point to screen coordinates.
func (v View) Project(p Vec3) (x, y float64) {
	d := p.Sub(v.Target)
	forward, right := YawBasis(v.Yaw)
	depth := d.Dot(forward)
	side := d.Dot(right)

	s, c := math.Sincos(math.Abs(v.Pitch) * math.Pi / 180)
	scale := v.Scale()

	x = v.ScreenW/2 + side*scale
	y = v.ScreenH/2 - depth*s*scale - d.Z*c*scale
	return x, y
}

// Unproject maps a screen point back onto the ground plane (Z = Target.Z).
func (v View) Unproject(x, y float64) Vec3 {
	scale := v.Scale()
	s := math.Sin(math.Abs(v.Pitch) * math.Pi / 180)
	if scale == 0 || s == 0 {
		return v.Target
	}
	side := (x - v.ScreenW/2) / scale
	depth := -(y - v.ScreenH/2) / (s * scale)

	forward, right := YawBasis(v.Yaw)
	return v.Target.Add(forward.Scale(depth)).Add(right.Scale(side))
}
