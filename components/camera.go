package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/dashcrawler/shared/gamemath"
)

// CameraData is the top-down boom. Target trails the character; Yaw is what the
// character controller reads as its movement basis.
type CameraData struct {
	Target    gamemath.Vec3
	Yaw       float64 // degrees
	Pitch     float64 // degrees
	ArmLength float64

	// Boom swing between RotateStep increments
	Swing     *gween.Tween
	SwingFrom float64
	SwingTo   float64

	Shake math.Vec2 // current screen-space shake offset in pixels
}

var Camera = donburi.NewComponentType[CameraData]()
