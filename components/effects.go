package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/automoto/dashcrawler/shared/gamemath"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// SquashStretchData tracks body scale deformation along the dash direction
type SquashStretchData struct {
	Along       float64 // current scale along Axis
	Side        float64 // current scale across Axis
	Axis        float64 // yaw of the stretch axis in degrees
	TargetAlong float64
	TargetSide  float64
	LerpSpeed   float64 // how fast to return to normal
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// ParticleData is a procedural VFX particle on the ground plane.
// The entity is destroyed when Alpha finishes.
type ParticleData struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Drag     float64 // fraction of velocity kept per second
	Radius   float64 // world units at Scale 1
	Yaw      float64 // afterimages keep the body facing
	Color    color.RGBA

	Alpha      *gween.Tween
	Scale      *gween.Tween
	AlphaValue float32
	ScaleValue float32

	Afterimage bool
}

var Particle = donburi.NewComponentType[ParticleData]()
