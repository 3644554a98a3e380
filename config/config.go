package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/shared/gamemath"
	"github.com/automoto/dashcrawler/tuning"
)

// Default is the only render layer.
const Default ecs.LayerID = iota

// CharacterConfig contains the walking and orientation values for the controlled character
type CharacterConfig struct {
	Walk          gamemath.WalkParams
	RotationRate  float64 // degrees per second, orient-to-movement
	CapsuleRadius float64 // collision box is 2x this on each side

	// Rendering
	BodyColor   color.RGBA
	FacingColor color.RGBA
}

// DashConfig contains dash launch and cooldown values
type DashConfig struct {
	Impulse  float64
	Cooldown time.Duration
	VFX      string // empty disables the one-shot effect
}

// CameraConfig contains the spring arm and projection values
type CameraConfig struct {
	ArmLength          float64
	ReferenceArmLength float64 // arm length at which PixelsPerUnit applies
	Pitch              float64 // degrees, negative looks down
	Yaw                float64 // degrees
	RotateStep         float64 // degrees per Q/E press
	SwingDuration      time.Duration
	LagSpeed           float64 // follow smoothing per second, 0 snaps
	PixelsPerUnit      float64
}

// VFXConfig contains procedural effect values
type VFXConfig struct {
	BurstParticles   int
	BurstSpeed       float64 // world units per second
	BurstLifetime    float64 // seconds
	BurstRadius      float64 // world units
	BurstColor       color.RGBA
	AfterimageEvery  int     // frames between afterimages while launched
	AfterimageFade   float64 // seconds
	AfterimageColor  color.RGBA
	ShakeIntensity   float64 // pixels
	ShakeDuration    int     // frames
	SquashScaleAlong float64 // scale along the dash direction
	SquashScaleSide  float64
	SquashLerpSpeed  float64
}

// HUDConfig contains heads-up display values
type HUDConfig struct {
	Margin        float64
	BarWidth      float64
	BarHeight     float64
	BarBgColor    color.RGBA
	BarReadyColor color.RGBA
	BarCoolColor  color.RGBA
	TextColor     color.RGBA
	HintColor     color.RGBA
}

// ArenaConfig contains floor and wall rendering values
type ArenaConfig struct {
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	GridColor       color.RGBA
	GridSpacing     float64 // world units
	WallColor       color.RGBA
	WallTopColor    color.RGBA
	WallHeight      float64 // world units, drawn as an extruded top face
	SpaceCellSize   int     // resolv space cell size in world units
}

// PauseConfig contains pause overlay values
type PauseConfig struct {
	OverlayColor color.RGBA
	CameraSteps  []float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay    bool   // start with the debug overlay visible
	TuningPath string // hot-reloaded tuning file, empty uses the embedded default
	Level      string // arena name to load, empty resumes the last one
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Character CharacterConfig
var Dash DashConfig
var Camera CameraConfig
var VFX VFXConfig
var HUD HUDConfig
var Arena ArenaConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Character = CharacterConfig{
		BodyColor:   LightBlue,
		FacingColor: White,
	}

	Camera = CameraConfig{
		ReferenceArmLength: 1500,
	}

	VFX = VFXConfig{
		BurstParticles:   14,
		BurstSpeed:       900,
		BurstLifetime:    0.35,
		BurstRadius:      26,
		BurstColor:       BrightOrange,
		AfterimageEvery:  3,
		AfterimageFade:   0.25,
		AfterimageColor:  color.RGBA{R: 100, G: 180, B: 255, A: 140},
		ShakeIntensity:   3,
		ShakeDuration:    8,
		SquashScaleAlong: 1.4,
		SquashScaleSide:  0.7,
		SquashLerpSpeed:  0.15,
	}

	HUD = HUDConfig{
		Margin:        10,
		BarWidth:      130,
		BarHeight:     10,
		BarBgColor:    color.RGBA{R: 40, G: 40, B: 40, A: 255},
		BarReadyColor: LightGreen,
		BarCoolColor:  BrightOrange,
		TextColor:     White,
		HintColor:     color.RGBA{R: 180, G: 180, B: 180, A: 255},
	}

	Arena = ArenaConfig{
		BackgroundColor: color.RGBA{R: 12, G: 12, B: 18, A: 255},
		FloorColor:      color.RGBA{R: 28, G: 30, B: 40, A: 255},
		GridColor:       color.RGBA{R: 45, G: 48, B: 62, A: 255},
		GridSpacing:     200,
		WallColor:       color.RGBA{R: 70, G: 72, B: 90, A: 255},
		WallTopColor:    color.RGBA{R: 110, G: 112, B: 140, A: 255},
		WallHeight:      150,
		SpaceCellSize:   100,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		CameraSteps:  []float64{45, 90},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}

	ApplyTuning(tuning.Default())
}

// ApplyTuning copies a validated tuning spec into the global configs.
func ApplyTuning(s *tuning.Spec) {
	c := s.Character
	Character.Walk = gamemath.WalkParams{
		MaxWalkSpeed:          c.MaxWalkSpeed,
		MaxAcceleration:       c.MaxAcceleration,
		BrakingDeceleration:   c.BrakingDeceleration,
		GroundFriction:        c.GroundFriction,
		BrakingFrictionFactor: c.BrakingFrictionFactor,
	}
	Character.RotationRate = c.RotationRate
	Character.CapsuleRadius = c.CapsuleRadius

	Dash = DashConfig{
		Impulse:  s.Dash.Impulse,
		Cooldown: s.Dash.Cooldown,
		VFX:      s.Dash.VFX,
	}

	cam := s.Camera
	Camera.ArmLength = cam.ArmLength
	Camera.Pitch = cam.Pitch
	Camera.Yaw = cam.Yaw
	Camera.RotateStep = cam.RotateStep
	Camera.SwingDuration = cam.SwingDuration
	Camera.LagSpeed = cam.LagSpeed
	Camera.PixelsPerUnit = cam.PixelsPerUnit
}
