package systems

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/gamemath"
	"github.com/automoto/dashcrawler/tags"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	dt := 1 / float64(config.C.TPS)

	input := getOrCreateInput(e)
	step := GetOrCreateSettings(e).CameraStep
	if GetAction(input, config.ActionRotateCameraLeft).JustPressed {
		RotateCamera(camera, -step)
	}
	if GetAction(input, config.ActionRotateCameraRight).JustPressed {
		RotateCamera(camera, step)
	}
	UpdateSwing(camera, dt)

	updateScreenShake(cameraEntry, camera)

	characterEntry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(characterEntry)
	target := gamemath.Vec3{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
	camera.Target = FollowTarget(camera.Target, target, config.Camera.LagSpeed, dt)
}

// FollowTarget moves the boom origin toward target with exponential lag.
// A lag speed of zero snaps.
func FollowTarget(current, target gamemath.Vec3, lagSpeed, dt float64) gamemath.Vec3 {
	if lagSpeed <= 0 {
		return target
	}
	t := gamemath.Clamp(dt*lagSpeed, 0, 1)
	return current.Add(target.Sub(current).Scale(t))
}

// RotateCamera starts a swing of the boom yaw by delta degrees. A swing
// already in flight continues from its current yaw toward the new end.
func RotateCamera(camera *components.CameraData, delta float64) {
	end := camera.Yaw + delta
	if camera.Swing != nil {
		end = camera.SwingTo + delta
	}
	camera.SwingFrom = camera.Yaw
	camera.SwingTo = end

	dur := float32(config.Camera.SwingDuration.Seconds())
	if dur <= 0 {
		camera.Yaw = gamemath.NormalizeAxis(end)
		camera.Swing = nil
		return
	}
	camera.Swing = gween.New(float32(camera.Yaw), float32(end), dur, ease.OutCubic)
}

// UpdateSwing advances the boom swing tween.
func UpdateSwing(camera *components.CameraData, dt float64) {
	if camera.Swing == nil {
		return
	}
	yaw, done := camera.Swing.Update(float32(dt))
	camera.Yaw = float64(yaw)
	if done {
		camera.Yaw = gamemath.NormalizeAxis(camera.SwingTo)
		camera.Swing = nil
	}
}

// CameraView builds the projection for the current boom state, including
// any shake offset.
func CameraView(e *ecs.ECS, screenW, screenH float64) gamemath.View {
	v := gamemath.View{
		Yaw:                config.Camera.Yaw,
		Pitch:              config.Camera.Pitch,
		ArmLength:          config.Camera.ArmLength,
		ReferenceArmLength: config.Camera.ReferenceArmLength,
		PixelsPerUnit:      config.Camera.PixelsPerUnit,
		ScreenW:            screenW,
		ScreenH:            screenH,
	}
	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		v.Target = camera.Target
		v.Yaw = camera.Yaw
		v.Pitch = camera.Pitch
		v.ArmLength = camera.ArmLength
		v.ScreenW += 2 * camera.Shake.X
		v.ScreenH += 2 * camera.Shake.Y
	}
	return v
}

// updateScreenShake sets the shake offset on the camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Shake.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Shake.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
