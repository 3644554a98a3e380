package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/tags"
	"github.com/automoto/dashcrawler/tuning"
)

// UpdateTuning drains the tuning watcher and reloads the file after a change.
// Runs while paused so edits land immediately.
func UpdateTuning(ecs *ecs.ECS) {
	entry, ok := components.Tuning.First(ecs.World)
	if !ok {
		return
	}
	data := components.Tuning.Get(entry)
	if data.Watcher == nil {
		return
	}

	changed := false
drain:
	for {
		select {
		case <-data.Watcher.Events:
			changed = true
		case err := <-data.Watcher.Errors:
			zap.L().Warn("tuning watcher error", zap.Error(err))
		default:
			break drain
		}
	}

	if changed {
		_ = ReloadTuning(ecs)
	}
}

// ReloadTuning reads the tuning file again. An invalid file is logged and the
// running values are kept.
func ReloadTuning(ecs *ecs.ECS) error {
	entry, ok := components.Tuning.First(ecs.World)
	if !ok {
		return nil
	}
	data := components.Tuning.Get(entry)

	spec, err := tuning.Load(data.Path)
	if err != nil {
		zap.L().Warn("tuning reload rejected, keeping current values",
			zap.String("path", data.Path), zap.Error(err))
		return err
	}

	ApplyTuningSpec(ecs, spec)
	zap.L().Info("tuning reloaded",
		zap.String("path", data.Path),
		zap.Float64("dash_impulse", spec.Dash.Impulse),
		zap.Duration("dash_cooldown", spec.Dash.Cooldown))
	return nil
}

// ApplyTuningSpec installs a validated spec: config globals, the camera rig,
// every body's walk parameters and size, and a fresh controller per character.
// Closing the old controller cancels its cooldown.
func ApplyTuningSpec(ecs *ecs.ECS, spec *tuning.Spec) {
	var prevYaw float64
	hadPrev := false

	if entry, ok := components.Tuning.First(ecs.World); ok {
		data := components.Tuning.Get(entry)
		if data.Spec != nil {
			prevYaw, hadPrev = data.Spec.Camera.Yaw, true
		}
		data.Spec = spec
		data.Reloads++
	}

	cfg.ApplyTuning(spec)

	if entry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(entry)
		camera.ArmLength = cfg.Camera.ArmLength
		camera.Pitch = cfg.Camera.Pitch
		if hadPrev && prevYaw != spec.Camera.Yaw {
			camera.Swing = nil
			camera.Yaw = cfg.Camera.Yaw
		}
	}

	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		mv := components.Movement.Get(e)
		mv.Params = cfg.Character.Walk
		mv.RotationRate = cfg.Character.RotationRate
		if e.HasComponent(components.Object) {
			resizeBody(components.Object.Get(e).Object, cfg.Character.CapsuleRadius*2)
		}
	})

	var characters []*donburi.Entry
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		characters = append(characters, e)
	})
	for _, e := range characters {
		DetachController(e)
		if err := AttachController(ecs, e); err != nil {
			zap.L().Error("could not rebuild character controller", zap.Error(err))
		}
	}
}

// resizeBody changes a square collision box to side size, keeping its center.
func resizeBody(obj *resolv.Object, size float64) {
	if obj.W == size && obj.H == size {
		return
	}
	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	obj.W, obj.H = size, size
	obj.X, obj.Y = cx-size/2, cy-size/2
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Update()
}
