package systems

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/character"
	"github.com/automoto/dashcrawler/shared/gamemath"
	"github.com/automoto/dashcrawler/systems/factory"
	"github.com/automoto/dashcrawler/tags"
)

// characterHost backs a controller with the components of one character entity.
type characterHost struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

var (
	_ character.Body         = (*characterHost)(nil)
	_ character.MovementSink = (*characterHost)(nil)
	_ character.PhysicsSink  = (*characterHost)(nil)
	_ character.EffectSink   = (*characterHost)(nil)
)

// Transform is the center of the collision box and the current facing.
func (h *characterHost) Transform() character.Transform {
	obj := components.Object.Get(h.entry)
	mv := components.Movement.Get(h.entry)
	return character.Transform{
		Location: gamemath.Vec3{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2},
		Yaw:      mv.Yaw,
	}
}

func (h *characterHost) AddMovementIntent(intent gamemath.Vec3) {
	mv := components.Movement.Get(h.entry)
	mv.PendingInput = mv.PendingInput.Add(intent.XY())
}

// Launch replaces the ground velocity. The floor is flat so Z is dropped.
func (h *characterHost) Launch(velocity gamemath.Vec3) {
	mv := components.Movement.Get(h.entry)
	mv.Velocity = velocity.XY()
	mv.Launched = true
}

func (h *characterHost) SpawnOneShot(effect string, at character.Transform) {
	if settings := GetOrCreateSettings(h.ecs); !settings.DashVFX {
		return
	}
	if !factory.SpawnEffect(h.ecs, effect, at) {
		zap.L().Warn("unknown effect", zap.String("effect", effect))
	}
}

// cameraOrientation reads the live boom yaw.
type cameraOrientation struct {
	ecs *ecs.ECS
}

func (c cameraOrientation) CameraYaw() float64 {
	entry, ok := components.Camera.First(c.ecs.World)
	if !ok {
		return cfg.Camera.Yaw
	}
	return components.Camera.Get(entry).Yaw
}

// AttachController builds the character controller for a character entity
// from the current dash config. The dash listener publishes DashStarted.
func AttachController(ecs *ecs.ECS, entry *donburi.Entry) error {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return errors.New("attach controller: no clock in world")
	}

	host := &characterHost{ecs: ecs, entry: entry}
	ctrl, err := character.NewController(character.Deps{
		Body:        host,
		Orientation: cameraOrientation{ecs: ecs},
		Movement:    host,
		Physics:     host,
		Effects:     host,
		Scheduler:   components.Clock.Get(clockEntry).Clock,
	}, character.DashConfig{
		Impulse:  cfg.Dash.Impulse,
		Cooldown: cfg.Dash.Cooldown,
		VFX:      cfg.Dash.VFX,
	}, character.WithLogger(zap.L().Named("character")))
	if err != nil {
		return fmt.Errorf("attach controller: %w", err)
	}

	data := components.Character.Get(entry)
	data.Controller = ctrl
	data.WasReady = ctrl.CanDash()
	data.Unsubscribe = ctrl.OnDashStarted(func(ev character.DashEvent) {
		DashStarted.Publish(ecs.World, DashStartedEvent{Entry: entry, Dash: ev})
	})
	return nil
}

// DetachController closes the controller, cancelling a pending cooldown.
func DetachController(entry *donburi.Entry) {
	data := components.Character.Get(entry)
	if data.Unsubscribe != nil {
		data.Unsubscribe()
		data.Unsubscribe = nil
	}
	if data.Controller != nil {
		data.Controller.Close()
		data.Controller = nil
	}
}

// UpdateCharacter forwards input to every character controller.
// Must run AFTER UpdateInput and UpdateCamera so the basis yaw is current.
func UpdateCharacter(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	sample, sendMove := ConsumeMove(input)

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Character.Get(e)
		ctrl := data.Controller
		if ctrl == nil {
			return
		}

		if ctrl.CanDash() && !data.WasReady {
			PlaySFX(ecs, cfg.SoundDashReady)
		}

		if GetAction(input, cfg.ActionRespawn).JustPressed {
			RespawnCharacter(ecs, e)
		}

		if sendMove {
			ctrl.HandleMoveInput(sample)
		}

		// Held dash retries every frame; the cooldown gates it
		if GetAction(input, cfg.ActionDash).Pressed {
			ctrl.Dash()
		}
		data.WasReady = ctrl.CanDash()
	})
}

// RespawnCharacter moves a character back to its spawn point and stops it.
// A running dash cooldown is kept.
func RespawnCharacter(ecs *ecs.ECS, e *donburi.Entry) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Current == nil {
		return
	}
	data := components.Character.Get(e)
	spawn, ok := level.Current.Spawn(data.SpawnIndex)
	if !ok {
		return
	}

	obj := components.Object.Get(e)
	obj.X = spawn.X - obj.W/2
	obj.Y = spawn.Y - obj.H/2
	obj.Update()

	mv := components.Movement.Get(e)
	mv.Velocity = gamemath.Vec2{}
	mv.PendingInput = gamemath.Vec2{}
	mv.Yaw = spawn.Facing
	mv.Launched = false

	zap.L().Debug("character respawned",
		zap.Int("spawn", spawn.Index),
		zap.Float64("x", spawn.X),
		zap.Float64("y", spawn.Y))
}

// DestroyCharacters tears down every character entity. Called when the scene
// is unloaded.
func DestroyCharacters(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		DetachController(e)
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		e.Remove()
	}
}
