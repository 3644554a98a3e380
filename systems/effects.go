package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/systems/factory"
	"github.com/automoto/dashcrawler/tags"
)

// UpdateEffects processes visual effect components (particles, afterimages, squash/stretch)
func UpdateEffects(ecs *ecs.ECS) {
	dt := 1 / float64(config.C.TPS)
	updateAfterimages(ecs)
	updateParticles(ecs, dt)
	updateSquashStretchEffects(ecs)
}

// updateAfterimages drops a trail behind characters while a dash launch is active
func updateAfterimages(ecs *ecs.ECS) {
	if !GetOrCreateSettings(ecs).DashVFX {
		return
	}
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		mv := components.Movement.Get(e)
		data := components.Character.Get(e)
		if !mv.Launched {
			data.Afterimage = 0
			return
		}
		if data.Afterimage > 0 {
			data.Afterimage--
			return
		}
		data.Afterimage = config.VFX.AfterimageEvery
		host := &characterHost{ecs: ecs, entry: e}
		factory.CreateAfterimage(ecs, host.Transform(), config.Character.CapsuleRadius)
	})
}

// updateParticles moves particles, advances their tweens and destroys finished ones
func updateParticles(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		if StepParticle(components.Particle.Get(e), dt) {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// StepParticle advances one particle and reports whether it has finished.
func StepParticle(p *components.ParticleData, dt float64) bool {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	if p.Drag > 0 {
		p.Velocity = p.Velocity.Scale(math.Pow(p.Drag, dt))
	}

	if p.Scale != nil {
		p.ScaleValue, _ = p.Scale.Update(float32(dt))
	}
	if p.Alpha == nil {
		return true
	}
	var done bool
	p.AlphaValue, done = p.Alpha.Update(float32(dt))
	return done
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.Along += (ss.TargetAlong - ss.Along) * ss.LerpSpeed
		ss.Side += (ss.TargetSide - ss.Side) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.Along-ss.TargetAlong) < threshold && math.Abs(ss.Side-ss.TargetSide) < threshold {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

// TriggerSquashStretch stretches an entity along axisYaw and squashes it across
func TriggerSquashStretch(entry *donburi.Entry, axisYaw float64) {
	data := components.SquashStretchData{
		Along:       config.VFX.SquashScaleAlong,
		Side:        config.VFX.SquashScaleSide,
		Axis:        axisYaw,
		TargetAlong: 1.0,
		TargetSide:  1.0,
		LerpSpeed:   config.VFX.SquashLerpSpeed,
	}
	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, data)
}
