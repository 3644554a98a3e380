package factory

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/archetypes"
	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/character"
	"github.com/automoto/dashcrawler/shared/gamemath"
)

// DashBurst is the one-shot effect played when a dash starts.
const DashBurst = "dash_burst"

// SpawnEffect creates the named one-shot effect at a transform. It reports
// false for unknown effect names.
func SpawnEffect(ecs *ecs.ECS, name string, at character.Transform) bool {
	switch name {
	case DashBurst:
		CreateDashBurst(ecs, at)
		return true
	}
	return false
}

// CreateDashBurst spawns a flash at the body plus a ring of particles thrown
// outward, weighted behind the facing direction.
func CreateDashBurst(ecs *ecs.ECS, at character.Transform) {
	life := float32(cfg.VFX.BurstLifetime)

	createParticle(ecs, components.ParticleData{
		Position: at.Location,
		Radius:   cfg.VFX.BurstRadius,
		Color:    cfg.VFX.BurstColor,
		Alpha:    gween.New(0.9, 0, life*0.6, ease.OutQuad),
		Scale:    gween.New(0.5, 2.2, life*0.6, ease.OutCubic),
	})

	n := cfg.VFX.BurstParticles
	back := at.Yaw + 180
	for i := 0; i < n; i++ {
		// Spread over a full ring, bunched toward the back of the dash
		t := float64(i)/float64(n) - 0.5
		yaw := back + 360*t*math.Abs(t)*2
		dir := gamemath.YawToVector(yaw)
		speed := cfg.VFX.BurstSpeed * (0.6 + 0.4*math.Cos(t*math.Pi))

		createParticle(ecs, components.ParticleData{
			Position: at.Location,
			Velocity: dir.Scale(speed),
			Drag:     0.02,
			Radius:   cfg.VFX.BurstRadius * 0.3,
			Color:    cfg.VFX.BurstColor,
			Alpha:    gween.New(1, 0, life, ease.OutQuad),
			Scale:    gween.New(1, 0.2, life, ease.InQuad),
		})
	}
}

// CreateAfterimage leaves a fading copy of the body behind a launched character.
func CreateAfterimage(ecs *ecs.ECS, at character.Transform, radius float64) *donburi.Entry {
	return createParticle(ecs, components.ParticleData{
		Position:   at.Location,
		Yaw:        at.Yaw,
		Radius:     radius,
		Color:      cfg.VFX.AfterimageColor,
		Alpha:      gween.New(0.6, 0, float32(cfg.VFX.AfterimageFade), ease.Linear),
		Afterimage: true,
	})
}

func createParticle(ecs *ecs.ECS, p components.ParticleData) *donburi.Entry {
	entry := archetypes.Particle.Spawn(ecs)
	p.AlphaValue = 1
	p.ScaleValue = 1
	components.Particle.SetValue(entry, p)
	return entry
}
