package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/archetypes"
	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/gamemath"
)

// CreateCamera creates the boom looking at target with the configured rig.
func CreateCamera(ecs *ecs.ECS, target gamemath.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Target:    target,
		Yaw:       cfg.Camera.Yaw,
		Pitch:     cfg.Camera.Pitch,
		ArmLength: cfg.Camera.ArmLength,
	})
	return camera
}
