package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/tuning"
)

// CreateTuning stores the active tuning and its watcher, if any.
func CreateTuning(ecs *ecs.ECS, spec *tuning.Spec, path string, watcher *tuning.Watcher) *donburi.Entry {
	entry := ecs.World.Entry(ecs.World.Create(components.Tuning))
	components.Tuning.SetValue(entry, components.TuningData{
		Spec:    spec,
		Path:    path,
		Watcher: watcher,
	})
	return entry
}
