package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/dashcrawler/tuning"
)

// TuningData holds the active tuning and the optional file watcher.
type TuningData struct {
	Spec    *tuning.Spec
	Path    string
	Watcher *tuning.Watcher // nil when running on the embedded default
	Reloads int
}

var Tuning = donburi.NewComponentType[TuningData]()
