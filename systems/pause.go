package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !pause.IsPaused)
		return
	}
	if pause.IsPaused {
		pause.FramesPaused++
	}
}

// SetPaused enters or leaves the pause state.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	pause.FramesPaused = 0
	PlaySFX(ecs, cfg.SoundUIClick)
	zap.L().Debug("pause toggled", zap.Bool("paused", paused))
}

// DrawPause renders the pause overlay. The panel itself is drawn by the scene.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		cfg.Pause.OverlayColor,
		false,
	)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
