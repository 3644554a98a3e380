package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/dashcrawler/assets"
	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/gamemath"
	"github.com/automoto/dashcrawler/systems"
	"github.com/automoto/dashcrawler/systems/factory"
	"github.com/automoto/dashcrawler/tuning"
	"github.com/automoto/dashcrawler/ui"
)

// ArenaScene runs one arena with a single controlled character.
type ArenaScene struct {
	ecs        *ecs.ECS
	settingsUI *ui.SettingsUI
	tuning     *tuning.Spec
	tuningPath string
	watcher    *tuning.Watcher
	arena      string
	once       sync.Once
	err        error
}

// NewArenaScene creates a scene for the named arena. The watcher may be nil
// when hot reload is off; the scene owns it and closes it in Close.
func NewArenaScene(arena string, spec *tuning.Spec, tuningPath string, watcher *tuning.Watcher) *ArenaScene {
	return &ArenaScene{
		tuning:     spec,
		tuningPath: tuningPath,
		watcher:    watcher,
		arena:      arena,
	}
}

func (as *ArenaScene) Update() error {
	as.once.Do(func() {
		as.err = as.configure()
	})
	if as.err != nil {
		return as.err
	}

	as.ecs.Update()

	if systems.GetOrCreatePause(as.ecs).IsPaused {
		as.settingsUI.Update()
	}
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)

	if as.settingsUI != nil && systems.GetOrCreatePause(as.ecs).IsPaused {
		as.settingsUI.UI.Draw(screen)
	}
}

// Close cancels every controller and stops the tuning watcher.
func (as *ArenaScene) Close() {
	if as.ecs != nil {
		systems.DestroyCharacters(as.ecs)
	}
	if as.watcher != nil {
		if err := as.watcher.Close(); err != nil {
			zap.L().Warn("close tuning watcher", zap.Error(err))
		}
		as.watcher = nil
	}
}

func (as *ArenaScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateTuning)

	// Camera first so the character reads this frame's basis yaw
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCharacter))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	// Events queue sounds, so audio drains last
	ecs.AddSystem(systems.ProcessEvents)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	as.ecs = ecs

	arenas, names, err := assets.LoadArenas()
	if err != nil {
		return fmt.Errorf("load arenas: %w", err)
	}
	levelEntry, err := factory.CreateLevel(ecs, arenas, names, as.arena)
	if err != nil {
		return err
	}
	level := components.Level.Get(levelEntry)
	arena := level.Current

	factory.CreateSpace(ecs, arena, cfg.Arena.SpaceCellSize)
	for _, w := range arena.Walls {
		factory.CreateWall(ecs, w)
	}

	spawn, ok := arena.Spawn(0)
	if !ok {
		return fmt.Errorf("arena %q has no spawn points", level.Names[level.Index])
	}

	factory.CreateClock(ecs)
	factory.CreateTuning(ecs, as.tuning, as.tuningPath, as.watcher)
	// Snap camera to the spawn to prevent panning from (0,0)
	factory.CreateCamera(ecs, gamemath.Vec3{X: spawn.X, Y: spawn.Y})

	character := factory.CreateCharacter(ecs, spawn)
	if err := systems.AttachController(ecs, character); err != nil {
		return err
	}

	systems.SubscribeDashEvents(ecs)

	settings := systems.GetOrCreateSettings(ecs)
	as.settingsUI = ui.NewSettingsUI(settings,
		func() { systems.SetPaused(ecs, false) },
		func() { systems.PlaySFX(ecs, cfg.SoundUIClick) },
	)

	systems.SaveProgress(level.Names[level.Index])
	zap.L().Info("arena loaded",
		zap.String("arena", level.Names[level.Index]),
		zap.Int("walls", len(arena.Walls)),
		zap.Int("spawns", len(arena.Spawns)))
	return nil
}
