package main

import (
	"flag"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/fonts"
	"github.com/automoto/dashcrawler/logging"
	"github.com/automoto/dashcrawler/scenes"
	"github.com/automoto/dashcrawler/systems"
	"github.com/automoto/dashcrawler/tuning"
)

const appName = "dashcrawler"

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	logCfg := logging.DefaultConfig()
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML tuning file, watched for changes (default: embedded values)")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "start with the debug overlay visible")
	flag.StringVar(&config.Debug.Level, "level", "", "arena to load (default: last played)")
	flag.StringVar(&logCfg.Level, "log-level", logCfg.Level, "log level: debug, info, warn, error")
	flag.StringVar(&logCfg.Format, "log-format", logCfg.Format, "log format: console or json")
	flag.BoolVar(&logCfg.Development, "log-dev", false, "development logger with colored levels")
	flag.Parse()

	logger, flush, err := logging.Install(logging.FromEnv(logCfg))
	if err != nil {
		panic(err)
	}
	defer flush()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	spec := tuning.Default()
	var watcher *tuning.Watcher
	if path := config.Debug.TuningPath; path != "" {
		spec, err = tuning.Load(path)
		if err != nil {
			logger.Fatal("load tuning", zap.String("path", path), zap.Error(err))
		}
		watcher, err = tuning.NewWatcher(path)
		if err != nil {
			logger.Warn("tuning hot reload disabled", zap.String("path", path), zap.Error(err))
		}
	}
	config.ApplyTuning(spec)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err != nil {
		logger.Warn("could not load settings", zap.Error(err))
	} else {
		systems.UseSavedSettings(saved)
	}

	arena := config.Debug.Level
	if arena == "" {
		last, err := systems.LoadProgress()
		if err != nil {
			logger.Warn("could not load progress", zap.Error(err))
		}
		arena = last
	}

	// Preload to avoid a hitch on the first dash
	systems.PreloadAllSFX()

	ebiten.SetWindowTitle("Dashcrawler")
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	scene := scenes.NewArenaScene(arena, spec, config.Debug.TuningPath, watcher)
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}
