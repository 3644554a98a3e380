package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/dashcrawler/config"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
