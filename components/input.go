package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/gamemath"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Move is the raw movement sample, x strafe and y forward, each in [-1, 1].
	Move gamemath.Vec2
	// MoveWasActive is true if Move was non-zero last frame, so release can
	// send a single zero sample.
	MoveWasActive bool
}

var Input = donburi.NewComponentType[InputData]()
