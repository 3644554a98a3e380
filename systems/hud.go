package systems

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/fonts"
	"github.com/automoto/dashcrawler/tags"
)

// DrawHUD renders the dash cooldown bar, its label and the controls hint.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Character.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Character.Get(entry).Controller
	if ctrl == nil {
		return
	}

	m := cfg.HUD.Margin
	vector.FillRect(screen,
		float32(m), float32(m),
		float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
		cfg.HUD.BarBgColor, false)

	ratio := DashReadiness(ctrl.CooldownRemaining(), ctrl.DashConfig().Cooldown)
	barColor := cfg.HUD.BarCoolColor
	if ctrl.CanDash() {
		barColor = cfg.HUD.BarReadyColor
	}
	vector.FillRect(screen,
		float32(m), float32(m),
		float32(cfg.HUD.BarWidth*ratio), float32(cfg.HUD.BarHeight),
		barColor, false)

	label := DashLabel(ctrl.CanDash(), ctrl.CooldownRemaining())
	text.Draw(screen, label, fonts.Regular.Get(), int(m+cfg.HUD.BarWidth+8), int(m+cfg.HUD.BarHeight), cfg.HUD.TextColor)

	input := getOrCreateInput(ecs)
	hint := controlsHint(input.LastInputMethod)
	text.Draw(screen, hint, fonts.Small.Get(), int(m), screen.Bounds().Dy()-int(m), cfg.HUD.HintColor)
}

// DashReadiness is the filled fraction of the cooldown bar, 1 when ready.
func DashReadiness(remaining, cooldown time.Duration) float64 {
	if cooldown <= 0 || remaining <= 0 {
		return 1
	}
	if remaining >= cooldown {
		return 0
	}
	return 1 - float64(remaining)/float64(cooldown)
}

// DashLabel is the status text next to the cooldown bar.
func DashLabel(ready bool, remaining time.Duration) string {
	if ready {
		return "DASH READY"
	}
	return fmt.Sprintf("DASH %.1fs", remaining.Seconds())
}

func controlsHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Stick: Move   A: Dash   LB/RB: Rotate camera   Start: Pause"
	}
	return "WASD: Move   Space: Dash   Q/E: Rotate camera   Esc: Pause   R: Respawn"
}
