package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/fonts"
	"github.com/automoto/dashcrawler/shared/gamemath"
	"github.com/automoto/dashcrawler/tags"
)

var (
	debugSolidColor     = color.RGBA{100, 100, 100, 255}
	debugCharacterColor = color.RGBA{0, 255, 255, 255}
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	view := CameraView(ecs, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))

	// Collision boxes on the floor
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := debugSolidColor
			if obj.HasTags(tags.ResolvCharacter) {
				c = debugCharacterColor
			}
			corners := []gamemath.Vec3{
				{X: obj.X, Y: obj.Y},
				{X: obj.X + obj.W, Y: obj.Y},
				{X: obj.X + obj.W, Y: obj.Y + obj.H},
				{X: obj.X, Y: obj.Y + obj.H},
			}
			for i := range corners {
				strokeWorldLine(screen, view, corners[i], corners[(i+1)%4], 1, c)
			}
		}
	}

	lines := DebugLines(ecs)
	text.Draw(screen, strings.Join(lines, "\n"), fonts.Mono.Get(), 10, 40, color.White)
}

// DebugLines is the text of the debug overlay.
func DebugLines(ecs *ecs.ECS) []string {
	lines := []string{fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())}

	if entry, ok := tags.Character.First(ecs.World); ok {
		mv := components.Movement.Get(entry)
		lines = append(lines,
			fmt.Sprintf("vel %.0f, %.0f  speed %.0f", mv.Velocity.X, mv.Velocity.Y, mv.Velocity.Len()),
			fmt.Sprintf("yaw %.1f  launched %t", mv.Yaw, mv.Launched),
		)
		if ctrl := components.Character.Get(entry).Controller; ctrl != nil {
			in := ctrl.LastMovementInput()
			lines = append(lines, fmt.Sprintf("input %.2f, %.2f  can dash %t", in.X, in.Y, ctrl.CanDash()))
		}
	}
	if entry, ok := components.Camera.First(ecs.World); ok {
		lines = append(lines, fmt.Sprintf("camera yaw %.1f", components.Camera.Get(entry).Yaw))
	}
	if entry, ok := components.Clock.First(ecs.World); ok {
		clock := components.Clock.Get(entry).Clock
		lines = append(lines, fmt.Sprintf("clock %s  timers %d", clock.Now(), clock.Pending()))
	}
	if entry, ok := components.Tuning.First(ecs.World); ok {
		lines = append(lines, fmt.Sprintf("tuning reloads %d", components.Tuning.Get(entry).Reloads))
	}
	return lines
}
