package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/gamemath"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateCharacter in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	stickX, stickY, stickUsed := readLeftStick(gamepadIDs, cfg.Input.AnalogDeadzone)
	if stickUsed {
		gamepadUsed = true
	}

	input.Move = MoveVector(stickX, stickY, cfg.Input.AnalogDeadzone,
		input.Current[cfg.ActionMoveLeft],
		input.Current[cfg.ActionMoveRight],
		input.Current[cfg.ActionMoveForward],
		input.Current[cfg.ActionMoveBack],
	)

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// readLeftStick returns the first left stick outside the deadzone, with Y
// flipped so pushing up is positive.
func readLeftStick(gamepads []ebiten.GamepadID, deadzone float64) (x, y float64, ok bool) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(h, v) > deadzone {
			return h, -v, true
		}
	}
	return 0, 0, false
}

// MoveVector builds the raw movement sample. A stick outside the deadzone wins
// over the digital keys. Each axis is clamped to [-1, 1].
func MoveVector(stickX, stickY, deadzone float64, left, right, forward, back bool) gamemath.Vec2 {
	if math.Hypot(stickX, stickY) > deadzone {
		return gamemath.Vec2{X: stickX, Y: stickY}.ClampAxes()
	}

	var v gamemath.Vec2
	if right {
		v.X++
	}
	if left {
		v.X--
	}
	if forward {
		v.Y++
	}
	if back {
		v.Y--
	}
	return v
}

// ConsumeMove reports the movement sample to forward this frame. Non-zero
// samples are sent every frame; releasing the stick or keys sends exactly one
// zero sample.
func ConsumeMove(input *components.InputData) (gamemath.Vec2, bool) {
	if !input.Move.IsNearlyZero(gamemath.NearlyZeroTolerance) {
		input.MoveWasActive = true
		return input.Move, true
	}
	if input.MoveWasActive {
		input.MoveWasActive = false
		return gamemath.Vec2{}, true
	}
	return gamemath.Vec2{}, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
