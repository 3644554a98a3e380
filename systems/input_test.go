package systems

import (
	"testing"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/gamemath"
)

func TestMoveVector(t *testing.T) {
	tests := []struct {
		name                       string
		stickX, stickY             float64
		left, right, forward, back bool
		want                       gamemath.Vec2
	}{
		{name: "idle"},
		{name: "forward key", forward: true, want: gamemath.Vec2{Y: 1}},
		{name: "diagonal keys", right: true, back: true, want: gamemath.Vec2{X: 1, Y: -1}},
		{name: "opposite keys cancel", left: true, right: true, want: gamemath.Vec2{}},
		{name: "stick inside deadzone falls back to keys", stickX: 0.1, stickY: 0.1, left: true, want: gamemath.Vec2{X: -1}},
		{name: "stick wins over keys", stickX: 0.5, stickY: -0.5, forward: true, want: gamemath.Vec2{X: 0.5, Y: -0.5}},
		{name: "stick axes clamped", stickX: 1.4, stickY: -2, want: gamemath.Vec2{X: 1, Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveVector(tt.stickX, tt.stickY, 0.25, tt.left, tt.right, tt.forward, tt.back)
			if got != tt.want {
				t.Errorf("MoveVector() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConsumeMoveSendsOneZeroOnRelease(t *testing.T) {
	input := &components.InputData{}

	if _, send := ConsumeMove(input); send {
		t.Fatal("idle input sent a sample")
	}

	input.Move = gamemath.Vec2{X: 1}
	for i := 0; i < 3; i++ {
		got, send := ConsumeMove(input)
		if !send || got != input.Move {
			t.Fatalf("frame %d: ConsumeMove() = %+v, %v; want %+v, true", i, got, send, input.Move)
		}
	}

	input.Move = gamemath.Vec2{}
	got, send := ConsumeMove(input)
	if !send || got != (gamemath.Vec2{}) {
		t.Fatalf("release: ConsumeMove() = %+v, %v; want zero, true", got, send)
	}
	if _, send := ConsumeMove(input); send {
		t.Error("second idle frame after release sent a sample")
	}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}

	input.Current[cfg.ActionDash] = true
	state := GetAction(input, cfg.ActionDash)
	if !state.Pressed || !state.JustPressed || state.JustReleased {
		t.Errorf("press frame: %+v", state)
	}

	input.Previous = input.Current
	state = GetAction(input, cfg.ActionDash)
	if !state.Pressed || state.JustPressed {
		t.Errorf("held frame: %+v", state)
	}

	input.Previous = input.Current
	input.Current[cfg.ActionDash] = false
	state = GetAction(input, cfg.ActionDash)
	if state.Pressed || !state.JustReleased {
		t.Errorf("release frame: %+v", state)
	}
}
