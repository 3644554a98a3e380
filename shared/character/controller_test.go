package character

import (
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/automoto/dashcrawler/shared/gamemath"
	"github.com/automoto/dashcrawler/shared/timer"
)

type fakeBody struct{ t Transform }

func (b *fakeBody) Transform() Transform { return b.t }

type fakeCamera struct{ yaw float64 }

func (c *fakeCamera) CameraYaw() float64 { return c.yaw }

type fakeMovement struct{ intents []gamemath.Vec3 }

func (m *fakeMovement) AddMovementIntent(v gamemath.Vec3) { m.intents = append(m.intents, v) }

type fakePhysics struct{ launches []gamemath.Vec3 }

func (p *fakePhysics) Launch(v gamemath.Vec3) { p.launches = append(p.launches, v) }

type spawn struct {
	effect string
	at     Transform
}

type fakeEffects struct{ spawns []spawn }

func (e *fakeEffects) SpawnOneShot(effect string, at Transform) {
	e.spawns = append(e.spawns, spawn{effect, at})
}

type rig struct {
	body    *fakeBody
	camera  *fakeCamera
	move    *fakeMovement
	physics *fakePhysics
	effects *fakeEffects
	clock   *timer.Clock
	c       *Controller
}

var testDash = DashConfig{Impulse: 3000, Cooldown: time.Second, VFX: "dash_burst"}

func newRig(t *testing.T, cfg DashConfig, opts ...Option) *rig {
	t.Helper()
	r := &rig{
		body:    &fakeBody{t: Transform{Location: gamemath.Vec3{X: 10, Y: 20}, Yaw: 90}},
		camera:  &fakeCamera{yaw: 45},
		move:    &fakeMovement{},
		physics: &fakePhysics{},
		effects: &fakeEffects{},
		clock:   timer.NewClock(),
	}
	c, err := NewController(Deps{
		Body:        r.body,
		Orientation: r.camera,
		Movement:    r.move,
		Physics:     r.physics,
		Effects:     r.effects,
		Scheduler:   r.clock,
	}, cfg, opts...)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	r.c = c
	return r
}

func nearVec(a, b gamemath.Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6 && math.Abs(a.Z-b.Z) < 1e-6
}

func TestMoveUsesCameraBasis(t *testing.T) {
	h := math.Sqrt2 / 2
	cases := []struct {
		yaw          float64
		wantForward  gamemath.Vec3
		wantStrafeRt gamemath.Vec3
	}{
		{0, gamemath.Vec3{X: 1}, gamemath.Vec3{Y: 1}},
		{45, gamemath.Vec3{X: h, Y: h}, gamemath.Vec3{X: -h, Y: h}},
		{90, gamemath.Vec3{Y: 1}, gamemath.Vec3{X: -1}},
		{180, gamemath.Vec3{X: -1}, gamemath.Vec3{Y: -1}},
		{270, gamemath.Vec3{Y: -1}, gamemath.Vec3{X: 1}},
	}

	for _, tc := range cases {
		r := newRig(t, testDash)
		r.c.Move(gamemath.Vec2{X: 0, Y: 1}, tc.yaw)
		r.c.Move(gamemath.Vec2{X: 1, Y: 0}, tc.yaw)

		if got := r.move.intents[0]; !nearVec(got, tc.wantForward) {
			t.Errorf("yaw %v forward intent = %+v, want %+v", tc.yaw, got, tc.wantForward)
		}
		if got := r.move.intents[1]; !nearVec(got, tc.wantStrafeRt) {
			t.Errorf("yaw %v strafe intent = %+v, want %+v", tc.yaw, got, tc.wantStrafeRt)
		}
	}
}

func TestMoveDoesNotNormalize(t *testing.T) {
	r := newRig(t, testDash)
	r.c.Move(gamemath.Vec2{X: 1, Y: 1}, 0)
	if got := r.move.intents[0]; !nearVec(got, gamemath.Vec3{X: 1, Y: 1}) {
		t.Fatalf("intent = %+v", got)
	}
	if r.c.LastMovementInput() != (gamemath.Vec2{X: 1, Y: 1}) {
		t.Fatalf("last input = %+v", r.c.LastMovementInput())
	}
}

func TestHandleMoveInputReadsLiveYaw(t *testing.T) {
	r := newRig(t, testDash)
	r.camera.yaw = 90
	r.c.HandleMoveInput(gamemath.Vec2{Y: 1})
	if got := r.move.intents[0]; !nearVec(got, gamemath.Vec3{Y: 1}) {
		t.Fatalf("intent = %+v", got)
	}
}

func TestDashStartsCooldown(t *testing.T) {
	r := newRig(t, testDash)
	if !r.c.Dash() {
		t.Fatal("first dash refused")
	}
	if r.c.CanDash() {
		t.Fatal("CanDash true right after dash")
	}
	if r.clock.Pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", r.clock.Pending())
	}
	if got := r.c.CooldownRemaining(); got != time.Second {
		t.Fatalf("CooldownRemaining = %v", got)
	}

	r.clock.Advance(500 * time.Millisecond)
	if r.c.CanDash() {
		t.Fatal("cooldown ended early")
	}
	if got := r.c.CooldownRemaining(); got != 500*time.Millisecond {
		t.Fatalf("CooldownRemaining = %v", got)
	}

	r.clock.Advance(500 * time.Millisecond)
	if !r.c.CanDash() {
		t.Fatal("cooldown did not end")
	}
	if r.c.CooldownRemaining() != 0 {
		t.Fatalf("CooldownRemaining = %v after reset", r.c.CooldownRemaining())
	}
}

func TestDashDuringCooldownIsNoop(t *testing.T) {
	r := newRig(t, testDash)
	notified := 0
	r.c.OnDashStarted(func(DashEvent) { notified++ })

	r.c.Dash()
	r.clock.Advance(100 * time.Millisecond)
	if r.c.Dash() {
		t.Fatal("dash during cooldown reported success")
	}

	if len(r.physics.launches) != 1 {
		t.Fatalf("launches = %d, want 1", len(r.physics.launches))
	}
	if len(r.effects.spawns) != 1 {
		t.Fatalf("spawns = %d, want 1", len(r.effects.spawns))
	}
	if notified != 1 {
		t.Fatalf("notifications = %d, want 1", notified)
	}
	if r.clock.Pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", r.clock.Pending())
	}
	// The original deadline still holds.
	r.clock.Advance(900 * time.Millisecond)
	if !r.c.CanDash() {
		t.Fatal("ignored dash pushed the cooldown back")
	}
}

func TestDashWithoutInputUsesFacing(t *testing.T) {
	r := newRig(t, testDash)
	r.body.t.Yaw = 180
	r.c.Move(gamemath.Vec2{}, 45)
	r.c.Dash()

	want := gamemath.Vec3{X: -3000}
	if got := r.physics.launches[0]; !nearVec(got, want) {
		t.Fatalf("launch = %+v, want %+v", got, want)
	}
}

func TestDashBeforeAnyMoveUsesFacing(t *testing.T) {
	r := newRig(t, testDash)
	r.c.Dash()
	want := gamemath.Vec3{Y: 3000}
	if got := r.physics.launches[0]; !nearVec(got, want) {
		t.Fatalf("launch = %+v, want %+v", got, want)
	}
}

func TestDashRightUsesMostRecentBasis(t *testing.T) {
	r := newRig(t, testDash)
	r.c.Move(gamemath.Vec2{X: 1}, 90)
	// The camera swings after the last sample; the dash keeps the sampled basis.
	r.camera.yaw = 0
	r.c.Dash()

	_, right := gamemath.YawBasis(90)
	if got := r.physics.launches[0]; !nearVec(got, right.Scale(3000)) {
		t.Fatalf("launch = %+v, want %+v", got, right.Scale(3000))
	}
}

func TestDashScalesWithInput(t *testing.T) {
	cases := []struct {
		name string
		in   gamemath.Vec2
		yaw  float64
	}{
		{"diagonal", gamemath.Vec2{X: 1, Y: 1}, 0},
		{"partial stick", gamemath.Vec2{X: 0.3}, 0},
		{"partial stick turned camera", gamemath.Vec2{Y: 0.5}, 135},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig(t, testDash)
			r.c.Move(tc.in, tc.yaw)
			r.c.Dash()

			want := gamemath.ToWorld(tc.in, tc.yaw).Scale(3000)
			if got := r.physics.launches[0]; !nearVec(got, want) {
				t.Fatalf("launch = %+v, want %+v", got, want)
			}
		})
	}
}

func TestDashRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		gap   time.Duration
		dashs int
	}{
		{"longer than cooldown", 1100 * time.Millisecond, 2},
		{"exactly cooldown", time.Second, 2},
		{"shorter than cooldown", 900 * time.Millisecond, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig(t, testDash)
			r.c.Dash()
			r.clock.Advance(tc.gap)
			r.c.Dash()

			if len(r.physics.launches) != tc.dashs {
				t.Fatalf("launches = %d, want %d", len(r.physics.launches), tc.dashs)
			}
			if len(r.effects.spawns) != tc.dashs {
				t.Fatalf("spawns = %d, want %d", len(r.effects.spawns), tc.dashs)
			}
		})
	}
}

func TestDashSpawnsVFXAtBody(t *testing.T) {
	r := newRig(t, testDash)
	r.c.Move(gamemath.Vec2{Y: 1}, 0)
	r.c.Dash()

	if len(r.effects.spawns) != 1 {
		t.Fatalf("spawns = %d", len(r.effects.spawns))
	}
	s := r.effects.spawns[0]
	if s.effect != "dash_burst" || s.at != r.body.t {
		t.Fatalf("spawn = %+v", s)
	}
}

func TestDashWithoutVFX(t *testing.T) {
	cfg := testDash
	cfg.VFX = ""
	r := newRig(t, cfg)
	if !r.c.Dash() {
		t.Fatal("dash refused")
	}
	if len(r.effects.spawns) != 0 {
		t.Fatalf("spawned %d effects with no VFX configured", len(r.effects.spawns))
	}

	clock := timer.NewClock()
	c, err := NewController(Deps{
		Body:      &fakeBody{},
		Movement:  &fakeMovement{},
		Physics:   &fakePhysics{},
		Scheduler: clock,
	}, testDash)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Dash() {
		t.Fatal("dash refused with nil effect sink")
	}
}

func TestListenersRunInOrderAndUnsubscribe(t *testing.T) {
	r := newRig(t, testDash)
	var order []int
	r.c.OnDashStarted(func(DashEvent) { order = append(order, 1) })
	unsub := r.c.OnDashStarted(func(DashEvent) { order = append(order, 2) })
	r.c.OnDashStarted(func(ev DashEvent) {
		order = append(order, 3)
		if !nearVec(ev.Velocity, ev.Direction.Scale(3000)) {
			t.Errorf("event velocity %+v does not match direction", ev.Velocity)
		}
	})

	r.c.Dash()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v", order)
	}

	unsub()
	unsub()
	order = nil
	r.clock.Advance(time.Second)
	r.c.Dash()
	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Fatalf("order after unsubscribe = %v", order)
	}
}

func TestReentrantDashFromListenerIsIgnored(t *testing.T) {
	r := newRig(t, testDash)
	inner := true
	r.c.OnDashStarted(func(DashEvent) { inner = r.c.Dash() })

	r.c.Dash()
	if inner {
		t.Fatal("listener started a second dash")
	}
	if len(r.physics.launches) != 1 || r.clock.Pending() != 1 {
		t.Fatalf("launches = %d, pending = %d", len(r.physics.launches), r.clock.Pending())
	}
}

func TestResetDashIdempotent(t *testing.T) {
	r := newRig(t, testDash)
	r.c.ResetDash()
	if !r.c.CanDash() {
		t.Fatal("ResetDash while ready changed state")
	}
	r.c.Dash()
	r.c.ResetDash()
	r.c.ResetDash()
	if !r.c.CanDash() {
		t.Fatal("ResetDash did not restore dash")
	}
}

func TestCloseCancelsCooldown(t *testing.T) {
	r := newRig(t, testDash)
	r.c.Dash()
	r.c.Close()
	r.c.Close()

	if r.clock.Pending() != 0 {
		t.Fatalf("pending timers after Close = %d", r.clock.Pending())
	}
	r.clock.Advance(2 * time.Second)
	if r.c.CanDash() {
		t.Fatal("cancelled cooldown still reset the dash")
	}
	r.c.Move(gamemath.Vec2{Y: 1}, 0)
	if len(r.move.intents) != 0 {
		t.Fatal("Move after Close reached the sink")
	}
	if r.c.Dash() {
		t.Fatal("Dash after Close succeeded")
	}
}

func TestNewControllerValidation(t *testing.T) {
	full := Deps{
		Body:      &fakeBody{},
		Movement:  &fakeMovement{},
		Physics:   &fakePhysics{},
		Scheduler: timer.NewClock(),
	}
	cases := []struct {
		name string
		mut  func(*Deps, *DashConfig)
	}{
		{"no body", func(d *Deps, _ *DashConfig) { d.Body = nil }},
		{"no movement", func(d *Deps, _ *DashConfig) { d.Movement = nil }},
		{"no physics", func(d *Deps, _ *DashConfig) { d.Physics = nil }},
		{"no scheduler", func(d *Deps, _ *DashConfig) { d.Scheduler = nil }},
		{"negative impulse", func(_ *Deps, c *DashConfig) { c.Impulse = -1 }},
		{"negative cooldown", func(_ *Deps, c *DashConfig) { c.Cooldown = -time.Second }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, cfg := full, testDash
			tc.mut(&d, &cfg)
			if _, err := NewController(d, cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDashLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newRig(t, testDash, WithLogger(zap.New(core)))

	r.c.Dash()
	r.clock.Advance(time.Second)

	if n := logs.FilterMessage("dash started").Len(); n != 1 {
		t.Fatalf("dash started logged %d times", n)
	}
	if n := logs.FilterMessage("dash ready").Len(); n != 1 {
		t.Fatalf("dash ready logged %d times", n)
	}
}
