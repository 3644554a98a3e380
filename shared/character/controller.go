// Package character holds the camera-relative movement and dash logic for a
// controlled character. It talks to the game only through the interfaces in host.go.
package character

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/automoto/dashcrawler/shared/gamemath"
	"github.com/automoto/dashcrawler/shared/timer"
)

// ErrInvalidConfig is returned by NewController for missing collaborators or a bad dash config.
var ErrInvalidConfig = errors.New("character: invalid config")

// DashConfig is fixed for the lifetime of a controller.
type DashConfig struct {
	Impulse  float64       // launch speed in units per second
	Cooldown time.Duration // time before the next dash is allowed
	VFX      string        // one-shot effect name, empty to skip
}

// DashEvent is delivered to dash-started listeners.
type DashEvent struct {
	Direction gamemath.Vec3
	Velocity  gamemath.Vec3
	Origin    Transform
}

// Deps are the host collaborators. Orientation and Effects are optional.
type Deps struct {
	Body        Body
	Orientation OrientationSource
	Movement    MovementSink
	Physics     PhysicsSink
	Effects     EffectSink
	Scheduler   Scheduler
}

type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

type listener struct {
	id uint64
	fn func(DashEvent)
}

// Controller turns move and dash input into host requests.
type Controller struct {
	deps Deps
	cfg  DashConfig
	log  *zap.Logger

	lastInput    gamemath.Vec2
	lastBasisYaw float64

	canDash  bool
	deadline time.Duration
	cooldown timer.Handle

	listeners []listener
	nextID    uint64
	closed    bool
}

// NewController validates deps and cfg and returns a controller that can dash.
func NewController(deps Deps, cfg DashConfig, opts ...Option) (*Controller, error) {
	switch {
	case deps.Body == nil:
		return nil, fmt.Errorf("%w: body is required", ErrInvalidConfig)
	case deps.Movement == nil:
		return nil, fmt.Errorf("%w: movement sink is required", ErrInvalidConfig)
	case deps.Physics == nil:
		return nil, fmt.Errorf("%w: physics sink is required", ErrInvalidConfig)
	case deps.Scheduler == nil:
		return nil, fmt.Errorf("%w: scheduler is required", ErrInvalidConfig)
	case cfg.Impulse < 0:
		return nil, fmt.Errorf("%w: dash impulse %v is negative", ErrInvalidConfig, cfg.Impulse)
	case cfg.Cooldown < 0:
		return nil, fmt.Errorf("%w: dash cooldown %v is negative", ErrInvalidConfig, cfg.Cooldown)
	}

	c := &Controller{
		deps:    deps,
		cfg:     cfg,
		log:     zap.NewNop(),
		canDash: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Move sends the camera-relative intent for input to the movement sink and records
// the sample and basis for a later dash. input.X strafes, input.Y moves forward.
func (c *Controller) Move(input gamemath.Vec2, cameraYaw float64) {
	if c.closed {
		return
	}
	c.deps.Movement.AddMovementIntent(gamemath.ToWorld(input, cameraYaw))
	c.lastInput = input
	c.lastBasisYaw = cameraYaw
}

// HandleMoveInput is Move with the yaw read from the orientation source.
func (c *Controller) HandleMoveInput(input gamemath.Vec2) {
	yaw := c.lastBasisYaw
	if c.deps.Orientation != nil {
		yaw = c.deps.Orientation.CameraYaw()
	}
	c.Move(input, yaw)
}

// Dash launches the character if the cooldown allows it. It reports whether a dash started.
func (c *Controller) Dash() bool {
	if c.closed || !c.canDash {
		return false
	}

	origin := c.deps.Body.Transform()
	dir := c.dashDirection(origin)
	velocity := dir.Scale(c.cfg.Impulse)

	// Cooldown state goes first so re-entrant calls from listeners are ignored.
	c.canDash = false
	c.deadline = c.deps.Scheduler.Now() + c.cfg.Cooldown
	c.cooldown = c.deps.Scheduler.AfterFunc(c.cfg.Cooldown, c.ResetDash)

	c.deps.Physics.Launch(velocity)

	ev := DashEvent{Direction: dir, Velocity: velocity, Origin: origin}
	for _, l := range append([]listener(nil), c.listeners...) {
		l.fn(ev)
	}

	if c.cfg.VFX != "" && c.deps.Effects != nil {
		c.deps.Effects.SpawnOneShot(c.cfg.VFX, origin)
	}

	c.log.Debug("dash started",
		zap.Float64("dir_x", dir.X),
		zap.Float64("dir_y", dir.Y),
		zap.Duration("cooldown", c.cfg.Cooldown))
	return true
}

func (c *Controller) dashDirection(origin Transform) gamemath.Vec3 {
	if c.lastInput.IsNearlyZero(gamemath.NearlyZeroTolerance) {
		return origin.Forward()
	}
	return gamemath.ToWorld(c.lastInput, c.lastBasisYaw)
}

// ResetDash ends the cooldown. Calling it while ready does nothing.
func (c *Controller) ResetDash() {
	if c.canDash {
		return
	}
	c.canDash = true
	c.deadline = 0
	c.cooldown = timer.Handle{}
	c.log.Debug("dash ready")
}

// OnDashStarted registers fn to run synchronously on every dash, in registration order.
// The returned func removes it.
func (c *Controller) OnDashStarted(fn func(DashEvent)) (unsubscribe func()) {
	if fn == nil || c.closed {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close cancels a pending cooldown and drops all listeners. Later Move and Dash calls
// do nothing.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if !c.cooldown.IsZero() {
		c.deps.Scheduler.Stop(c.cooldown)
		c.cooldown = timer.Handle{}
	}
	c.listeners = nil
	c.log.Debug("character controller closed")
}

func (c *Controller) CanDash() bool { return c.canDash }

func (c *Controller) Closed() bool { return c.closed }

func (c *Controller) LastMovementInput() gamemath.Vec2 { return c.lastInput }

func (c *Controller) DashConfig() DashConfig { return c.cfg }

// CooldownRemaining is zero when a dash is available.
func (c *Controller) CooldownRemaining() time.Duration {
	if c.canDash {
		return 0
	}
	if left := c.deadline - c.deps.Scheduler.Now(); left > 0 {
		return left
	}
	return 0
}
