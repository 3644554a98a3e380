// Package tuning loads the character, dash and camera parameters from YAML.
package tuning

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("tuning: invalid")

type Spec struct {
	Character CharacterSpec `yaml:"character"`
	Dash      DashSpec      `yaml:"dash"`
	Camera    CameraSpec    `yaml:"camera"`
}

type CharacterSpec struct {
	MaxWalkSpeed          float64 `yaml:"max_walk_speed"`
	MaxAcceleration       float64 `yaml:"max_acceleration"`
	BrakingDeceleration   float64 `yaml:"braking_deceleration"`
	GroundFriction        float64 `yaml:"ground_friction"`
	BrakingFrictionFactor float64 `yaml:"braking_friction_factor"`
	RotationRate          float64 `yaml:"rotation_rate"` // degrees per second
	CapsuleRadius         float64 `yaml:"capsule_radius"`
}

type DashSpec struct {
	Impulse  float64       `yaml:"impulse"`
	Cooldown time.Duration `yaml:"cooldown"`
	VFX      string        `yaml:"vfx"`
}

type CameraSpec struct {
	ArmLength     float64       `yaml:"arm_length"`
	Pitch         float64       `yaml:"pitch"`
	Yaw           float64       `yaml:"yaw"`
	RotateStep    float64       `yaml:"rotate_step"`
	SwingDuration time.Duration `yaml:"swing_duration"`
	LagSpeed      float64       `yaml:"lag_speed"`
	PixelsPerUnit float64       `yaml:"pixels_per_unit"`
}

// Default returns the embedded tuning. It panics if the embedded file is broken.
func Default() *Spec {
	var s Spec
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		panic(fmt.Sprintf("tuning: embedded default: %v", err))
	}
	return &s
}

// Parse overlays data on the defaults and validates the result. Keys missing from
// data keep their default values.
func Parse(data []byte) (*Spec, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads path from disk, or returns the defaults when path is empty.
func Load(path string) (*Spec, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate reports every out-of-range field at once.
func (s *Spec) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	c := s.Character
	check(finite(c.MaxWalkSpeed) && c.MaxWalkSpeed > 0, "character.max_walk_speed must be positive and finite, got %v", c.MaxWalkSpeed)
	check(finite(c.MaxAcceleration) && c.MaxAcceleration > 0, "character.max_acceleration must be positive and finite, got %v", c.MaxAcceleration)
	check(c.BrakingDeceleration >= 0, "character.braking_deceleration must not be negative, got %v", c.BrakingDeceleration)
	check(c.GroundFriction >= 0, "character.ground_friction must not be negative, got %v", c.GroundFriction)
	check(c.BrakingFrictionFactor >= 0, "character.braking_friction_factor must not be negative, got %v", c.BrakingFrictionFactor)
	check(c.RotationRate > 0, "character.rotation_rate must be positive, got %v", c.RotationRate)
	check(c.CapsuleRadius > 0, "character.capsule_radius must be positive, got %v", c.CapsuleRadius)

	d := s.Dash
	check(finite(d.Impulse) && d.Impulse >= 0, "dash.impulse must be finite and not negative, got %v", d.Impulse)
	check(d.Cooldown >= 0, "dash.cooldown must not be negative, got %v", d.Cooldown)

	cam := s.Camera
	check(cam.ArmLength > 0, "camera.arm_length must be positive, got %v", cam.ArmLength)
	check(cam.Pitch < 0 && cam.Pitch >= -90, "camera.pitch must be in [-90, 0), got %v", cam.Pitch)
	check(cam.RotateStep > 0 && cam.RotateStep <= 180, "camera.rotate_step must be in (0, 180], got %v", cam.RotateStep)
	check(cam.SwingDuration >= 0, "camera.swing_duration must not be negative, got %v", cam.SwingDuration)
	check(cam.LagSpeed >= 0, "camera.lag_speed must not be negative, got %v", cam.LagSpeed)
	check(cam.PixelsPerUnit > 0, "camera.pixels_per_unit must be positive, got %v", cam.PixelsPerUnit)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
