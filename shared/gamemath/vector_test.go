package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func nearVec3(a, b Vec3) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func TestYawBasis(t *testing.T) {
	h := math.Sqrt2 / 2
	cases := []struct {
		yaw     float64
		forward Vec3
		right   Vec3
	}{
		{0, Vec3{X: 1}, Vec3{Y: 1}},
		{45, Vec3{X: h, Y: h}, Vec3{X: -h, Y: h}},
		{90, Vec3{Y: 1}, Vec3{X: -1}},
		{180, Vec3{X: -1}, Vec3{Y: -1}},
		{270, Vec3{Y: -1}, Vec3{X: 1}},
		{-90, Vec3{Y: -1}, Vec3{X: 1}},
	}

	for _, c := range cases {
		f, r := YawBasis(c.yaw)
		if !nearVec3(f, c.forward) {
			t.Errorf("yaw %v: forward = %+v, want %+v", c.yaw, f, c.forward)
		}
		if !nearVec3(r, c.right) {
			t.Errorf("yaw %v: right = %+v, want %+v", c.yaw, r, c.right)
		}
		if math.Abs(f.Dot(r)) > eps {
			t.Errorf("yaw %v: basis not orthogonal", c.yaw)
		}
	}
}

func TestToWorldIsRotationOfInput(t *testing.T) {
	inputs := []Vec2{{1, 0}, {0, 1}, {1, 1}, {-0.5, 0.25}}
	for _, yaw := range []float64{0, 45, 90, 180, 270} {
		for _, in := range inputs {
			got := ToWorld(in, yaw)
			if !near(got.Len(), in.Len()) {
				t.Errorf("yaw %v input %+v: length %v, want %v", yaw, in, got.Len(), in.Len())
			}
			// Rotating back by -yaw recovers the input in (forward, right) terms.
			f, r := YawBasis(yaw)
			if !near(got.Dot(f), in.Y) || !near(got.Dot(r), in.X) {
				t.Errorf("yaw %v input %+v: got %+v", yaw, in, got)
			}
		}
	}
}

func TestToWorldKeepsDiagonalMagnitude(t *testing.T) {
	got := ToWorld(Vec2{1, 1}, 0)
	if !near(got.Len(), math.Sqrt2) {
		t.Fatalf("diagonal intent length = %v, want sqrt2", got.Len())
	}
}

func TestNormalizeAxis(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		180:  180,
		-180: 180,
		190:  -170,
		-190: 170,
		720:  0,
		450:  90,
	}
	for in, want := range cases {
		if got := NormalizeAxis(in); !near(got, want) {
			t.Errorf("NormalizeAxis(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFixedTurn(t *testing.T) {
	cases := []struct {
		name                   string
		current, desired, step float64
		want                   float64
	}{
		{"within step", 0, 10, 20, 10},
		{"clockwise capped", 0, 90, 30, 30},
		{"counter-clockwise capped", 0, -90, 30, -30},
		{"short way across seam", 170, -170, 5, 175},
		{"zero step", 12, 90, 0, 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FixedTurn(c.current, c.desired, c.step); !near(got, c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestVectorHelpers(t *testing.T) {
	if !(Vec2{}).Normalized().IsNearlyZero(NearlyZeroTolerance) {
		t.Fatal("normalizing zero should stay zero")
	}
	if got := (Vec2{3, 4}).ClampedToMaxSize(1); !near(got.Len(), 1) {
		t.Fatalf("clamped length = %v", got.Len())
	}
	if got := (Vec2{0.5, 0}).ClampedToMaxSize(1); got != (Vec2{0.5, 0}) {
		t.Fatalf("short vector changed: %+v", got)
	}
	if got := (Vec2{2, -3}).ClampAxes(); got != (Vec2{1, -1}) {
		t.Fatalf("ClampAxes = %+v", got)
	}
	if got := VectorToYaw(Vec3{Y: 1}); !near(got, 90) {
		t.Fatalf("VectorToYaw = %v", got)
	}
}
