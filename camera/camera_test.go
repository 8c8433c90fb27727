package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestOrbit_PositionOnSphere(t *testing.T) {
	c := New(r3.Vec{X: 1, Y: 2, Z: 3}, 10)

	pos := c.Position()
	dist := r3.Norm(r3.Sub(pos, c.Target))
	if math.Abs(dist-10) > 1e-9 {
		t.Errorf("camera should sit at orbit distance 10, got %f", dist)
	}
}

func TestOrbit_PositionAtZeroAngles(t *testing.T) {
	c := New(r3.Vec{}, 5)
	c.Yaw = 0
	c.Pitch = 0

	pos := c.Position()
	if math.Abs(pos.X-5) > 1e-9 || math.Abs(pos.Y) > 1e-9 || math.Abs(pos.Z) > 1e-9 {
		t.Errorf("yaw 0 pitch 0 should sit on +x, got %+v", pos)
	}
}

func TestOrbit_RotateClampsPitch(t *testing.T) {
	c := New(r3.Vec{}, 10)

	c.Rotate(0, 100)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch should clamp to max %f, got %f", c.MaxPitch, c.Pitch)
	}

	c.Rotate(0, -200)
	if c.Pitch != c.MinPitch {
		t.Errorf("pitch should clamp to min %f, got %f", c.MinPitch, c.Pitch)
	}

	// Yaw is unclamped; it wraps naturally through trig
	c.Rotate(100, 0)
	if c.Yaw < 100 {
		t.Error("yaw should accumulate freely")
	}
}

func TestOrbit_ZoomClampsDistance(t *testing.T) {
	c := New(r3.Vec{}, 10)

	c.Zoom(0.001)
	if c.Distance != c.MinDistance {
		t.Errorf("distance should clamp to min %f, got %f", c.MinDistance, c.Distance)
	}

	c.Zoom(1000)
	if c.Distance != c.MaxDistance {
		t.Errorf("distance should clamp to max %f, got %f", c.MaxDistance, c.Distance)
	}
}

func TestOrbit_Reset(t *testing.T) {
	c := New(r3.Vec{}, 10)
	c.Rotate(3, 1)
	c.Zoom(2)

	c.Reset()
	if c.Yaw != math.Pi/4 || c.Pitch != 0.5 {
		t.Errorf("reset should restore default angles, got yaw=%f pitch=%f", c.Yaw, c.Pitch)
	}
	if c.Distance < c.MinDistance || c.Distance > c.MaxDistance {
		t.Errorf("reset distance should stay within limits, got %f", c.Distance)
	}
}

func TestOrbit_BasisOrthonormal(t *testing.T) {
	c := New(r3.Vec{}, 10)
	c.Rotate(1.1, -0.4)

	forward, right, up := c.Basis()
	for name, v := range map[string]r3.Vec{"forward": forward, "right": right, "up": up} {
		if math.Abs(r3.Norm(v)-1) > 1e-9 {
			t.Errorf("%s should be unit length, got %f", name, r3.Norm(v))
		}
	}
	if math.Abs(r3.Dot(forward, right)) > 1e-9 {
		t.Error("forward and right should be perpendicular")
	}
	if math.Abs(r3.Dot(forward, up)) > 1e-9 {
		t.Error("forward and up should be perpendicular")
	}
}

func TestOrbit_ScreenRayCenterIsForward(t *testing.T) {
	c := New(r3.Vec{}, 10)

	origin, dir := c.ScreenRay(400, 300, 800, 600, math.Pi/3)

	if origin != c.Position() {
		t.Errorf("ray origin should be the camera position, got %+v", origin)
	}

	forward, _, _ := c.Basis()
	if r3.Norm(r3.Sub(dir, forward)) > 1e-9 {
		t.Errorf("center-screen ray should follow forward: %+v vs %+v", dir, forward)
	}
}

func TestOrbit_ScreenRayEdgesDiverge(t *testing.T) {
	c := New(r3.Vec{}, 10)

	_, left := c.ScreenRay(0, 300, 800, 600, math.Pi/3)
	_, right := c.ScreenRay(800, 300, 800, 600, math.Pi/3)
	_, center := c.ScreenRay(400, 300, 800, 600, math.Pi/3)

	if r3.Dot(left, right) >= 1-1e-9 {
		t.Error("opposite screen edges should produce diverging rays")
	}
	if r3.Dot(left, center) <= r3.Dot(left, right) {
		t.Error("center ray should sit between the edge rays")
	}
}
