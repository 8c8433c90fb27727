// Package camera provides an orbit camera for viewpoint control.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Orbit circles a target point at a yaw/pitch/distance. Its position doubles
// as the predator viewpoint fed to the flocking field each tick.
type Orbit struct {
	Target r3.Vec

	Yaw      float64 // radians around the Y axis
	Pitch    float64 // radians above the horizon
	Distance float64

	MinDistance, MaxDistance float64
	MinPitch, MaxPitch       float64
}

// New creates an orbit camera looking at target from the given distance.
func New(target r3.Vec, distance float64) *Orbit {
	return &Orbit{
		Target:      target,
		Yaw:         math.Pi / 4,
		Pitch:       0.5,
		Distance:    distance,
		MinDistance: distance * 0.4,
		MaxDistance: distance * 3,
		MinPitch:    -1.2,
		MaxPitch:    1.4,
	}
}

// Position returns the camera's world position.
func (c *Orbit) Position() r3.Vec {
	cp := math.Cos(c.Pitch)
	return r3.Vec{
		X: c.Target.X + c.Distance*cp*math.Cos(c.Yaw),
		Y: c.Target.Y + c.Distance*math.Sin(c.Pitch),
		Z: c.Target.Z + c.Distance*cp*math.Sin(c.Yaw),
	}
}

// Rotate adjusts yaw and pitch, clamping pitch to its limits.
func (c *Orbit) Rotate(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch = clamp(c.Pitch+dpitch, c.MinPitch, c.MaxPitch)
}

// Zoom scales the orbit distance, clamped to its limits.
func (c *Orbit) Zoom(factor float64) {
	c.Distance = clamp(c.Distance*factor, c.MinDistance, c.MaxDistance)
}

// Reset returns the camera to the default orbit.
func (c *Orbit) Reset() {
	c.Yaw = math.Pi / 4
	c.Pitch = 0.5
	c.Distance = clamp((c.MinDistance+c.MaxDistance)/2, c.MinDistance, c.MaxDistance)
}

// Basis returns the camera's forward, right and up vectors.
func (c *Orbit) Basis() (forward, right, up r3.Vec) {
	forward = r3.Unit(r3.Sub(c.Target, c.Position()))
	worldUp := r3.Vec{Y: 1}
	right = r3.Cross(forward, worldUp)
	if r3.Norm(right) < 1e-9 {
		right = r3.Vec{X: 1}
	} else {
		right = r3.Unit(right)
	}
	up = r3.Cross(right, forward)
	return forward, right, up
}

// ScreenRay converts a screen point to a world-space ray through the camera.
// fovY is the vertical field of view in radians.
func (c *Orbit) ScreenRay(sx, sy, viewportW, viewportH, fovY float64) (origin, dir r3.Vec) {
	forward, right, up := c.Basis()

	tanHalf := math.Tan(fovY / 2)
	aspect := viewportW / viewportH

	nx := (2*sx/viewportW - 1) * tanHalf * aspect
	ny := (1 - 2*sy/viewportH) * tanHalf

	dir = r3.Unit(r3.Add(forward, r3.Add(r3.Scale(nx, right), r3.Scale(ny, up))))
	return c.Position(), dir
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
