// Package physics provides the rigid body boundary consumed by the puzzle core.
//
// The core never integrates motion itself: it registers bodies, applies
// impulses during slides and reads poses back for presentation. Sim is the
// boundary; World is the in-repo solver behind it.
package physics

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// BodyID identifies a body within a Sim. The zero value is never issued.
type BodyID uint32

// Shape describes a box collision shape for body registration.
type Shape struct {
	HalfExtents r3.Vec
}

// Box returns a box shape with the given half extents.
func Box(hx, hy, hz float64) Shape {
	return Shape{HalfExtents: r3.Vec{X: hx, Y: hy, Z: hz}}
}

// Sim is the opaque rigid body world the puzzle core talks to.
type Sim interface {
	// AddBody registers a body and returns its handle.
	AddBody(shape Shape, mass float64, pos r3.Vec) BodyID

	// RemoveBody unregisters a body. Unknown handles are ignored.
	RemoveBody(id BodyID)

	// ApplyImpulse applies an instantaneous impulse at a world point.
	ApplyImpulse(id BodyID, impulse, at r3.Vec)

	// Step advances the simulation by dt seconds split into substeps.
	// elapsed is total scene time, available to time-varying forces.
	Step(dt, elapsed float64, substeps int)

	// Position returns the body's current position.
	Position(id BodyID) (r3.Vec, bool)

	// Orientation returns the body's current orientation as a unit quaternion.
	Orientation(id BodyID) (quat.Number, bool)
}
