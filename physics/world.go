package physics

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// World is an impulse-based rigid body solver with water drag.
//
// Bodies are free-floating boxes. A body may additionally be anchored: a
// critically-damped spring pulls it toward its anchor point, which is how
// slid blocks converge back onto their grid cell after the impulse kick.
type World struct {
	bodies map[BodyID]*body
	nextID BodyID

	linearDrag      float64
	angularDrag     float64
	anchorStiffness float64
}

type body struct {
	shape      Shape
	mass       float64
	invMass    float64
	invInertia float64

	pos    r3.Vec
	vel    r3.Vec
	orient quat.Number
	angVel r3.Vec

	anchor   r3.Vec
	anchored bool
}

// NewWorld creates a solver with the given drag coefficients and anchor
// spring stiffness.
func NewWorld(linearDrag, angularDrag, anchorStiffness float64) *World {
	return &World{
		bodies:          make(map[BodyID]*body),
		linearDrag:      linearDrag,
		angularDrag:     angularDrag,
		anchorStiffness: anchorStiffness,
	}
}

// AddBody registers a body. Mass <= 0 creates a static body.
func (w *World) AddBody(shape Shape, mass float64, pos r3.Vec) BodyID {
	w.nextID++
	id := w.nextID

	b := &body{
		shape:  shape,
		mass:   mass,
		pos:    pos,
		orient: quat.Number{Real: 1},
	}
	if mass > 0 {
		b.invMass = 1 / mass
		// Box inertia, averaged to a scalar: I = m/12 * (e_i^2 + e_j^2) per axis
		e := shape.HalfExtents
		ix := mass / 3 * (e.Y*e.Y + e.Z*e.Z)
		iy := mass / 3 * (e.X*e.X + e.Z*e.Z)
		iz := mass / 3 * (e.X*e.X + e.Y*e.Y)
		avg := (ix + iy + iz) / 3
		if avg > 0 {
			b.invInertia = 1 / avg
		}
	}

	w.bodies[id] = b
	return id
}

// RemoveBody unregisters a body.
func (w *World) RemoveBody(id BodyID) {
	delete(w.bodies, id)
}

// ApplyImpulse applies an instantaneous impulse at a world point. Off-center
// application also imparts angular velocity.
func (w *World) ApplyImpulse(id BodyID, impulse, at r3.Vec) {
	b, ok := w.bodies[id]
	if !ok || b.invMass == 0 {
		return
	}

	b.vel = r3.Add(b.vel, r3.Scale(b.invMass, impulse))

	lever := r3.Sub(at, b.pos)
	torque := r3.Cross(lever, impulse)
	b.angVel = r3.Add(b.angVel, r3.Scale(b.invInertia, torque))
}

// SetAnchor attaches the body to a target point it converges toward.
func (w *World) SetAnchor(id BodyID, target r3.Vec) {
	if b, ok := w.bodies[id]; ok {
		b.anchor = target
		b.anchored = true
	}
}

// ClearAnchor releases the body to free floating.
func (w *World) ClearAnchor(id BodyID) {
	if b, ok := w.bodies[id]; ok {
		b.anchored = false
	}
}

// Step advances all bodies by dt seconds split into substeps.
func (w *World) Step(dt, elapsed float64, substeps int) {
	_ = elapsed // no time-varying forces in this solver

	if substeps < 1 {
		substeps = 1
	}
	h := dt / float64(substeps)

	for i := 0; i < substeps; i++ {
		for _, b := range w.bodies {
			if b.invMass == 0 {
				continue
			}
			w.integrate(b, h)
		}
	}
}

func (w *World) integrate(b *body, h float64) {
	// Anchor spring with critical damping
	if b.anchored {
		k := w.anchorStiffness
		d := 2 * math.Sqrt(k)
		accel := r3.Sub(r3.Scale(k, r3.Sub(b.anchor, b.pos)), r3.Scale(d, b.vel))
		b.vel = r3.Add(b.vel, r3.Scale(h, accel))
	}

	// Exponential water drag
	b.vel = r3.Scale(math.Exp(-w.linearDrag*h), b.vel)
	b.angVel = r3.Scale(math.Exp(-w.angularDrag*h), b.angVel)

	// Semi-implicit Euler
	b.pos = r3.Add(b.pos, r3.Scale(h, b.vel))

	// Orientation: q' = q + h/2 * omega_quat * q, renormalized
	omega := quat.Number{Imag: b.angVel.X, Jmag: b.angVel.Y, Kmag: b.angVel.Z}
	dq := quat.Scale(0.5*h, quat.Mul(omega, b.orient))
	b.orient = normalize(quat.Add(b.orient, dq))
}

// Position returns the body's current position.
func (w *World) Position(id BodyID) (r3.Vec, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return r3.Vec{}, false
	}
	return b.pos, true
}

// Orientation returns the body's current orientation.
func (w *World) Orientation(id BodyID) (quat.Number, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return quat.Number{}, false
	}
	return b.orient, true
}

// Velocity returns the body's current linear velocity.
func (w *World) Velocity(id BodyID) (r3.Vec, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return r3.Vec{}, false
	}
	return b.vel, true
}

// Count returns the number of registered bodies.
func (w *World) Count() int {
	return len(w.bodies)
}

func normalize(q quat.Number) quat.Number {
	n := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/n, q)
}
