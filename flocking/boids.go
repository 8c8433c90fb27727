// Package flocking drives the ambient fish with boids steering:
// separation, alignment and cohesion over a local neighborhood, plus
// predator avoidance, an ambient current and an origin-radius wraparound.
package flocking

import "gonum.org/v1/gonum/spatial/r3"

// Params holds the steering tuning, sourced from config.
type Params struct {
	SeparationDistance float64
	AlignmentDistance  float64
	CohesionDistance   float64
	SeparationStrength float64
	AlignmentStrength  float64
	CohesionStrength   float64

	AvoidDistance float64 // predator proximity threshold
	AvoidStrength float64

	CurrentStrength float64 // ambient current contribution per second
	CurrentScale    float64 // noise frequency of the current field

	BoundsRadius float64 // wraparound distance from the origin
}

// Boid is a neighbor snapshot used by the steering math.
type Boid struct {
	Pos, Vel r3.Vec
}

// Steer returns the combined separation, alignment and cohesion velocity
// contribution for a fish at pos among the given neighbors. With no
// neighbor inside any threshold the contribution is zero.
func Steer(pos r3.Vec, neighbors []Boid, p Params) r3.Vec {
	var sep, avgVel, centroid r3.Vec
	var sepN, aliN, cohN int

	for _, n := range neighbors {
		away := r3.Sub(pos, n.Pos)
		dist := r3.Norm(away)
		if dist <= 0 {
			continue
		}
		if dist < p.SeparationDistance {
			// Unit vector away, weighted by inverse distance
			sep = r3.Add(sep, r3.Scale(1/(dist*dist), away))
			sepN++
		}
		if dist < p.AlignmentDistance {
			avgVel = r3.Add(avgVel, n.Vel)
			aliN++
		}
		if dist < p.CohesionDistance {
			centroid = r3.Add(centroid, n.Pos)
			cohN++
		}
	}

	var out r3.Vec
	if sepN > 0 {
		sep = r3.Scale(1/float64(sepN), sep)
		out = r3.Add(out, scaleTo(sep, p.SeparationStrength))
	}
	if aliN > 0 {
		avgVel = r3.Scale(1/float64(aliN), avgVel)
		out = r3.Add(out, scaleTo(avgVel, p.AlignmentStrength))
	}
	if cohN > 0 {
		centroid = r3.Scale(1/float64(cohN), centroid)
		out = r3.Add(out, scaleTo(r3.Sub(centroid, pos), p.CohesionStrength))
	}
	return out
}

// Avoid returns the push away from a predator position when the fish is
// inside the proximity threshold, zero otherwise.
func Avoid(pos, predator r3.Vec, p Params) r3.Vec {
	away := r3.Sub(pos, predator)
	dist := r3.Norm(away)
	if dist <= 0 || dist >= p.AvoidDistance {
		return r3.Vec{}
	}
	return r3.Scale(p.AvoidStrength/dist, away)
}

// ClampSpeed limits the velocity magnitude to maxSpeed.
func ClampSpeed(vel r3.Vec, maxSpeed float64) r3.Vec {
	speed := r3.Norm(vel)
	if speed <= maxSpeed || speed == 0 {
		return vel
	}
	return r3.Scale(maxSpeed/speed, vel)
}

// Wrap teleports a fish that strayed beyond the bounds radius to the
// opposite side, scaled inward, and reverses its velocity. A wraparound,
// not a bounce.
func Wrap(pos, vel r3.Vec, radius float64) (r3.Vec, r3.Vec, bool) {
	if r3.Norm(pos) <= radius {
		return pos, vel, false
	}
	return r3.Scale(-0.9, pos), r3.Scale(-1, vel), true
}

// scaleTo normalizes v and scales it to length s. Zero vectors stay zero.
func scaleTo(v r3.Vec, s float64) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(s/n, v)
}
