package flocking

import (
	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r3"
)

// CurrentField samples a slowly drifting water current from coherent noise.
// Three decorrelated noise evaluations form the vector components.
type CurrentField struct {
	noise opensimplex.Noise
	scale float64
}

// NewCurrentField creates a current field with the given noise frequency.
func NewCurrentField(seed int64, scale float64) *CurrentField {
	return &CurrentField{
		noise: opensimplex.New(seed),
		scale: scale,
	}
}

// At returns the current vector at a position and scene time. Components
// are in [-1, 1]; callers scale by their own strength.
func (c *CurrentField) At(pos r3.Vec, t float64) r3.Vec {
	s := c.scale
	return r3.Vec{
		X: c.noise.Eval3(pos.X*s, pos.Y*s, t*0.05),
		Y: c.noise.Eval3(pos.Y*s+31.7, pos.Z*s, t*0.05) * 0.4,
		Z: c.noise.Eval3(pos.Z*s+77.3, pos.X*s, t*0.05),
	}
}
