package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/reef/components"
	"github.com/pthm-cable/reef/flocking"
	"github.com/pthm-cable/reef/physics"
	"github.com/pthm-cable/reef/puzzle"
)

// Vec3 converts an r3 vector to raylib's float32 vector.
func Vec3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// DrawGridBounds draws the wireframe extent of the active puzzle grid.
func DrawGridBounds(dims puzzle.Dims, spacing float64) {
	size := rl.Vector3{
		X: float32(float64(dims.X) * spacing),
		Y: float32(float64(dims.Y) * spacing),
		Z: float32(float64(dims.Z) * spacing),
	}
	rl.DrawCubeWiresV(rl.Vector3{}, size, rl.NewColor(90, 140, 170, 120))
}

// DrawBlocks renders all blocks at their simulated body positions, colored
// by their visual style, with the active selection highlighted.
func DrawBlocks(grid *puzzle.Grid, sim physics.Sim, spacing float64) {
	side := float32(spacing) * 0.92

	for _, b := range grid.Blocks() {
		pos, ok := sim.Position(b.Body)
		if !ok {
			// Body missing: fall back to the authoritative grid cell
			pos = grid.WorldPos(b.At)
		}

		style := b.Type.Style()
		color := rl.NewColor(style.R, style.G, style.B, style.Alpha)
		center := Vec3(pos)

		rl.DrawCube(center, side, side, side, color)

		wire := rl.NewColor(20, 30, 40, 160)
		if grid.InSelection(b) {
			wire = rl.Gold
		} else if style.Emissive {
			wire = rl.NewColor(style.R, style.G, style.B, 255)
		}
		rl.DrawCubeWires(center, side, side, side, wire)
	}
}

var speciesColors = [...]rl.Color{
	components.SpeciesClownfish: {R: 245, G: 130, B: 48, A: 255},
	components.SpeciesAngelfish: {R: 250, G: 225, B: 90, A: 255},
	components.SpeciesJellyfish: {R: 200, G: 160, B: 255, A: 170},
	components.SpeciesShark:     {R: 130, G: 140, B: 150, A: 255},
}

// DrawFish renders every fish as an oriented body with a species color.
// Jellyfish pulse with their animation phase.
func DrawFish(field *flocking.Field) {
	field.Each(func(id uint32, pos, vel r3.Vec, sp components.Species, phase float64) {
		traits := sp.Traits()
		color := speciesColors[sp]

		size := float32(traits.Size * 0.5)
		if sp == components.SpeciesJellyfish {
			size *= float32(1 + 0.25*math.Sin(phase))
		}

		center := Vec3(pos)
		rl.DrawSphere(center, size, color)

		// Tail hint along the velocity
		speed := r3.Norm(vel)
		if speed > 0.01 {
			tail := r3.Sub(pos, r3.Scale(traits.Size/speed, vel))
			rl.DrawLine3D(center, Vec3(tail), color)
		}
	})
}
