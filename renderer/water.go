// Package renderer draws the underwater scene. Presentation only: it reads
// grid coordinates, body poses and fish state, never mutates them.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Water renders the underwater backdrop: a depth gradient with slowly
// sweeping light shafts.
type Water struct {
	width, height int32
}

// NewWater creates a backdrop renderer for the given screen size.
func NewWater(width, height int32) *Water {
	return &Water{width: width, height: height}
}

// Draw renders the backdrop. Call before entering 3D mode.
func (w *Water) Draw(t float32) {
	top := rl.NewColor(8, 46, 84, 255)
	bottom := rl.NewColor(2, 12, 28, 255)
	rl.DrawRectangleGradientV(0, 0, w.width, w.height, top, bottom)

	// Light shafts drift with time
	for i := 0; i < 5; i++ {
		phase := float64(t)*0.15 + float64(i)*1.3
		x := float32(float64(w.width) * (0.5 + 0.45*math.Sin(phase)))
		half := float32(30 + 14*i)

		c := rl.NewColor(120, 180, 220, 18)
		a := rl.Vector2{X: x, Y: 0}
		b := rl.Vector2{X: x - half, Y: float32(w.height)}
		d := rl.Vector2{X: x + half*2, Y: float32(w.height)}
		rl.DrawTriangle(a, b, d, c)
	}
}
