package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/reef/config"
	"github.com/pthm-cable/reef/puzzle"
)

// blockHit is one ray intersection against a block's cell-sized box.
type blockHit struct {
	block  *puzzle.Block
	normal r3.Vec // entry-face normal in world space
	t      float64
}

// pickBlock casts a screen-space ray into the grid and returns the nearest
// intersected block with its entry-face normal. Grid cells, not body poses,
// define the pick volumes; the simulated drift is cosmetic.
func (g *Game) pickBlock(sx, sy float64) (blockHit, bool) {
	cfg := config.Cfg()
	fov := cfg.Screen.FOV * math.Pi / 180
	origin, dir := g.cam.ScreenRay(sx, sy, float64(g.width), float64(g.height), fov)

	half := cfg.World.BlockSpacing * 0.5
	best := blockHit{t: math.Inf(1)}

	for _, b := range g.grid.Blocks() {
		center := g.grid.WorldPos(b.At)
		if t, n, ok := rayBox(origin, dir, center, half); ok && t < best.t {
			best = blockHit{block: b, normal: n, t: t}
		}
	}

	return best, best.block != nil
}

// rayBox is a slab test against an axis-aligned cube. Returns the entry
// distance and the normal of the face the ray enters through.
func rayBox(origin, dir, center r3.Vec, half float64) (float64, r3.Vec, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	var normal r3.Vec

	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	c := [3]float64{center.X, center.Y, center.Z}

	for i := 0; i < 3; i++ {
		lo := c[i] - half
		hi := c[i] + half

		if math.Abs(d[i]) < 1e-12 {
			if o[i] < lo || o[i] > hi {
				return 0, r3.Vec{}, false
			}
			continue
		}

		t1 := (lo - o[i]) / d[i]
		t2 := (hi - o[i]) / d[i]
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}

		if t1 > tmin {
			tmin = t1
			normal = axisNormal(i, sign)
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, r3.Vec{}, false
		}
	}

	if tmax < 0 {
		return 0, r3.Vec{}, false
	}
	if tmin < 0 {
		// Origin inside the box; exit face still gives a usable axis
		tmin = 0
	}
	return tmin, normal, true
}

func axisNormal(axis int, sign float64) r3.Vec {
	switch axis {
	case 0:
		return r3.Vec{X: sign}
	case 1:
		return r3.Vec{Y: sign}
	}
	return r3.Vec{Z: sign}
}
