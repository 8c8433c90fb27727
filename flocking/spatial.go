package flocking

import "gonum.org/v1/gonum/spatial/r3"

// MaxQueryResults caps the number of neighbors returned by spatial queries.
// This prevents density spikes from causing unbounded work.
const MaxQueryResults = 64

// spatialGrid provides cell-based neighbor lookups in open 3D space.
// Cells are keyed sparsely; the scene is radius-bounded, not boxed.
type spatialGrid struct {
	cellSize float64
	cells    map[cellKey][]int
}

type cellKey struct {
	x, y, z int
}

func newSpatialGrid(cellSize float64) *spatialGrid {
	return &spatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
}

// clear removes all entries but keeps cell allocations.
func (g *spatialGrid) clear() {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
}

// insert adds an index at the given position.
func (g *spatialGrid) insert(i int, pos r3.Vec) {
	k := g.key(pos)
	g.cells[k] = append(g.cells[k], i)
}

// queryRadiusInto appends indices within radius of pos to dst (up to
// MaxQueryResults), excluding the given index. Reuse dst across calls to
// avoid allocations.
func (g *spatialGrid) queryRadiusInto(dst []int, pos r3.Vec, radius float64, exclude int, positions []r3.Vec) []int {
	cellRadius := int(radius/g.cellSize) + 1
	center := g.key(pos)
	radiusSq := radius * radius

	for dx := -cellRadius; dx <= cellRadius; dx++ {
		for dy := -cellRadius; dy <= cellRadius; dy++ {
			for dz := -cellRadius; dz <= cellRadius; dz++ {
				k := cellKey{center.x + dx, center.y + dy, center.z + dz}
				for _, i := range g.cells[k] {
					if i == exclude {
						continue
					}
					d := r3.Sub(positions[i], pos)
					if d.X*d.X+d.Y*d.Y+d.Z*d.Z <= radiusSq {
						dst = append(dst, i)
						if len(dst) >= MaxQueryResults {
							return dst
						}
					}
				}
			}
		}
	}
	return dst
}

func (g *spatialGrid) key(pos r3.Vec) cellKey {
	return cellKey{
		x: int(floorDiv(pos.X, g.cellSize)),
		y: int(floorDiv(pos.Y, g.cellSize)),
		z: int(floorDiv(pos.Z, g.cellSize)),
	}
}

// floorDiv divides and floors so negative coordinates land in stable cells.
func floorDiv(v, size float64) float64 {
	q := v / size
	f := float64(int(q))
	if q < 0 && q != f {
		f--
	}
	return f
}
