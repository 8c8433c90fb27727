package puzzle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// LineFromHit maps a world-space interaction against a block face to a line
// selection: the dominant axis of the surface normal becomes the selection
// axis, and the hit block's coordinate along that axis the index.
//
// Pure function, independent of whatever raycasting produced the hit.
func LineFromHit(hit Coord, normal r3.Vec) (Axis, int) {
	axis := DominantAxis(normal)
	return axis, hit.Along(axis)
}

// DominantAxis returns the principal axis with the largest absolute
// component of v. Ties resolve in X, Y, Z order.
func DominantAxis(v r3.Vec) Axis {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case ax >= ay && ax >= az:
		return AxisX
	case ay >= az:
		return AxisY
	default:
		return AxisZ
	}
}
