// Package puzzle implements the sliding block grid: line selection, the
// slide transaction, bounded undo and win condition evaluation.
package puzzle

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/reef/physics"
)

// Axis is one of the three principal grid axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Unit returns the world-space unit vector for the axis.
func (a Axis) Unit() r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: 1}
	case AxisY:
		return r3.Vec{Y: 1}
	default:
		return r3.Vec{Z: 1}
	}
}

// Coord is an integer grid coordinate.
type Coord struct {
	X, Y, Z int
}

// Along returns the coordinate value along the given axis.
func (c Coord) Along(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// Shift returns the coordinate moved by d steps along the given axis.
func (c Coord) Shift(a Axis, d int) Coord {
	switch a {
	case AxisX:
		c.X += d
	case AxisY:
		c.Y += d
	default:
		c.Z += d
	}
	return c
}

// Dims holds the grid extent along each axis.
type Dims struct {
	X, Y, Z int
}

// Extent returns the size along the given axis.
func (d Dims) Extent(a Axis) int {
	switch a {
	case AxisX:
		return d.X
	case AxisY:
		return d.Y
	default:
		return d.Z
	}
}

// Contains reports whether the coordinate lies inside the grid extent.
func (d Dims) Contains(c Coord) bool {
	return c.X >= 0 && c.X < d.X &&
		c.Y >= 0 && c.Y < d.Y &&
		c.Z >= 0 && c.Z < d.Z
}

// BlockType is the closed set of block semantics.
type BlockType uint8

const (
	BlockStart BlockType = iota
	BlockExit
	BlockRock
	BlockCoral
	BlockGem
	BlockDark
	BlockGlow
)

// String returns the block type name.
func (t BlockType) String() string {
	switch t {
	case BlockStart:
		return "start"
	case BlockExit:
		return "exit"
	case BlockRock:
		return "rock"
	case BlockCoral:
		return "coral"
	case BlockGem:
		return "gem"
	case BlockDark:
		return "dark"
	case BlockGlow:
		return "glow"
	}
	return "unknown"
}

// Obstacle reports whether the type counts as an obstacle for clear levels.
func (t BlockType) Obstacle() bool {
	return t == BlockRock || t == BlockCoral || t == BlockDark
}

// VisualStyle is the presentation record for a block type. The core only
// carries the tag; the renderer maps the record to materials.
type VisualStyle struct {
	R, G, B  uint8
	Alpha    uint8
	Emissive bool
}

var blockStyles = [...]VisualStyle{
	BlockStart: {R: 80, G: 220, B: 120, Alpha: 255},
	BlockExit:  {R: 240, G: 200, B: 60, Alpha: 255},
	BlockRock:  {R: 110, G: 105, B: 100, Alpha: 255},
	BlockCoral: {R: 235, G: 110, B: 140, Alpha: 255},
	BlockGem:   {R: 90, G: 200, B: 245, Alpha: 230, Emissive: true},
	BlockDark:  {R: 35, G: 40, B: 55, Alpha: 255},
	BlockGlow:  {R: 180, G: 240, B: 210, Alpha: 255, Emissive: true},
}

// Style returns the visual style record for the block type.
func (t BlockType) Style() VisualStyle {
	if int(t) >= len(blockStyles) {
		return VisualStyle{R: 255, B: 255, Alpha: 255}
	}
	return blockStyles[t]
}

// Placement is a block declaration within a level descriptor.
type Placement struct {
	At       Coord
	Type     BlockType
	Required bool // gems only: counts toward the collect win condition
}

// Block is a live block entity owned by the grid.
type Block struct {
	ID       uint32
	At       Coord
	Type     BlockType
	Required bool
	Body     physics.BodyID
}
