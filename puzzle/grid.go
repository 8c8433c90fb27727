package puzzle

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/reef/physics"
)

// MoveRecorder receives the single bookkeeping call made per slide.
type MoveRecorder interface {
	RecordMove()
}

// Options holds grid tuning, sourced from config at construction.
type Options struct {
	UndoCapacity  int     // bounded history; oldest snapshot evicted when full
	SlideForce    float64 // impulse magnitude per slid block
	ClampToBounds bool    // reject slides that would leave the grid extent
	Spacing       float64 // world units between grid cells
	BlockMass     float64 // rigid body mass per block
}

// SlideResult reports the outcome of a slide transaction.
type SlideResult struct {
	Moved  bool // a selected line actually shifted
	Solved bool // win condition held after the shift
}

// Grid owns the live block entities of the active level and their physics
// bodies. Grid coordinates are the ground truth for win checks; body
// positions are cosmetic and converge via the simulation.
type Grid struct {
	dims   Dims
	win    WinCondition
	blocks []*Block

	sim   physics.Sim
	moves MoveRecorder
	opts  Options

	selAxis  Axis
	selIndex int
	selected bool

	// Undo snapshots by block ID, oldest first
	history []map[uint32]Coord

	// Obstacle block IDs resolved at load for clear levels
	clearTargets map[uint32]bool

	nextID uint32
}

// NewGrid creates an empty grid bound to a physics sim and move recorder.
func NewGrid(sim physics.Sim, moves MoveRecorder, opts Options) *Grid {
	if opts.UndoCapacity < 1 {
		opts.UndoCapacity = 1
	}
	if opts.Spacing <= 0 {
		opts.Spacing = 1
	}
	if opts.BlockMass <= 0 {
		opts.BlockMass = 1
	}
	return &Grid{
		sim:   sim,
		moves: moves,
		opts:  opts,
	}
}

// Load replaces the grid contents with a level's blocks, registering one
// physics body per block. Any previous blocks are torn down symmetrically.
// Selection and undo history are cleared.
func (g *Grid) Load(dims Dims, placements []Placement, win WinCondition) {
	g.Unload()

	g.dims = dims
	g.win = win
	g.blocks = make([]*Block, 0, len(placements))
	g.clearTargets = make(map[uint32]bool)

	half := g.opts.Spacing * 0.48
	for _, p := range placements {
		g.nextID++
		b := &Block{
			ID:       g.nextID,
			At:       p.At,
			Type:     p.Type,
			Required: p.Required,
		}
		b.Body = g.sim.AddBody(physics.Box(half, half, half), g.opts.BlockMass, g.WorldPos(p.At))
		g.blocks = append(g.blocks, b)

		for _, oc := range win.Obstacles {
			if p.At == oc && p.Type.Obstacle() {
				g.clearTargets[b.ID] = true
			}
		}
	}
}

// Unload removes all blocks and their physics bodies.
func (g *Grid) Unload() {
	for _, b := range g.blocks {
		g.sim.RemoveBody(b.Body)
	}
	g.blocks = nil
	g.history = nil
	g.clearTargets = nil
	g.selected = false
}

// Blocks returns the live block entities. Callers must not mutate coordinates.
func (g *Grid) Blocks() []*Block {
	return g.blocks
}

// Dims returns the active level's grid extent.
func (g *Grid) Dims() Dims {
	return g.dims
}

// Win returns the active win condition.
func (g *Grid) Win() WinCondition {
	return g.win
}

// WorldPos maps a grid coordinate to world space, centered on the origin.
func (g *Grid) WorldPos(c Coord) r3.Vec {
	s := g.opts.Spacing
	return r3.Vec{
		X: (float64(c.X) - float64(g.dims.X-1)/2) * s,
		Y: (float64(c.Y) - float64(g.dims.Y-1)/2) * s,
		Z: (float64(c.Z) - float64(g.dims.Z-1)/2) * s,
	}
}

// BlockAt returns the block occupying a coordinate, if any.
func (g *Grid) BlockAt(c Coord) (*Block, bool) {
	for _, b := range g.blocks {
		if b.At == c {
			return b, true
		}
	}
	return nil, false
}

// SelectLine marks every block whose coordinate along axis equals index as
// the active selection. An index with no matching blocks is a legal empty
// selection; the subsequent slide is a no-op.
func (g *Grid) SelectLine(axis Axis, index int) {
	g.selAxis = axis
	g.selIndex = index
	g.selected = true
}

// ClearSelection drops the active selection.
func (g *Grid) ClearSelection() {
	g.selected = false
}

// Selection returns the active selection, if any.
func (g *Grid) Selection() (Axis, int, bool) {
	return g.selAxis, g.selIndex, g.selected
}

// InSelection reports whether a block belongs to the active selection.
func (g *Grid) InSelection(b *Block) bool {
	return g.selected && b.At.Along(g.selAxis) == g.selIndex
}

// line returns the blocks in the active selection.
func (g *Grid) line() []*Block {
	var out []*Block
	for _, b := range g.blocks {
		if b.At.Along(g.selAxis) == g.selIndex {
			out = append(out, b)
		}
	}
	return out
}

// Slide moves every block in the selected line by one grid step in the given
// direction (+1 or -1 along the selected axis), as one transaction:
// snapshot push, single move record, per-block impulse and coordinate shift,
// then a win check against the post-slide coordinates.
//
// Without a selection, with dir outside {-1,+1}, or with an empty line, the
// call is a user-input no-op: no state changes, no move recorded.
func (g *Grid) Slide(dir int) SlideResult {
	if !g.selected || (dir != 1 && dir != -1) {
		return SlideResult{}
	}

	line := g.line()
	if len(line) == 0 {
		return SlideResult{}
	}

	if g.opts.ClampToBounds {
		for _, b := range line {
			if !g.dims.Contains(b.At.Shift(g.selAxis, dir)) {
				return SlideResult{}
			}
		}
	}

	g.pushSnapshot()
	g.moves.RecordMove()

	impulse := r3.Scale(g.opts.SlideForce*float64(dir), g.selAxis.Unit())
	for _, b := range line {
		g.sim.ApplyImpulse(b.Body, impulse, g.WorldPos(b.At))
		b.At = b.At.Shift(g.selAxis, dir)
	}

	return SlideResult{Moved: true, Solved: g.CheckWin()}
}

// pushSnapshot records all block coordinates, evicting the oldest snapshot
// once the configured capacity is reached.
func (g *Grid) pushSnapshot() {
	snap := make(map[uint32]Coord, len(g.blocks))
	for _, b := range g.blocks {
		snap[b.ID] = b.At
	}
	if len(g.history) >= g.opts.UndoCapacity {
		g.history = g.history[1:]
	}
	g.history = append(g.history, snap)
}

// Undo restores all block coordinates from the most recent snapshot.
// Returns false when the history is empty. Moves already spent are not
// refunded: the move budget stays meaningful as a resource.
func (g *Grid) Undo() bool {
	if len(g.history) == 0 {
		return false
	}

	snap := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	for _, b := range g.blocks {
		if at, ok := snap[b.ID]; ok {
			b.At = at
		}
	}
	return true
}

// UndoDepth returns the number of snapshots currently held.
func (g *Grid) UndoDepth() int {
	return len(g.history)
}

// Remove destroys a block and its physics body, e.g. on gem collection or
// obstacle clearing. Returns the block and whether it existed.
func (g *Grid) Remove(id uint32) (*Block, bool) {
	for i, b := range g.blocks {
		if b.ID == id {
			g.sim.RemoveBody(b.Body)
			g.blocks = append(g.blocks[:i], g.blocks[i+1:]...)
			return b, true
		}
	}
	return nil, false
}
