// Package level holds the level catalog and the progression state machine.
package level

import (
	"math/rand"

	"github.com/pthm-cable/reef/puzzle"
)

// Descriptor defines a level: its grid, blocks, win condition and budgets.
// BestStars and Unlocked are mutable runtime companions owned by the Tracker.
type Descriptor struct {
	ID          int
	Name        string
	Dims        puzzle.Dims
	Blocks      []puzzle.Placement
	Win         puzzle.WinCondition
	MaxMoves    int
	TargetScore int

	Unlocked  bool
	BestStars int // 0-3, monotonically non-decreasing across attempts
}

// Catalog holds the ordered level set: the hand-authored levels followed by
// procedurally generated ones. Level IDs are sequential starting at 1.
type Catalog struct {
	levels []*Descriptor
}

// NewCatalog builds the catalog: authored levels plus proceduralCount
// generated ones. The rng seeds generation, so identical seeds reproduce
// identical level sets. Only the first level starts unlocked.
func NewCatalog(proceduralCount int, rng *rand.Rand) *Catalog {
	c := &Catalog{levels: authoredLevels()}

	nextID := len(c.levels) + 1
	for i := 0; i < proceduralCount; i++ {
		c.levels = append(c.levels, Generate(nextID, rng))
		nextID++
	}

	for i, d := range c.levels {
		d.Unlocked = i == 0
	}
	return c
}

// Get returns the descriptor with the given id, if it exists.
func (c *Catalog) Get(id int) (*Descriptor, bool) {
	if id < 1 || id > len(c.levels) {
		return nil, false
	}
	return c.levels[id-1], true
}

// Len returns the number of levels in the catalog.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// All returns the descriptors in order, for HUD/menu rendering.
func (c *Catalog) All() []*Descriptor {
	return c.levels
}

// authoredLevels returns the hand-built level set, covering every win kind.
func authoredLevels() []*Descriptor {
	return []*Descriptor{
		{
			ID:   1,
			Name: "First Current",
			Dims: puzzle.Dims{X: 3, Y: 3, Z: 3},
			Blocks: []puzzle.Placement{
				{At: puzzle.Coord{X: 1, Y: 0, Z: 0}, Type: puzzle.BlockStart},
				{At: puzzle.Coord{X: 2, Y: 2, Z: 1}, Type: puzzle.BlockExit},
				{At: puzzle.Coord{X: 1, Y: 1, Z: 1}, Type: puzzle.BlockRock},
				{At: puzzle.Coord{X: 0, Y: 2, Z: 0}, Type: puzzle.BlockCoral},
			},
			Win:         puzzle.WinCondition{Kind: puzzle.WinPath, From: puzzle.Coord{X: 0, Y: 0, Z: 0}, To: puzzle.Coord{X: 2, Y: 2, Z: 2}},
			MaxMoves:    6,
			TargetScore: 100,
		},
		{
			ID:   2,
			Name: "Pearl Hunt",
			Dims: puzzle.Dims{X: 3, Y: 3, Z: 3},
			Blocks: []puzzle.Placement{
				{At: puzzle.Coord{X: 0, Y: 0, Z: 0}, Type: puzzle.BlockStart},
				{At: puzzle.Coord{X: 2, Y: 2, Z: 2}, Type: puzzle.BlockExit},
				{At: puzzle.Coord{X: 1, Y: 0, Z: 1}, Type: puzzle.BlockGem, Required: true},
				{At: puzzle.Coord{X: 2, Y: 1, Z: 0}, Type: puzzle.BlockGem, Required: true},
				{At: puzzle.Coord{X: 0, Y: 2, Z: 2}, Type: puzzle.BlockGem},
				{At: puzzle.Coord{X: 1, Y: 2, Z: 1}, Type: puzzle.BlockRock},
			},
			Win:         puzzle.WinCondition{Kind: puzzle.WinCollect, RequiredGems: 2},
			MaxMoves:    8,
			TargetScore: 120,
		},
		{
			ID:   3,
			Name: "Shifting Reef",
			Dims: puzzle.Dims{X: 4, Y: 3, Z: 3},
			Blocks: []puzzle.Placement{
				{At: puzzle.Coord{X: 0, Y: 1, Z: 0}, Type: puzzle.BlockStart},
				{At: puzzle.Coord{X: 3, Y: 1, Z: 2}, Type: puzzle.BlockExit},
				{At: puzzle.Coord{X: 1, Y: 0, Z: 1}, Type: puzzle.BlockRock},
				{At: puzzle.Coord{X: 2, Y: 2, Z: 1}, Type: puzzle.BlockRock},
				{At: puzzle.Coord{X: 1, Y: 2, Z: 2}, Type: puzzle.BlockCoral},
				{At: puzzle.Coord{X: 2, Y: 0, Z: 0}, Type: puzzle.BlockGlow},
			},
			Win:         puzzle.WinCondition{Kind: puzzle.WinPath, From: puzzle.Coord{X: 0, Y: 0, Z: 0}, To: puzzle.Coord{X: 3, Y: 2, Z: 2}},
			MaxMoves:    10,
			TargetScore: 140,
		},
		{
			ID:   4,
			Name: "Gem Row",
			Dims: puzzle.Dims{X: 4, Y: 4, Z: 3},
			Blocks: []puzzle.Placement{
				{At: puzzle.Coord{X: 0, Y: 3, Z: 0}, Type: puzzle.BlockStart},
				{At: puzzle.Coord{X: 3, Y: 0, Z: 2}, Type: puzzle.BlockExit},
				{At: puzzle.Coord{X: 0, Y: 1, Z: 1}, Type: puzzle.BlockGem},
				{At: puzzle.Coord{X: 1, Y: 2, Z: 1}, Type: puzzle.BlockGem},
				{At: puzzle.Coord{X: 3, Y: 1, Z: 1}, Type: puzzle.BlockGem},
				{At: puzzle.Coord{X: 2, Y: 0, Z: 0}, Type: puzzle.BlockRock},
				{At: puzzle.Coord{X: 1, Y: 3, Z: 2}, Type: puzzle.BlockCoral},
			},
			Win:         puzzle.WinCondition{Kind: puzzle.WinAlign, PatternLen: 3},
			MaxMoves:    12,
			TargetScore: 160,
		},
		{
			ID:   5,
			Name: "Break the Wall",
			Dims: puzzle.Dims{X: 4, Y: 4, Z: 3},
			Blocks: []puzzle.Placement{
				{At: puzzle.Coord{X: 0, Y: 0, Z: 1}, Type: puzzle.BlockStart},
				{At: puzzle.Coord{X: 3, Y: 3, Z: 1}, Type: puzzle.BlockExit},
				{At: puzzle.Coord{X: 1, Y: 1, Z: 1}, Type: puzzle.BlockRock},
				{At: puzzle.Coord{X: 2, Y: 1, Z: 1}, Type: puzzle.BlockRock},
				{At: puzzle.Coord{X: 1, Y: 2, Z: 1}, Type: puzzle.BlockDark},
				{At: puzzle.Coord{X: 2, Y: 2, Z: 1}, Type: puzzle.BlockDark},
				{At: puzzle.Coord{X: 0, Y: 3, Z: 0}, Type: puzzle.BlockGem},
			},
			Win: puzzle.WinCondition{
				Kind: puzzle.WinClear,
				Obstacles: []puzzle.Coord{
					{X: 1, Y: 1, Z: 1}, {X: 2, Y: 1, Z: 1},
					{X: 1, Y: 2, Z: 1}, {X: 2, Y: 2, Z: 1},
				},
			},
			MaxMoves:    14,
			TargetScore: 180,
		},
		{
			ID:   6,
			Name: "Deep Passage",
			Dims: puzzle.Dims{X: 4, Y: 4, Z: 4},
			Blocks: []puzzle.Placement{
				{At: puzzle.Coord{X: 1, Y: 0, Z: 0}, Type: puzzle.BlockStart},
				{At: puzzle.Coord{X: 3, Y: 3, Z: 2}, Type: puzzle.BlockExit},
				{At: puzzle.Coord{X: 2, Y: 1, Z: 1}, Type: puzzle.BlockRock},
				{At: puzzle.Coord{X: 1, Y: 2, Z: 2}, Type: puzzle.BlockRock},
				{At: puzzle.Coord{X: 3, Y: 1, Z: 3}, Type: puzzle.BlockCoral},
				{At: puzzle.Coord{X: 0, Y: 3, Z: 1}, Type: puzzle.BlockDark},
				{At: puzzle.Coord{X: 2, Y: 3, Z: 0}, Type: puzzle.BlockGlow},
				{At: puzzle.Coord{X: 0, Y: 1, Z: 2}, Type: puzzle.BlockGem},
			},
			Win:         puzzle.WinCondition{Kind: puzzle.WinPath, From: puzzle.Coord{X: 0, Y: 0, Z: 0}, To: puzzle.Coord{X: 3, Y: 3, Z: 3}},
			MaxMoves:    14,
			TargetScore: 200,
		},
		{
			ID:   7,
			Name: "Treasure Trench",
			Dims: puzzle.Dims{X: 5, Y: 4, Z: 3},
			Blocks: []puzzle.Placement{
				{At: puzzle.Coord{X: 0, Y: 0, Z: 0}, Type: puzzle.BlockStart},
				{At: puzzle.Coord{X: 4, Y: 3, Z: 2}, Type: puzzle.BlockExit},
				{At: puzzle.Coord{X: 1, Y: 1, Z: 0}, Type: puzzle.BlockGem, Required: true},
				{At: puzzle.Coord{X: 2, Y: 2, Z: 1}, Type: puzzle.BlockGem, Required: true},
				{At: puzzle.Coord{X: 3, Y: 0, Z: 2}, Type: puzzle.BlockGem, Required: true},
				{At: puzzle.Coord{X: 4, Y: 1, Z: 1}, Type: puzzle.BlockGem},
				{At: puzzle.Coord{X: 2, Y: 3, Z: 0}, Type: puzzle.BlockRock},
				{At: puzzle.Coord{X: 1, Y: 2, Z: 2}, Type: puzzle.BlockDark},
			},
			Win:         puzzle.WinCondition{Kind: puzzle.WinCollect, RequiredGems: 3},
			MaxMoves:    16,
			TargetScore: 220,
		},
		{
			ID:   8,
			Name: "Midnight Garden",
			Dims: puzzle.Dims{X: 5, Y: 5, Z: 4},
			Blocks: []puzzle.Placement{
				{At: puzzle.Coord{X: 2, Y: 0, Z: 1}, Type: puzzle.BlockStart},
				{At: puzzle.Coord{X: 3, Y: 4, Z: 3}, Type: puzzle.BlockExit},
				{At: puzzle.Coord{X: 1, Y: 1, Z: 1}, Type: puzzle.BlockCoral},
				{At: puzzle.Coord{X: 3, Y: 2, Z: 2}, Type: puzzle.BlockCoral},
				{At: puzzle.Coord{X: 2, Y: 2, Z: 0}, Type: puzzle.BlockDark},
				{At: puzzle.Coord{X: 4, Y: 1, Z: 3}, Type: puzzle.BlockDark},
				{At: puzzle.Coord{X: 0, Y: 4, Z: 2}, Type: puzzle.BlockGlow},
				{At: puzzle.Coord{X: 1, Y: 3, Z: 3}, Type: puzzle.BlockGem},
				{At: puzzle.Coord{X: 4, Y: 4, Z: 0}, Type: puzzle.BlockGem},
			},
			Win:         puzzle.WinCondition{Kind: puzzle.WinPath, From: puzzle.Coord{X: 0, Y: 0, Z: 0}, To: puzzle.Coord{X: 4, Y: 4, Z: 3}},
			MaxMoves:    18,
			TargetScore: 250,
		},
	}
}
