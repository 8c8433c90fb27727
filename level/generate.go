package level

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/reef/puzzle"
)

// Generate builds a procedural level for ids beyond the authored set.
//
// Grid size scales with a difficulty tier derived from the id, block count
// with grid volume and tier, and budgets linearly with the id. The win
// condition is a path from the origin corner to the opposite corner, with
// the start and exit blocks placed one step off their targets so the level
// never begins solved.
//
// Generation draws only from rng: the same seed reproduces the same level.
func Generate(id int, rng *rand.Rand) *Descriptor {
	tier := difficultyTier(id)

	dims := puzzle.Dims{
		X: 3 + tier,
		Y: 3 + tier,
		Z: 3 + tier/2,
	}

	from := puzzle.Coord{}
	to := puzzle.Coord{X: dims.X - 1, Y: dims.Y - 1, Z: dims.Z - 1}

	used := map[puzzle.Coord]bool{}
	blocks := []puzzle.Placement{}

	place := func(at puzzle.Coord, t puzzle.BlockType, required bool) {
		used[at] = true
		blocks = append(blocks, puzzle.Placement{At: at, Type: t, Required: required})
	}

	// Start and exit sit adjacent to their path targets, never on them.
	startAt := from.Shift(puzzle.Axis(rng.Intn(3)), 1)
	place(startAt, puzzle.BlockStart, false)
	used[from] = true // keep the target cell free

	exitAt := to.Shift(puzzle.Axis(rng.Intn(3)), -1)
	if used[exitAt] {
		exitAt = to.Shift(puzzle.AxisZ, -1)
	}
	place(exitAt, puzzle.BlockExit, false)
	used[to] = true

	// Filler blocks scale with volume and tier
	volume := dims.X * dims.Y * dims.Z
	count := volume/6 + tier*2
	fillers := []puzzle.BlockType{
		puzzle.BlockRock, puzzle.BlockRock, puzzle.BlockCoral,
		puzzle.BlockGem, puzzle.BlockDark, puzzle.BlockGlow,
	}

	for i := 0; i < count; i++ {
		at := puzzle.Coord{
			X: rng.Intn(dims.X),
			Y: rng.Intn(dims.Y),
			Z: rng.Intn(dims.Z),
		}
		if used[at] {
			continue
		}
		place(at, fillers[rng.Intn(len(fillers))], false)
	}

	return &Descriptor{
		ID:          id,
		Name:        fmt.Sprintf("Abyss %d", id),
		Dims:        dims,
		Blocks:      blocks,
		Win:         puzzle.WinCondition{Kind: puzzle.WinPath, From: from, To: to},
		MaxMoves:    8 + id,
		TargetScore: 100 + id*10,
	}
}

// difficultyTier maps a level id to a 1..4 difficulty tier.
func difficultyTier(id int) int {
	tier := 1 + id/10
	if tier > 4 {
		tier = 4
	}
	return tier
}
