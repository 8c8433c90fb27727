package puzzle

// WinKind tags the strategy used to evaluate level completion.
type WinKind uint8

const (
	WinPath WinKind = iota
	WinCollect
	WinAlign
	WinClear
)

// String returns the win kind name.
func (k WinKind) String() string {
	switch k {
	case WinPath:
		return "path"
	case WinCollect:
		return "collect"
	case WinAlign:
		return "align"
	case WinClear:
		return "clear"
	}
	return "unknown"
}

// WinCondition describes how a level is completed. Only the fields for the
// tagged kind are meaningful; a kind whose fields are missing simply never
// reports success.
type WinCondition struct {
	Kind WinKind

	// path: the start block must occupy From and the exit block To
	From, To Coord

	// collect: all required gems must be removed from the grid
	RequiredGems int

	// align: gems must form a contiguous run of this length along one axis
	PatternLen int

	// clear: initial coordinates of obstacle blocks that must be removed
	Obstacles []Coord
}

// CheckWin evaluates the active win condition against current grid
// coordinates. Missing descriptor fields evaluate to "not met", never to an
// error: the puzzle simply stays unsolved.
func (g *Grid) CheckWin() bool {
	switch g.win.Kind {
	case WinPath:
		return g.checkPath()
	case WinCollect:
		return g.checkCollect()
	case WinAlign:
		return g.checkAlign()
	case WinClear:
		return g.checkClear()
	}
	return false
}

// checkPath holds when the start block sits at the declared From coordinate
// and the exit block at To. Reachability between them is not verified; the
// endpoints are the proxy.
func (g *Grid) checkPath() bool {
	if g.win.From == g.win.To {
		return false
	}
	var startOK, exitOK bool
	for _, b := range g.blocks {
		switch b.Type {
		case BlockStart:
			if b.At == g.win.From {
				startOK = true
			}
		case BlockExit:
			if b.At == g.win.To {
				exitOK = true
			}
		}
	}
	return startOK && exitOK
}

// checkCollect holds when no required gems remain in the grid. Collection
// itself is an external interaction; the grid only checks the remainder.
func (g *Grid) checkCollect() bool {
	if g.win.RequiredGems <= 0 {
		return false
	}
	for _, b := range g.blocks {
		if b.Type == BlockGem && b.Required {
			return false
		}
	}
	return true
}

// checkAlign holds when the gems form exactly one contiguous run of the
// declared pattern length along a single axis, with the other two
// coordinates shared.
func (g *Grid) checkAlign() bool {
	if g.win.PatternLen <= 0 {
		return false
	}

	var gems []Coord
	for _, b := range g.blocks {
		if b.Type == BlockGem {
			gems = append(gems, b.At)
		}
	}
	if len(gems) != g.win.PatternLen {
		return false
	}
	if len(gems) == 1 {
		return true
	}

	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		if contiguousAlong(gems, axis) {
			return true
		}
	}
	return false
}

// contiguousAlong reports whether the coordinates form an unbroken run along
// the axis while agreeing on the two perpendicular coordinates.
func contiguousAlong(coords []Coord, axis Axis) bool {
	ref := coords[0]
	min, max := ref.Along(axis), ref.Along(axis)
	seen := make(map[int]bool, len(coords))

	for _, c := range coords {
		for _, other := range []Axis{AxisX, AxisY, AxisZ} {
			if other != axis && c.Along(other) != ref.Along(other) {
				return false
			}
		}
		v := c.Along(axis)
		if seen[v] {
			return false
		}
		seen[v] = true
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max-min+1 == len(coords)
}

// checkClear holds when none of the obstacle blocks resolved at load time
// remain in the grid.
func (g *Grid) checkClear() bool {
	if len(g.clearTargets) == 0 {
		return false
	}
	for _, b := range g.blocks {
		if g.clearTargets[b.ID] {
			return false
		}
	}
	return true
}
