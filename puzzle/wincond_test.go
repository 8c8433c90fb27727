package puzzle

import "testing"

func TestCheckWin_Path(t *testing.T) {
	g, _ := newTestGrid(Options{})
	win := WinCondition{
		Kind: WinPath,
		From: Coord{X: 0, Y: 0, Z: 0},
		To:   Coord{X: 2, Y: 0, Z: 0},
	}
	g.Load(Dims{X: 3, Y: 3, Z: 3}, []Placement{
		{At: Coord{X: 0, Y: 1, Z: 0}, Type: BlockStart},
		{At: Coord{X: 2, Y: 0, Z: 0}, Type: BlockExit},
	}, win)

	if g.CheckWin() {
		t.Fatal("start off target must not win")
	}

	// Slide the start block down onto From
	g.SelectLine(AxisY, 1)
	res := g.Slide(-1)
	if !res.Solved {
		t.Error("start at From and exit at To should win")
	}
}

func TestCheckWin_PathDegenerateEndpoints(t *testing.T) {
	g, _ := newTestGrid(Options{})
	at := Coord{X: 1, Y: 1, Z: 1}
	g.Load(Dims{X: 3, Y: 3, Z: 3}, []Placement{
		{At: at, Type: BlockStart},
	}, WinCondition{Kind: WinPath, From: at, To: at})

	if g.CheckWin() {
		t.Error("From equal to To must never win")
	}
}

func TestCheckWin_Collect(t *testing.T) {
	g, _ := newTestGrid(Options{})
	g.Load(Dims{X: 3, Y: 3, Z: 3}, []Placement{
		{At: Coord{X: 0, Y: 0, Z: 0}, Type: BlockGem, Required: true},
		{At: Coord{X: 1, Y: 0, Z: 0}, Type: BlockGem, Required: true},
		{At: Coord{X: 2, Y: 0, Z: 0}, Type: BlockGem}, // bonus gem, not required
	}, WinCondition{Kind: WinCollect, RequiredGems: 2})

	if g.CheckWin() {
		t.Fatal("required gems still present must not win")
	}

	first, _ := g.BlockAt(Coord{X: 0, Y: 0, Z: 0})
	g.Remove(first.ID)
	if g.CheckWin() {
		t.Fatal("one required gem remaining must not win")
	}

	second, _ := g.BlockAt(Coord{X: 1, Y: 0, Z: 0})
	g.Remove(second.ID)
	if !g.CheckWin() {
		t.Error("all required gems removed should win, bonus gems notwithstanding")
	}
}

func TestCheckWin_CollectZeroRequired(t *testing.T) {
	g, _ := newTestGrid(Options{})
	g.Load(Dims{X: 3, Y: 3, Z: 3}, nil, WinCondition{Kind: WinCollect})

	if g.CheckWin() {
		t.Error("a collect level without required gems must never report success")
	}
}

func TestCheckWin_Align(t *testing.T) {
	g, _ := newTestGrid(Options{})
	g.Load(Dims{X: 4, Y: 4, Z: 4}, []Placement{
		{At: Coord{X: 0, Y: 0, Z: 0}, Type: BlockGem},
		{At: Coord{X: 1, Y: 0, Z: 0}, Type: BlockGem},
		{At: Coord{X: 2, Y: 1, Z: 0}, Type: BlockGem},
	}, WinCondition{Kind: WinAlign, PatternLen: 3})

	if g.CheckWin() {
		t.Fatal("broken run must not win")
	}

	// Slide the stray gem's line down: the run {0,0,0} {1,0,0} {2,0,0} forms
	g.SelectLine(AxisY, 1)
	res := g.Slide(-1)
	if !res.Solved {
		t.Error("contiguous run of PatternLen gems along one axis should win")
	}
}

func TestCheckWin_AlignRejectsGaps(t *testing.T) {
	g, _ := newTestGrid(Options{})
	g.Load(Dims{X: 5, Y: 3, Z: 3}, []Placement{
		{At: Coord{X: 0, Y: 0, Z: 0}, Type: BlockGem},
		{At: Coord{X: 1, Y: 0, Z: 0}, Type: BlockGem},
		{At: Coord{X: 3, Y: 0, Z: 0}, Type: BlockGem},
	}, WinCondition{Kind: WinAlign, PatternLen: 3})

	if g.CheckWin() {
		t.Error("a gapped run must not win")
	}
}

func TestCheckWin_AlignRejectsOffAxis(t *testing.T) {
	g, _ := newTestGrid(Options{})
	g.Load(Dims{X: 4, Y: 4, Z: 4}, []Placement{
		{At: Coord{X: 0, Y: 0, Z: 0}, Type: BlockGem},
		{At: Coord{X: 1, Y: 0, Z: 0}, Type: BlockGem},
		{At: Coord{X: 2, Y: 0, Z: 1}, Type: BlockGem},
	}, WinCondition{Kind: WinAlign, PatternLen: 3})

	if g.CheckWin() {
		t.Error("a run that bends off axis must not win")
	}
}

func TestCheckWin_Clear(t *testing.T) {
	obstacles := []Coord{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
	}
	g, _ := newTestGrid(Options{})
	g.Load(Dims{X: 3, Y: 3, Z: 3}, []Placement{
		{At: obstacles[0], Type: BlockRock},
		{At: obstacles[1], Type: BlockDark},
		{At: Coord{X: 2, Y: 2, Z: 2}, Type: BlockRock}, // not a clear target
	}, WinCondition{Kind: WinClear, Obstacles: obstacles})

	if g.CheckWin() {
		t.Fatal("clear targets still present must not win")
	}

	a, _ := g.BlockAt(obstacles[0])
	g.Remove(a.ID)
	if g.CheckWin() {
		t.Fatal("one clear target remaining must not win")
	}

	b, _ := g.BlockAt(obstacles[1])
	g.Remove(b.ID)
	if !g.CheckWin() {
		t.Error("all clear targets removed should win, unlisted obstacles notwithstanding")
	}
}

func TestCheckWin_ClearTargetsTrackedByIdentity(t *testing.T) {
	target := Coord{X: 0, Y: 0, Z: 0}
	g, _ := newTestGrid(Options{})
	g.Load(Dims{X: 4, Y: 3, Z: 3}, []Placement{
		{At: target, Type: BlockRock},
	}, WinCondition{Kind: WinClear, Obstacles: []Coord{target}})

	// Slide the target away from its initial coordinate; it is still the
	// same block and must still gate the win
	g.SelectLine(AxisX, 0)
	g.Slide(1)

	if g.CheckWin() {
		t.Error("a moved clear target still gates the win until removed")
	}

	b, _ := g.BlockAt(Coord{X: 1, Y: 0, Z: 0})
	g.Remove(b.ID)
	if !g.CheckWin() {
		t.Error("removing the moved target should win")
	}
}

func TestCheckWin_ClearEmptyTargets(t *testing.T) {
	g, _ := newTestGrid(Options{})
	g.Load(Dims{X: 3, Y: 3, Z: 3}, nil, WinCondition{Kind: WinClear})

	if g.CheckWin() {
		t.Error("a clear level without targets must never report success")
	}
}
