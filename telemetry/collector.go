package telemetry

// Collector accumulates gameplay events and closes a WindowStats every
// windowSec seconds of simulated time.
type Collector struct {
	windowSec   float64
	windowStart float64

	curr       WindowStats
	solveMoves []float64
	history    []WindowStats

	out      *OutputManager
	logStats bool
}

// NewCollector creates a collector with the given window size in seconds.
// out may be nil (CSV output disabled).
func NewCollector(windowSec float64, out *OutputManager, logStats bool) *Collector {
	if windowSec <= 0 {
		windowSec = 10
	}
	return &Collector{
		windowSec: windowSec,
		out:       out,
		logStats:  logStats,
	}
}

// RecordSlide counts a completed slide transaction.
func (c *Collector) RecordSlide() {
	c.curr.Slides++
}

// RecordUndo counts a successful undo.
func (c *Collector) RecordUndo() {
	c.curr.Undos++
}

// RecordGem counts a collected gem.
func (c *Collector) RecordGem() {
	c.curr.GemsCollected++
}

// RecordSolve counts a level completion with the moves it took and the
// stars it earned.
func (c *Collector) RecordSolve(moves, stars int) {
	c.curr.Solves++
	c.curr.StarsEarned += stars
	c.solveMoves = append(c.solveMoves, float64(moves))
}

// SetScene records the state sampled at window end.
func (c *Collector) SetScene(levelID, fishCount int) {
	c.curr.LevelID = levelID
	c.curr.FishCount = fishCount
}

// Tick advances simulated time and closes the window when due.
func (c *Collector) Tick(tick int64, simTime float64) {
	if simTime-c.windowStart < c.windowSec {
		return
	}

	c.curr.WindowEndTick = tick
	c.curr.SimTimeSec = simTime
	c.curr.MeanSolveMoves, c.curr.StdSolveMoves = ComputeMoveStats(c.solveMoves)

	if c.logStats {
		c.curr.Log()
	}
	if c.out != nil {
		c.out.WriteWindow(c.curr)
	}

	c.history = append(c.history, c.curr)
	c.curr = WindowStats{LevelID: c.curr.LevelID, FishCount: c.curr.FishCount}
	c.solveMoves = c.solveMoves[:0]
	c.windowStart = simTime
}

// History returns the closed windows.
func (c *Collector) History() []WindowStats {
	return c.history
}

// Close flushes any pending output.
func (c *Collector) Close() error {
	if c.out != nil {
		return c.out.Close()
	}
	return nil
}
