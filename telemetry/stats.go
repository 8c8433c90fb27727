// Package telemetry aggregates session statistics into time windows and
// writes them to structured logs and CSV files.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated session statistics for one time window.
type WindowStats struct {
	WindowEndTick int64   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Active level at window end
	LevelID int `csv:"level"`

	// Events during the window
	Slides        int `csv:"slides"`
	Undos         int `csv:"undos"`
	GemsCollected int `csv:"gems"`
	Solves        int `csv:"solves"`
	StarsEarned   int `csv:"stars"`

	// Scene state at window end
	FishCount int `csv:"fish"`

	// Solve efficiency across the window
	MeanSolveMoves float64 `csv:"mean_solve_moves"`
	StdSolveMoves  float64 `csv:"std_solve_moves"`
}

// ComputeMoveStats returns the mean and standard deviation of the per-solve
// move counts. Empty input returns zeros.
func ComputeMoveStats(moves []float64) (mean, std float64) {
	if len(moves) == 0 {
		return 0, 0
	}
	mean = stat.Mean(moves, nil)
	if len(moves) > 1 {
		std = stat.StdDev(moves, nil)
	}
	return mean, std
}

// Log emits the window through slog with structured attributes.
func (ws *WindowStats) Log() {
	slog.Info("session stats",
		"window_end", ws.WindowEndTick,
		"sim_time", ws.SimTimeSec,
		"level", ws.LevelID,
		"slides", ws.Slides,
		"undos", ws.Undos,
		"gems", ws.GemsCollected,
		"solves", ws.Solves,
		"stars", ws.StarsEarned,
		"fish", ws.FishCount,
		"mean_solve_moves", ws.MeanSolveMoves,
	)
}
