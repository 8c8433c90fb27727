package game

import (
	"log/slog"

	"github.com/pthm-cable/reef/level"
	"github.com/pthm-cable/reef/puzzle"
)

func (g *Game) logLevelStart(desc *level.Descriptor) {
	slog.Info("level started",
		"level", desc.ID,
		"name", desc.Name,
		"dims", desc.Dims,
		"win", desc.Win.Kind.String(),
		"max_moves", desc.MaxMoves,
		"target_score", desc.TargetScore,
	)
}

func (g *Game) logSlide(dir int) {
	axis, index, _ := g.grid.Selection()
	slog.Debug("slide",
		"axis", axis.String(),
		"index", index,
		"dir", dir,
		"moves", g.tracker.Moves(),
	)
}

func (g *Game) logCollect(b *puzzle.Block) {
	slog.Info("block collected",
		"type", b.Type.String(),
		"at", b.At,
		"score", g.tracker.Score(),
	)
}

func (g *Game) logComplete(res level.Result) {
	slog.Info("level completed",
		"level", g.tracker.Current().ID,
		"moves", g.tracker.Moves(),
		"score", res.Score,
		"stars", res.Stars,
		"unlocked", res.UnlockedIDs,
	)
}
