package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/reef/puzzle"
)

// handleInput processes one frame of player input. Puzzle interactions are
// suppressed while the win overlay is up; camera and pause always work.
func (g *Game) handleInput() {
	g.handleCamera()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if g.pendingResult != nil {
		// Keyboard shortcuts mirroring the overlay buttons
		if rl.IsKeyPressed(rl.KeyN) {
			g.startLevel(g.tracker.Current().ID + 1)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			g.startLevel(g.tracker.Current().ID)
		}
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.handleSelect()
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.handleCollect()
	}

	switch {
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyUp):
		g.slide(1)
	case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyDown):
		g.slide(-1)
	}

	if rl.IsKeyPressed(rl.KeyU) {
		g.undo()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.startLevel(g.tracker.Current().ID)
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		g.grid.ClearSelection()
	}
}

// handleCamera applies middle-drag orbiting, wheel zoom and home reset.
func (g *Game) handleCamera() {
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		delta := rl.GetMouseDelta()
		g.cam.Rotate(float64(delta.X)*0.006, float64(delta.Y)*0.006)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.Zoom(1 - float64(wheel)*0.1)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset()
	}
}

// handleSelect picks the block under the cursor and selects the slide line
// perpendicular to the clicked face.
func (g *Game) handleSelect() {
	mouse := rl.GetMousePosition()
	hit, ok := g.pickBlock(float64(mouse.X), float64(mouse.Y))
	if !ok {
		g.grid.ClearSelection()
		return
	}

	axis, index := puzzle.LineFromHit(hit.block.At, hit.normal)
	g.grid.SelectLine(axis, index)
}

// handleCollect removes a collectible block under the cursor. Only gems and
// clear-condition obstacles respond; structural blocks ignore the click.
func (g *Game) handleCollect() {
	mouse := rl.GetMousePosition()
	hit, ok := g.pickBlock(float64(mouse.X), float64(mouse.Y))
	if !ok {
		return
	}

	switch hit.block.Type {
	case puzzle.BlockGem:
		g.collectBlock(hit.block)
	default:
		if hit.block.Type.Obstacle() && g.grid.Win().Kind == puzzle.WinClear {
			g.collectBlock(hit.block)
		}
	}
}
