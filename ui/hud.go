// Package ui renders the HUD and the win overlay.
package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD needs from the core each frame.
type HUDData struct {
	LevelID     int
	LevelName   string
	Moves       int
	MaxMoves    int
	Score       int
	TargetScore int
	BestStars   int
	UndoDepth   int
	UndoCap     int

	SelectionActive bool
	SelectionAxis   string
	SelectionIndex  int

	FishCount int
	Tick      int64
	Paused    bool
	OverMoves bool

	ScreenWidth  int32
	ScreenHeight int32
}

// WinData holds the completion signal for the overlay.
type WinData struct {
	LevelName   string
	Stars       int
	Score       int
	UnlockedIDs []int
	HasNext     bool
}

// Action is the player's choice on the win overlay.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionReplay
)

// HUD renders the heads-up display.
type HUD struct{}

// NewHUD creates a HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(fmt.Sprintf("%d. %s", data.LevelID, data.LevelName), 10, 10, 20, rl.White)

	movesColor := rl.LightGray
	if data.OverMoves {
		movesColor = rl.NewColor(240, 120, 100, 255)
	}
	rl.DrawText(
		fmt.Sprintf("Moves: %d/%d | Score: %d/%d | Best: %s", data.Moves, data.MaxMoves, data.Score, data.TargetScore, stars(data.BestStars)),
		10, 35, 16, movesColor,
	)

	sel := "none - click a block face"
	if data.SelectionActive {
		sel = fmt.Sprintf("%s = %d", data.SelectionAxis, data.SelectionIndex)
	}
	rl.DrawText(
		fmt.Sprintf("Line: %s | Undo: %d/%d | Fish: %d", sel, data.UndoDepth, data.UndoCap, data.FishCount),
		10, 55, 16, rl.LightGray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 75, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText(
		"click: select line | arrows: slide | right-click: collect | U: undo | R: restart | drag: orbit | space: pause",
		10, screenHeight-25, 14, rl.Gray,
	)
}

// DrawWinOverlay renders the completion screen and returns the chosen action.
func (h *HUD) DrawWinOverlay(data WinData, screenW, screenH int32) Action {
	rl.DrawRectangle(0, 0, screenW, screenH, rl.NewColor(0, 10, 25, 170))

	cx := screenW / 2
	cy := screenH / 2

	title := fmt.Sprintf("%s cleared!", data.LevelName)
	rl.DrawText(title, cx-int32(rl.MeasureText(title, 30))/2, cy-90, 30, rl.White)

	s := stars(data.Stars)
	rl.DrawText(s, cx-int32(rl.MeasureText(s, 40))/2, cy-50, 40, rl.Gold)

	scoreText := fmt.Sprintf("Score: %d", data.Score)
	rl.DrawText(scoreText, cx-int32(rl.MeasureText(scoreText, 20))/2, cy, 20, rl.LightGray)

	if len(data.UnlockedIDs) > 0 {
		ids := make([]string, len(data.UnlockedIDs))
		for i, id := range data.UnlockedIDs {
			ids[i] = fmt.Sprintf("%d", id)
		}
		unlockText := "Unlocked level " + strings.Join(ids, ", ")
		rl.DrawText(unlockText, cx-int32(rl.MeasureText(unlockText, 18))/2, cy+28, 18, rl.Green)
	}

	y := float32(cy + 60)
	if data.HasNext {
		if gui.Button(rl.Rectangle{X: float32(cx) - 130, Y: y, Width: 120, Height: 32}, "Next Level") {
			return ActionNext
		}
		if gui.Button(rl.Rectangle{X: float32(cx) + 10, Y: y, Width: 120, Height: 32}, "Replay") {
			return ActionReplay
		}
	} else {
		if gui.Button(rl.Rectangle{X: float32(cx) - 60, Y: y, Width: 120, Height: 32}, "Replay") {
			return ActionReplay
		}
	}
	return ActionNone
}

// stars renders a 0-3 rating as filled and hollow stars.
func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 3 {
		n = 3
	}
	return strings.Repeat("*", n) + strings.Repeat("-", 3-n)
}
