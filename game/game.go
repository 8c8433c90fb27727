// Package game wires the puzzle grid, progression tracker, physics world and
// flocking field into the frame-step loop.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/reef/camera"
	"github.com/pthm-cable/reef/components"
	"github.com/pthm-cable/reef/config"
	"github.com/pthm-cable/reef/flocking"
	"github.com/pthm-cable/reef/level"
	"github.com/pthm-cable/reef/physics"
	"github.com/pthm-cable/reef/puzzle"
	"github.com/pthm-cable/reef/renderer"
	"github.com/pthm-cable/reef/telemetry"
	"github.com/pthm-cable/reef/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	StartLevel     int
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete game state. Single-threaded: one Update per frame,
// all transitions synchronous within a tick.
type Game struct {
	world   *physics.World
	grid    *puzzle.Grid
	tracker *level.Tracker
	field   *flocking.Field
	cam     *camera.Orbit

	collector *telemetry.Collector
	water     *renderer.Water
	hud       *ui.HUD

	rng  *rand.Rand
	opts Options

	tick    int64
	elapsed float64
	paused  bool

	// Win overlay state; nil while a level is in progress
	pendingResult *level.Result

	width, height int32
}

// NewGameWithOptions creates a game from the loaded config and options.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}
	if opts.StartLevel < 1 {
		opts.StartLevel = 1
	}

	levelSeed := cfg.Levels.Seed
	if levelSeed == 0 {
		levelSeed = opts.Seed
	}

	g := &Game{
		rng:    rand.New(rand.NewSource(opts.Seed)),
		opts:   opts,
		width:  int32(cfg.Screen.Width),
		height: int32(cfg.Screen.Height),
	}

	g.world = physics.NewWorld(cfg.Physics.LinearDrag, cfg.Physics.AngularDrag, cfg.Physics.AnchorStiffness)

	catalog := level.NewCatalog(cfg.Levels.ProceduralCount, rand.New(rand.NewSource(levelSeed)))
	g.tracker = level.NewTracker(catalog)

	g.grid = puzzle.NewGrid(g.world, g.tracker, puzzle.Options{
		UndoCapacity:  cfg.Puzzle.UndoCapacity,
		SlideForce:    cfg.Physics.SlideForce,
		ClampToBounds: cfg.Puzzle.ClampToBounds,
		Spacing:       cfg.World.BlockSpacing,
		BlockMass:     1,
	})

	g.field = flocking.NewField(flocking.Params{
		SeparationDistance: cfg.Flocking.SeparationDistance,
		AlignmentDistance:  cfg.Flocking.AlignmentDistance,
		CohesionDistance:   cfg.Flocking.CohesionDistance,
		SeparationStrength: cfg.Flocking.SeparationStrength,
		AlignmentStrength:  cfg.Flocking.AlignmentStrength,
		CohesionStrength:   cfg.Flocking.CohesionStrength,
		AvoidDistance:      cfg.Flocking.AvoidDistance,
		AvoidStrength:      cfg.Flocking.AvoidStrength,
		CurrentStrength:    cfg.Flocking.CurrentStrength,
		CurrentScale:       cfg.Flocking.CurrentScale,
		BoundsRadius:       cfg.World.BoundsRadius,
	}, cfg.Derived.GridQueryCell, opts.Seed)

	g.field.Spawn(components.SpeciesClownfish, cfg.Flocking.Counts.Clownfish)
	g.field.Spawn(components.SpeciesAngelfish, cfg.Flocking.Counts.Angelfish)
	g.field.Spawn(components.SpeciesJellyfish, cfg.Flocking.Counts.Jellyfish)
	g.field.Spawn(components.SpeciesShark, cfg.Flocking.Counts.Shark)

	g.cam = camera.New(r3.Vec{}, cfg.World.BlockSpacing*8)

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
		out = nil
	}
	if out != nil {
		if err := out.WriteConfigSnapshot(cfg); err != nil {
			slog.Warn("failed to write config snapshot", "error", err)
		}
	}
	window := opts.StatsWindowSec
	if window <= 0 {
		window = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(window, out, opts.LogStats)

	g.water = renderer.NewWater(g.width, g.height)
	g.hud = ui.NewHUD()

	if !g.startLevel(opts.StartLevel) {
		// Requested level missing or locked: fall back to the first
		g.startLevel(1)
	}

	return g
}

// startLevel activates a level and rebuilds the grid. A level change
// invalidates any in-flight selection, which Load clears.
func (g *Game) startLevel(id int) bool {
	if !g.tracker.StartLevel(id) {
		slog.Warn("level unavailable", "level", id)
		return false
	}

	desc := g.tracker.Current()
	g.grid.Load(desc.Dims, desc.Blocks, desc.Win)
	g.syncAnchors()
	g.pendingResult = nil

	g.logLevelStart(desc)
	return true
}

// syncAnchors points every block's physics body at its authoritative grid
// cell so the simulated motion converges there.
func (g *Game) syncAnchors() {
	for _, b := range g.grid.Blocks() {
		g.world.SetAnchor(b.Body, g.grid.WorldPos(b.At))
	}
}

// slide runs one slide transaction and everything that hangs off it.
func (g *Game) slide(dir int) {
	res := g.grid.Slide(dir)
	if !res.Moved {
		return
	}

	g.collector.RecordSlide()
	g.syncAnchors()
	g.logSlide(dir)

	if res.Solved {
		g.completeLevel()
	}
}

// undo restores the previous block layout if any snapshot remains.
func (g *Game) undo() {
	if !g.grid.Undo() {
		return
	}
	g.collector.RecordUndo()
	g.syncAnchors()
}

// collectBlock removes a gem (scoring it) or a clear-level obstacle, then
// re-evaluates the win condition the removal may have satisfied.
func (g *Game) collectBlock(b *puzzle.Block) {
	cfg := config.Cfg()

	if _, ok := g.grid.Remove(b.ID); !ok {
		return
	}

	if b.Type == puzzle.BlockGem {
		g.tracker.AddScore(cfg.Puzzle.GemPoints)
		g.collector.RecordGem()
	}
	g.logCollect(b)

	if g.tracker.State() == level.StateInProgress && g.grid.CheckWin() {
		g.completeLevel()
	}
}

// completeLevel closes the attempt: score bonus, star computation, unlock
// propagation and the win overlay.
func (g *Game) completeLevel() {
	cfg := config.Cfg()
	g.tracker.AddScore(cfg.Puzzle.SolvePoints)

	res := g.tracker.CompleteLevel()
	g.collector.RecordSolve(g.tracker.Moves(), res.Stars)
	g.pendingResult = &res
	g.grid.ClearSelection()

	g.logComplete(res)
}

// Update runs input handling and simulation steps for one frame.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.opts.StepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances the simulation without a window, issuing random
// exploratory moves so soak runs exercise the puzzle core and telemetry.
func (g *Game) UpdateHeadless() {
	if g.tick%30 == 0 {
		g.headlessMove()
	}
	for i := 0; i < g.opts.StepsPerUpdate; i++ {
		g.step()
	}
}

// headlessMove makes one random puzzle interaction.
func (g *Game) headlessMove() {
	if g.pendingResult != nil {
		next := g.tracker.Current().ID + 1
		if !g.startLevel(next) {
			g.startLevel(g.tracker.Current().ID)
		}
		return
	}

	dims := g.grid.Dims()
	axis := puzzle.Axis(g.rng.Intn(3))
	g.grid.SelectLine(axis, g.rng.Intn(max(dims.Extent(axis), 1)))

	dir := 1
	if g.rng.Intn(2) == 0 {
		dir = -1
	}
	g.slide(dir)

	if g.rng.Intn(8) == 0 {
		g.undo()
	}
}

// step advances one fixed tick. Physics precedes any consumption of body
// positions; the flocking field reads the camera viewpoint injected here.
func (g *Game) step() {
	cfg := config.Cfg()
	dt := cfg.Physics.DT

	g.world.Step(dt, g.elapsed, cfg.Physics.Substeps)
	g.field.Update(dt, g.elapsed, g.cam.Position())

	g.collector.SetScene(g.currentLevelID(), g.field.Count())
	g.collector.Tick(g.tick, g.elapsed)

	g.tick++
	g.elapsed += dt
}

func (g *Game) currentLevelID() int {
	if d := g.tracker.Current(); d != nil {
		return d.ID
	}
	return 0
}

// Draw renders the frame.
func (g *Game) Draw() {
	cfg := config.Cfg()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.water.Draw(float32(g.elapsed))

	cam3d := rl.Camera3D{
		Position:   renderer.Vec3(g.cam.Position()),
		Target:     renderer.Vec3(g.cam.Target),
		Up:         rl.Vector3{Y: 1},
		Fovy:       float32(cfg.Screen.FOV),
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(cam3d)
	renderer.DrawGridBounds(g.grid.Dims(), cfg.World.BlockSpacing)
	renderer.DrawBlocks(g.grid, g.world, cfg.World.BlockSpacing)
	renderer.DrawFish(g.field)
	rl.EndMode3D()

	g.drawHUD()

	rl.EndDrawing()
}

func (g *Game) drawHUD() {
	desc := g.tracker.Current()
	if desc == nil {
		return
	}
	cfg := config.Cfg()

	axis, index, active := g.grid.Selection()
	g.hud.Draw(ui.HUDData{
		LevelID:         desc.ID,
		LevelName:       desc.Name,
		Moves:           g.tracker.Moves(),
		MaxMoves:        desc.MaxMoves,
		Score:           g.tracker.Score(),
		TargetScore:     desc.TargetScore,
		BestStars:       desc.BestStars,
		UndoDepth:       g.grid.UndoDepth(),
		UndoCap:         cfg.Puzzle.UndoCapacity,
		SelectionActive: active,
		SelectionAxis:   axis.String(),
		SelectionIndex:  index,
		FishCount:       g.field.Count(),
		Tick:            g.tick,
		Paused:          g.paused,
		OverMoves:       g.tracker.OverBudget(),
		ScreenWidth:     g.width,
		ScreenHeight:    g.height,
	})
	g.hud.DrawControls(g.height)

	if g.pendingResult != nil {
		_, hasNext := g.tracker.Catalog().Get(desc.ID + 1)
		action := g.hud.DrawWinOverlay(ui.WinData{
			LevelName:   desc.Name,
			Stars:       g.pendingResult.Stars,
			Score:       g.pendingResult.Score,
			UnlockedIDs: g.pendingResult.UnlockedIDs,
			HasNext:     hasNext,
		}, g.width, g.height)

		switch action {
		case ui.ActionNext:
			g.startLevel(desc.ID + 1)
		case ui.ActionReplay:
			g.startLevel(desc.ID)
		}
	}
}

// Unload releases resources and flushes telemetry.
func (g *Game) Unload() {
	g.grid.Unload()
	if err := g.collector.Close(); err != nil {
		slog.Warn("failed to close telemetry", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.tick
}
