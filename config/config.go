// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Puzzle    PuzzleConfig    `yaml:"puzzle"`
	Levels    LevelsConfig    `yaml:"levels"`
	Flocking  FlockingConfig  `yaml:"flocking"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	TargetFPS int     `yaml:"target_fps"`
	FOV       float64 `yaml:"fov"` // vertical field of view in degrees
}

// WorldConfig holds scene dimensions.
type WorldConfig struct {
	BoundsRadius float64 `yaml:"bounds_radius"` // fish wraparound radius from origin
	BlockSpacing float64 `yaml:"block_spacing"` // world units between grid cells
}

// PhysicsConfig holds rigid body solver parameters.
type PhysicsConfig struct {
	DT              float64 `yaml:"dt"`               // fixed step in seconds
	Substeps        int     `yaml:"substeps"`         // solver substeps per step
	SlideForce      float64 `yaml:"slide_force"`      // impulse magnitude per slid block
	LinearDrag      float64 `yaml:"linear_drag"`      // water drag on linear velocity
	AngularDrag     float64 `yaml:"angular_drag"`     // water drag on angular velocity
	AnchorStiffness float64 `yaml:"anchor_stiffness"` // spring pulling bodies to their grid cell
}

// PuzzleConfig holds slide transaction parameters.
type PuzzleConfig struct {
	UndoCapacity  int  `yaml:"undo_capacity"`   // bounded undo history (upgrade-granted)
	ClampToBounds bool `yaml:"clamp_to_bounds"` // reject slides that leave the grid extent
	GemPoints     int  `yaml:"gem_points"`      // score per collected gem
	SolvePoints   int  `yaml:"solve_points"`    // score on level completion
}

// LevelsConfig holds level catalog parameters.
type LevelsConfig struct {
	ProceduralCount int   `yaml:"procedural_count"` // levels generated beyond the authored set
	Seed            int64 `yaml:"seed"`             // 0 = derive from the game seed
}

// FlockingConfig holds boids steering parameters.
type FlockingConfig struct {
	SeparationDistance float64 `yaml:"separation_distance"`
	AlignmentDistance  float64 `yaml:"alignment_distance"`
	CohesionDistance   float64 `yaml:"cohesion_distance"`
	SeparationStrength float64 `yaml:"separation_strength"`
	AlignmentStrength  float64 `yaml:"alignment_strength"`
	CohesionStrength   float64 `yaml:"cohesion_strength"`
	AvoidDistance      float64 `yaml:"avoid_distance"` // predator proximity threshold
	AvoidStrength      float64 `yaml:"avoid_strength"`
	CurrentStrength float64 `yaml:"current_strength"` // ambient current contribution
	CurrentScale    float64 `yaml:"current_scale"`    // noise frequency for the current field

	Counts SpawnCounts `yaml:"counts"`
}

// SpawnCounts holds the per-species spawn mix.
type SpawnCounts struct {
	Clownfish int `yaml:"clownfish"`
	Angelfish int `yaml:"angelfish"`
	Jellyfish int `yaml:"jellyfish"`
	Shark     int `yaml:"shark"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per aggregation window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GridQueryCell float64 // spatial hash cell size for flocking queries
	TotalFish     int     // sum of per-species spawn counts
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Puzzle.UndoCapacity < 1 {
		c.Puzzle.UndoCapacity = 1
	}
	if c.Physics.Substeps < 1 {
		c.Physics.Substeps = 1
	}

	// Neighbor query cell size covers the widest steering radius
	cell := c.Flocking.CohesionDistance
	if c.Flocking.AlignmentDistance > cell {
		cell = c.Flocking.AlignmentDistance
	}
	if c.Flocking.SeparationDistance > cell {
		cell = c.Flocking.SeparationDistance
	}
	if cell <= 0 {
		cell = 10
	}
	c.Derived.GridQueryCell = cell

	n := c.Flocking.Counts
	c.Derived.TotalFish = n.Clownfish + n.Angelfish + n.Jellyfish + n.Shark
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
