package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/linebounce/physics"
)

// Defaults reproduce the reference scene: a 480×480 field, a 5×5 grid at
// spacing 80 with the two cells under the spawn point left open
const (
	DefaultWidth         = 480.0
	DefaultHeight        = 480.0
	DefaultRadius        = 7.0
	DefaultSpawnInterval = 400 * time.Millisecond
	DefaultGridCols      = 5
	DefaultGridRows      = 5
	DefaultGridSpacing   = 80.0
	DefaultSegmentSpan   = 40.0
	DefaultRotateSpeed   = 0.5
)

var ErrInvalidOptions = errors.New("engine: invalid options")

// GridCell addresses a grid position, 1-based, Col along X and Row along Y
type GridCell struct {
	Col int `mapstructure:"col" yaml:"col"`
	Row int `mapstructure:"row" yaml:"row"`
}

// GridOptions describes the segment lattice
type GridOptions struct {
	Cols        int
	Rows        int
	Spacing     float64
	Span        float64
	RotateSpeed float64
	Omit        []GridCell
}

// Options configures a World
type Options struct {
	Width, Height float64
	Radius        float64
	SpawnInterval time.Duration
	// MaxCircles suppresses spawning at this population, 0 = unlimited
	MaxCircles int
	Grid       GridOptions

	Kinematics        physics.Kinematics
	MaxResolveSteps   int
	SeparationEpsilon float64
	// Strict panics on physics faults instead of logging and absorbing them
	Strict bool
	// Seed for initial segment angles, 0 picks a time-based seed
	Seed int64
}

// DefaultOptions returns the reference scene
func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Radius:        DefaultRadius,
		SpawnInterval: DefaultSpawnInterval,
		Grid: GridOptions{
			Cols:        DefaultGridCols,
			Rows:        DefaultGridRows,
			Spacing:     DefaultGridSpacing,
			Span:        DefaultSegmentSpan,
			RotateSpeed: DefaultRotateSpeed,
			Omit:        []GridCell{{Col: 3, Row: 1}, {Col: 3, Row: 2}},
		},
		Kinematics:        physics.DefaultKinematics(),
		MaxResolveSteps:   physics.DefaultMaxResolveSteps,
		SeparationEpsilon: physics.DefaultSeparationEpsilon,
	}
}

// Validate checks the body invariants the physics relies on
func (o Options) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(o.Width > 0 && o.Height > 0, "world size must be positive, got %vx%v", o.Width, o.Height)
	check(o.Radius > 0, "circle radius must be positive, got %v", o.Radius)
	check(o.SpawnInterval > 0, "spawn interval must be positive, got %v", o.SpawnInterval)
	check(o.MaxCircles >= 0, "max circles must not be negative, got %d", o.MaxCircles)
	check(o.Grid.Cols >= 0 && o.Grid.Rows >= 0, "grid dimensions must not be negative, got %dx%d", o.Grid.Cols, o.Grid.Rows)
	check(o.Grid.Cols*o.Grid.Rows == 0 || o.Grid.Span > 0, "segment span must be positive, got %v", o.Grid.Span)
	check(o.Kinematics.TimeScale > 0, "time scale must be positive, got %v", o.Kinematics.TimeScale)
	check(o.MaxResolveSteps >= 0, "max resolve steps must not be negative, got %d", o.MaxResolveSteps)
	check(o.SeparationEpsilon > 0, "separation epsilon must be positive, got %v", o.SeparationEpsilon)
	for _, cell := range o.Grid.Omit {
		check(cell.Col >= 1 && cell.Col <= o.Grid.Cols && cell.Row >= 1 && cell.Row <= o.Grid.Rows,
			"omitted cell %d,%d outside %dx%d grid", cell.Col, cell.Row, o.Grid.Cols, o.Grid.Rows)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
	}
	return nil
}
