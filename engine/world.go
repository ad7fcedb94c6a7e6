package engine

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/linebounce/core"
	"github.com/lixenwraith/linebounce/physics"
	"github.com/lixenwraith/linebounce/vmath"
)

// TickStats summarizes one simulation step
type TickStats struct {
	Tick    uint64
	Bounces int
	Spawned int
	Pruned  int
	Faults  int
}

// World holds every body of the simulation and advances it one tick at a time
// Not safe for concurrent use; the owning loop serializes access
type World struct {
	Width, Height float64
	// Circles order is irrelevant to physics, survivors keep their relative order
	Circles  []core.Circle
	Segments []core.Segment

	opts     Options
	resolver *physics.Resolver
	spawner  *Spawner
	rng      *rand.Rand
	logger   *zap.Logger

	tick       uint64
	lastTick   TickStats
	totalFault int
}

// NewWorld builds the segment grid and an empty circle population
// clock drives spawning; nil uses the wall clock
func NewWorld(opts Options, clock TimeProvider, logger *zap.Logger) (*World, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = MonotonicTimeProvider{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	resolver := physics.NewResolver(opts.Kinematics)
	resolver.MaxResolveSteps = opts.MaxResolveSteps
	resolver.SeparationEpsilon = opts.SeparationEpsilon

	w := &World{
		Width:    opts.Width,
		Height:   opts.Height,
		opts:     opts,
		resolver: resolver,
		spawner:  NewSpawner(opts.SpawnInterval, clock),
		rng:      rand.New(rand.NewSource(seed)),
		logger:   logger,
	}
	w.Segments = BuildGrid(opts.Grid, w.rng)

	logger.Info("world created",
		zap.Float64("width", w.Width),
		zap.Float64("height", w.Height),
		zap.Int("segments", len(w.Segments)),
		zap.Int64("seed", seed),
	)
	return w, nil
}

// Tick advances the simulation by one step:
// bounce every circle off every segment, integrate, prune, rotate, spawn
func (w *World) Tick() {
	w.tick++
	stats := TickStats{Tick: w.tick}

	survivors := w.Circles[:0]
	for i := range w.Circles {
		c := &w.Circles[i]

		for j := range w.Segments {
			bounced, err := w.resolver.Bounce(c, &w.Segments[j])
			if bounced {
				stats.Bounces++
			}
			if err != nil {
				stats.Faults++
				w.fault(c, &w.Segments[j], err)
			}
		}

		w.resolver.Kinematics.Integrate(c)

		if w.InBounds(c) {
			survivors = append(survivors, *c)
		} else {
			stats.Pruned++
		}
	}
	w.Circles = survivors

	for j := range w.Segments {
		physics.Rotate(&w.Segments[j])
	}

	if w.spawner.Due() && w.Spawn() {
		w.spawner.Mark()
		stats.Spawned++
	}

	w.totalFault += stats.Faults
	w.lastTick = stats
}

// fault absorbs a physics error, or panics in strict mode
func (w *World) fault(c *core.Circle, s *core.Segment, err error) {
	if w.opts.Strict {
		panic(fmt.Errorf("tick %d circle %s: %w", w.tick, c.ID, err))
	}
	w.logger.Warn("collision fault",
		zap.Error(err),
		zap.Uint64("tick", w.tick),
		zap.Stringer("circle", c.ID),
		zap.Float64("x", c.Center.X),
		zap.Float64("y", c.Center.Y),
		zap.Float64("segment_x", s.Center.X),
		zap.Float64("segment_y", s.Center.Y),
		zap.Float64("angle", s.Angle),
	)
}

// SpawnPoint is horizontally centered, just above the visible area
func (w *World) SpawnPoint() vmath.Vec2 {
	return vmath.V2(w.Width/2, -w.opts.Radius+1)
}

// Spawn adds a circle at rest at the spawn point
// Returns false when the population cap is reached
func (w *World) Spawn() bool {
	if w.opts.MaxCircles > 0 && len(w.Circles) >= w.opts.MaxCircles {
		return false
	}
	w.Circles = append(w.Circles, core.NewCircle(w.SpawnPoint(), w.opts.Radius))
	return true
}

// InBounds reports whether the circle is within the visible area extended by its radius
// Circles exactly on the extended edge are still in bounds
func (w *World) InBounds(c *core.Circle) bool {
	r := c.Radius
	return c.Center.X >= -r && c.Center.X <= w.Width+r &&
		c.Center.Y >= -r && c.Center.Y <= w.Height+r
}

// Reset removes every circle and rebuilds the grid with fresh angles
func (w *World) Reset() {
	w.Circles = w.Circles[:0]
	w.Segments = BuildGrid(w.opts.Grid, w.rng)
	w.spawner.Mark()
	w.tick = 0
	w.lastTick = TickStats{}
	w.totalFault = 0
	w.logger.Info("world reset", zap.Int("segments", len(w.Segments)))
}

// Shapes returns every body for drawing, segments first
// The pointers alias world state and are valid until the next Tick
func (w *World) Shapes() []core.Shape {
	shapes := make([]core.Shape, 0, len(w.Segments)+len(w.Circles))
	for i := range w.Segments {
		shapes = append(shapes, &w.Segments[i])
	}
	for i := range w.Circles {
		shapes = append(shapes, &w.Circles[i])
	}
	return shapes
}

// LastTick returns statistics of the most recent Tick
func (w *World) LastTick() TickStats {
	return w.lastTick
}

// TickCount returns ticks since creation or the last Reset
func (w *World) TickCount() uint64 {
	return w.tick
}

// TotalFaults returns physics faults absorbed since creation or the last Reset
func (w *World) TotalFaults() int {
	return w.totalFault
}
