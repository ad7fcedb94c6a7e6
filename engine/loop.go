package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultFrameInterval is ~60 FPS
const DefaultFrameInterval = 16 * time.Millisecond

// Command is a host request serialized through the loop
type Command uint8

const (
	CmdTogglePause Command = iota
	// CmdStep advances one tick while paused
	CmdStep
	CmdReset
	CmdSpawn
)

func (c Command) String() string {
	switch c {
	case CmdTogglePause:
		return "toggle-pause"
	case CmdStep:
		return "step"
	case CmdReset:
		return "reset"
	case CmdSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// FrameInfo carries loop state the world does not own
type FrameInfo struct {
	Paused bool
	Uptime time.Duration
}

// Renderer draws a read-only view of the world once per frame
type Renderer interface {
	Render(w *World, info FrameInfo)
}

// Loop is the frame scheduler: one tick and one render per frame
// All world access happens on the goroutine running Run
type Loop struct {
	world    *World
	renderer Renderer
	clock    *PausableClock
	interval time.Duration
	logger   *zap.Logger

	commands chan Command

	// OnTick observes stats after every tick, called on the loop goroutine
	OnTick func(TickStats)
}

// NewLoop wires a world to its renderer
// clock must be the clock the world spawns by
func NewLoop(world *World, renderer Renderer, clock *PausableClock, interval time.Duration, logger *zap.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		world:    world,
		renderer: renderer,
		clock:    clock,
		interval: interval,
		logger:   logger,
		commands: make(chan Command, 64),
	}
}

// Send queues a command, dropping it when the queue is full
func (l *Loop) Send(cmd Command) bool {
	select {
	case l.commands <- cmd:
		return true
	default:
		l.logger.Debug("command dropped", zap.Stringer("command", cmd))
		return false
	}
}

// Run ticks and renders until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Info("loop started", zap.Duration("frame_interval", l.interval))
	defer l.logger.Info("loop stopped", zap.Uint64("tick", l.world.TickCount()))

	l.render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-l.commands:
			l.handle(cmd)
		case <-ticker.C:
			l.frame()
		}
	}
}

func (l *Loop) frame() {
	if !l.clock.IsPaused() {
		l.tick()
	}
	l.render()
}

func (l *Loop) tick() {
	l.world.Tick()
	if l.OnTick != nil {
		l.OnTick(l.world.LastTick())
	}
}

func (l *Loop) render() {
	l.renderer.Render(l.world, FrameInfo{
		Paused: l.clock.IsPaused(),
		Uptime: l.clock.Uptime(),
	})
}

func (l *Loop) handle(cmd Command) {
	l.logger.Debug("command", zap.Stringer("command", cmd))

	switch cmd {
	case CmdTogglePause:
		l.clock.Toggle()
	case CmdStep:
		if !l.clock.IsPaused() {
			return
		}
		l.tick()
	case CmdReset:
		l.world.Reset()
	case CmdSpawn:
		l.world.Spawn()
	}
	l.render()
}
