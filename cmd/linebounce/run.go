package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/linebounce/audio"
	"github.com/lixenwraith/linebounce/config"
	"github.com/lixenwraith/linebounce/core"
	"github.com/lixenwraith/linebounce/engine"
	"github.com/lixenwraith/linebounce/render"
)

// runSimulation owns the terminal for the lifetime of one session
func runSimulation(ctx context.Context, cfg *config.Config) error {
	logger, closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	clock := engine.NewPausableClock(engine.MonotonicTimeProvider{})
	world, err := engine.NewWorld(cfg.WorldOptions(), clock, logger.Named("world"))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	// Raw mode would swallow a crash trace
	core.SetCrashCleanup(screen.Fini)
	defer core.SetCrashCleanup(nil)
	screen.HideCursor()
	screen.Clear()

	loop := engine.NewLoop(world, render.NewTerminalRenderer(screen), clock, cfg.Loop.FrameInterval, logger.Named("loop"))

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, cfg.Audio.MaxPerSecond)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the simulation runs silent
			logger.Warn("audio initialization failed", zap.Error(err))
		} else {
			defer sm.Cleanup()
			loop.OnTick = sm.HandleTick
		}
	}

	logger.Info("session started",
		zap.Int("segments", len(world.Segments)),
		zap.Float64("width", world.Width),
		zap.Float64("height", world.Height),
		zap.Bool("strict", cfg.Physics.Strict),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(core.Guard(func() error {
		// Wake the poller so it observes cancellation
		defer screen.PostEvent(tcell.NewEventInterrupt(nil))
		return loop.Run(gctx)
	}))
	g.Go(core.Guard(func() error {
		return pollInput(gctx, screen, loop, cancel, logger.Named("input"))
	}))

	err = g.Wait()
	logger.Info("session ended",
		zap.Uint64("ticks", world.TickCount()),
		zap.Int("circles", len(world.Circles)),
		zap.Int("faults", world.TotalFaults()),
	)
	return err
}
