package main

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/linebounce/engine"
)

type keyAction uint8

const (
	actionNone keyAction = iota
	actionCommand
	actionQuit
)

// keyCommand maps a key press to a loop command or quit
func keyCommand(ev *tcell.EventKey) (keyAction, engine.Command) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, 0
	case tcell.KeyRune:
	default:
		return actionNone, 0
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return actionQuit, 0
	case 'p', 'P', ' ':
		return actionCommand, engine.CmdTogglePause
	case 'n', 'N':
		return actionCommand, engine.CmdStep
	case 'r', 'R':
		return actionCommand, engine.CmdReset
	case 's', 'S':
		return actionCommand, engine.CmdSpawn
	}
	return actionNone, 0
}

// pollInput forwards key presses to the loop until quit, ctx cancellation or screen shutdown
// It never touches the world; the loop goroutine owns it
func pollInput(ctx context.Context, screen tcell.Screen, loop *engine.Loop, quit context.CancelFunc, logger *zap.Logger) error {
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			action, cmd := keyCommand(ev)
			switch action {
			case actionQuit:
				logger.Info("quit requested")
				quit()
				return nil
			case actionCommand:
				loop.Send(cmd)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
