package main

import (
	"context"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"

	"github.com/luca-patrignani/poker-time/application"
)

// action is what a key press asks the live session to do.
type action int

const (
	actionNone action = iota
	actionToggle
	actionNext
	actionResetTimer
	actionRestart
	actionEdit
	actionOverview
	actionExport
	actionImport
	actionQuit
)

var runeActions = map[string]action{
	"n": actionNext,
	"t": actionResetTimer,
	"g": actionRestart,
	"e": actionEdit,
	"o": actionOverview,
	"x": actionExport,
	"i": actionImport,
	"q": actionQuit,
}

func actionForKey(key keys.Key) action {
	switch key.Code {
	case keys.Space:
		return actionToggle
	case keys.CtrlC, keys.Escape:
		return actionQuit
	case keys.RuneKey:
		return runeActions[key.String()]
	}
	return actionNone
}

// command maps the actions the loop can run by itself. Actions that need
// the terminal (prompts, tables) report false.
func (a action) command() (application.CommandType, bool) {
	switch a {
	case actionToggle:
		return application.CmdToggle, true
	case actionNext:
		return application.CmdAdvance, true
	case actionResetTimer:
		return application.CmdResetTimer, true
	case actionRestart:
		return application.CmdRestart, true
	}
	return 0, false
}

// listenKeys forwards clock commands to the orchestrator until a key needs
// the terminal, which is then returned to the caller.
func listenKeys(ctx context.Context, o *application.GameOrchestrator) (action, error) {
	var (
		next   action
		cmdErr error
	)
	err := keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		a := actionForKey(key)
		if a == actionNone {
			return false, nil
		}
		if cmd, ok := a.command(); ok {
			if _, cmdErr = o.Do(ctx, application.Command{Type: cmd}); cmdErr != nil {
				return true, nil
			}
			return false, nil
		}
		next = a
		return true, nil
	})
	if err != nil {
		return actionNone, err
	}
	if cmdErr != nil {
		return actionNone, cmdErr
	}
	return next, nil
}
