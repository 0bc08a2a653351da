package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/luca-patrignani/poker-time/application"
	"github.com/luca-patrignani/poker-time/config"
	"github.com/luca-patrignani/poker-time/domain/poker"
	"github.com/luca-patrignani/poker-time/roundfile"
)

var errNotTerminal = errors.New("the live clock needs an interactive terminal")

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// session drives one live clock: the orchestrator loop runs in its own
// goroutine while this one owns the keyboard and the prompts.
type session struct {
	cfg      *config.Config
	store    *roundfile.Store
	logger   *slog.Logger
	prompter prompter
	renderer *terminalRenderer
	orch     *application.GameOrchestrator
}

func newSession(cfg *config.Config, store *roundfile.Store, logger *slog.Logger, rounds poker.Sequence) (*session, error) {
	state, err := poker.NewState(rounds)
	if err != nil {
		return nil, err
	}
	renderer := newTerminalRenderer()
	orch := application.NewGameOrchestrator(state, renderer,
		application.WithTick(cfg.Timer.Tick),
		application.WithFlash(cfg.Timer.FlashCycles, cfg.Timer.FlashInterval),
		application.WithLogger(logger),
	)
	return &session{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		prompter: ptermPrompter{},
		renderer: renderer,
		orch:     orch,
	}, nil
}

func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	defer func() {
		cancel()
		<-done
		s.renderer.Suspend()
	}()

	if err := s.renderer.Resume(); err != nil {
		close(done)
		return fmt.Errorf("failed to start display: %w", err)
	}
	go func() { done <- s.orch.Run(ctx) }()

	for {
		a, err := listenKeys(ctx, s.orch)
		if err != nil {
			return err
		}
		if a == actionQuit {
			return nil
		}

		s.renderer.Suspend()
		if err := s.handle(ctx, a); err != nil {
			s.logger.Error("action failed", "error", err)
			pterm.Error.Println(err.Error())
			waitForEnter()
		}
		if err := s.renderer.Resume(); err != nil {
			return fmt.Errorf("failed to resume display: %w", err)
		}
	}
}

// handle runs an action that needs the terminal. The clock keeps running
// underneath.
func (s *session) handle(ctx context.Context, a action) error {
	switch a {
	case actionEdit:
		return s.edit(ctx)
	case actionOverview:
		return s.overview(ctx)
	case actionExport:
		return s.export(ctx)
	case actionImport:
		return s.importFile(ctx)
	}
	return nil
}

func (s *session) edit(ctx context.Context) error {
	state, err := s.orch.Snapshot(ctx)
	if err != nil {
		return err
	}
	rounds, err := editRounds(s.prompter, state.Game.Rounds)
	if err != nil {
		return err
	}
	if _, err := s.orch.Commit(ctx, rounds); err != nil {
		return err
	}
	pterm.Success.Printfln("Saved %d rounds", len(rounds))
	return nil
}

func (s *session) overview(ctx context.Context) error {
	state, err := s.orch.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err := printOverview(state.Game.Rounds, state.Game.Index); err != nil {
		return err
	}
	waitForEnter()
	return nil
}

func (s *session) export(ctx context.Context) error {
	state, err := s.orch.Snapshot(ctx)
	if err != nil {
		return err
	}
	name, err := s.prompter.Ask("Export to file (.csv or .xlsx)", s.cfg.Storage.DefaultFile)
	if err != nil {
		return err
	}
	path, err := s.store.Save(name, state.Game.Rounds)
	if err != nil {
		return err
	}
	s.logger.Info("structure exported", "path", path, "rounds", len(state.Game.Rounds))
	pterm.Success.Printfln("Exported %d rounds to %s", len(state.Game.Rounds), path)
	return nil
}

func (s *session) importFile(ctx context.Context) error {
	name, err := s.pickFile()
	if err != nil {
		return err
	}
	rounds, err := s.store.Load(name)
	if err != nil {
		return err
	}
	if _, err := s.orch.Commit(ctx, rounds); err != nil {
		return err
	}
	s.logger.Info("structure imported", "file", name, "rounds", len(rounds))
	pterm.Success.Printfln("Imported %d rounds from %s", len(rounds), name)
	return nil
}

// pickFile offers the stored structures, or a free path when there are none.
func (s *session) pickFile() (string, error) {
	files, err := s.store.List()
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return s.prompter.Ask("Import from file", filepath.Join(s.store.Dir, s.cfg.Storage.DefaultFile))
	}
	return pterm.DefaultInteractiveSelect.
		WithDefaultText("Import from " + s.store.Dir).
		WithOptions(files).
		Show()
}

func waitForEnter() {
	_, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Press enter to return to the clock").Show()
}
