package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/urfave/cli/v2"

	"github.com/luca-patrignani/poker-time/config"
	"github.com/luca-patrignani/poker-time/domain/poker"
	"github.com/luca-patrignani/poker-time/roundfile"
)

const logFileName = "pokertime.log"

// app carries what every command needs once the global flags are parsed.
type app struct {
	cfg    *config.Config
	store  *roundfile.Store
	logger *slog.Logger
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		pterm.Warning.Printfln("failed to load .env: %v", err)
	}

	a := &app{}
	cliApp := &cli.App{
		Name:  "pokertime",
		Usage: "blind timer for poker tournaments",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"POKERTIME_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level",
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "start the live clock",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "structure to load (.csv or .xlsx)"}},
				Action: a.runClock,
			},
			{
				Name:      "new",
				Usage:     "create a structure with the editor and save it",
				ArgsUsage: "[file]",
				Action:    a.newStructure,
			},
			{
				Name:      "edit",
				Usage:     "edit a saved structure in place",
				ArgsUsage: "<file>",
				Action:    a.editStructure,
			},
			{
				Name:      "show",
				Usage:     "print the rounds of a structure",
				ArgsUsage: "<file>",
				Action:    a.showStructure,
			},
			{
				Name:      "convert",
				Usage:     "convert a structure between csv and xlsx",
				ArgsUsage: "<source> <destination>",
				Action:    a.convertStructure,
			},
			{
				Name:   "list",
				Usage:  "list saved structures",
				Action: a.listStructures,
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	store, err := roundfile.NewStore(cfg.Storage.Dir)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.store = store
	a.logger = newLogger(cfg.Log.Level, nil)
	return nil
}

func (a *app) runClock(c *cli.Context) error {
	if !isTerminal() {
		return errNotTerminal
	}
	rounds, err := a.initialRounds(c.String("file"))
	if err != nil {
		return err
	}

	// the area owns stdout while the clock runs
	logFile, err := os.OpenFile(filepath.Join(a.store.Dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := newLogger(a.cfg.Log.Level, logFile)

	printBanner()
	s, err := newSession(a.cfg, a.store, logger, rounds)
	if err != nil {
		return err
	}
	return s.run(c.Context)
}

// initialRounds loads the requested file, else the default structure, else
// asks for one with the editor.
func (a *app) initialRounds(file string) (poker.Sequence, error) {
	if file != "" {
		return a.store.Load(file)
	}
	rounds, err := a.store.Load(a.cfg.Storage.DefaultFile)
	if err == nil && len(rounds) > 0 {
		a.logger.Info("loaded default structure", "file", a.cfg.Storage.DefaultFile, "rounds", len(rounds))
		return rounds, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("default structure not loaded", "error", err)
	}
	pterm.Info.Println("No structure found, let's create one.")
	rounds, err = editRounds(ptermPrompter{}, nil)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, poker.ErrNoRounds
	}
	return rounds, nil
}

func (a *app) newStructure(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		name = a.cfg.Storage.DefaultFile
	}
	rounds, err := editRounds(ptermPrompter{}, nil)
	if err != nil {
		return err
	}
	return a.save(name, rounds)
}

func (a *app) editStructure(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return errors.New("edit needs a file")
	}
	current, err := a.store.Load(name)
	if err != nil {
		return err
	}
	rounds, err := editRounds(ptermPrompter{}, current)
	if err != nil {
		return err
	}
	return a.save(name, rounds)
}

func (a *app) showStructure(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		name = a.cfg.Storage.DefaultFile
	}
	rounds, err := a.store.Load(name)
	if err != nil {
		return err
	}
	return printOverview(rounds, -1)
}

func (a *app) convertStructure(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("convert needs a source and a destination")
	}
	rounds, err := a.store.Load(c.Args().Get(0))
	if err != nil {
		return err
	}
	return a.save(c.Args().Get(1), rounds)
}

func (a *app) listStructures(c *cli.Context) error {
	files, err := a.store.List()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		pterm.Info.Printfln("No structures in %s", a.store.Dir)
		return nil
	}
	items := make([]pterm.BulletListItem, len(files))
	for i, f := range files {
		items[i] = pterm.BulletListItem{Level: 0, Text: f}
	}
	pterm.Info.Println(a.store.Dir)
	return pterm.DefaultBulletList.WithItems(items).Render()
}

func (a *app) save(name string, rounds poker.Sequence) error {
	path, err := a.store.Save(name, rounds)
	if err != nil {
		return err
	}
	a.logger.Info("structure saved", "path", path, "rounds", len(rounds))
	pterm.Success.Printfln("Saved %d rounds to %s", len(rounds), path)
	return nil
}

func printBanner() {
	_ = pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Poker", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Time", pterm.FgDarkGray.ToStyle()),
	).Render()
}
