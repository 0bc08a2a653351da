package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/luca-patrignani/poker-time/domain/poker"
)

// Renderer draws the clock. It is only ever called from the orchestrator
// loop.
type Renderer interface {
	Render(view poker.View, ok bool)
	Flash(on bool)
}

// CommandType enumerates the user commands the loop accepts.
type CommandType int

const (
	CmdToggle CommandType = iota
	CmdAdvance
	CmdRestart
	CmdResetTimer
	CmdCommit
	CmdSnapshot
)

func (c CommandType) String() string {
	switch c {
	case CmdToggle:
		return "toggle"
	case CmdAdvance:
		return "advance"
	case CmdRestart:
		return "restart"
	case CmdResetTimer:
		return "reset_timer"
	case CmdCommit:
		return "commit"
	case CmdSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// Command is a request for the loop. Rounds is only read by CmdCommit.
type Command struct {
	Type   CommandType
	Rounds poker.Sequence
	reply  chan poker.State
}

// GameOrchestrator owns the game state. Run is the only goroutine that reads
// or writes it; everything else goes through Do.
type GameOrchestrator struct {
	clock         clockwork.Clock
	renderer      Renderer
	logger        *slog.Logger
	sessionID     string
	tick          time.Duration
	flashCycles   int
	flashInterval time.Duration
	commands      chan Command

	state       poker.State
	ticker      clockwork.Ticker
	flasher     Flasher
	flashTicker clockwork.Ticker
}

// Option customizes a GameOrchestrator at construction.
type Option func(GameOrchestrator) GameOrchestrator

// NewGameOrchestrator wraps an initial state. Defaults: real clock, one
// second ticks, ten flash cycles every 500ms.
func NewGameOrchestrator(state poker.State, renderer Renderer, opts ...Option) *GameOrchestrator {
	o := GameOrchestrator{
		clock:         clockwork.NewRealClock(),
		renderer:      renderer,
		logger:        slog.Default(),
		sessionID:     uuid.New().String()[:8],
		tick:          time.Second,
		flashCycles:   10,
		flashInterval: 500 * time.Millisecond,
		commands:      make(chan Command),
		state:         state,
	}
	for _, opt := range opts {
		o = opt(o)
	}
	o.logger = o.logger.With("session", o.sessionID)
	return &o
}

func WithClock(clock clockwork.Clock) Option {
	return func(o GameOrchestrator) GameOrchestrator {
		o.clock = clock
		return o
	}
}

func WithTick(tick time.Duration) Option {
	return func(o GameOrchestrator) GameOrchestrator {
		o.tick = tick
		return o
	}
}

func WithFlash(cycles int, interval time.Duration) Option {
	return func(o GameOrchestrator) GameOrchestrator {
		o.flashCycles = cycles
		o.flashInterval = interval
		return o
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o GameOrchestrator) GameOrchestrator {
		o.logger = logger
		return o
	}
}

// Run renders the initial state and then serves commands and ticks until
// ctx is cancelled.
func (o *GameOrchestrator) Run(ctx context.Context) error {
	o.logger.Info("clock started", "rounds", len(o.state.Game.Rounds))
	o.render()
	defer func() {
		o.stopTicker()
		o.stopFlash()
		o.logger.Info("clock stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-o.commands:
			o.apply(cmd)
			cmd.reply <- o.state
		case <-chanOf(o.ticker):
			o.onTick()
		case <-chanOf(o.flashTicker):
			o.onFlash()
		}
	}
}

// Do hands cmd to the loop and waits until it has been applied.
func (o *GameOrchestrator) Do(ctx context.Context, cmd Command) (poker.State, error) {
	cmd.reply = make(chan poker.State, 1)
	select {
	case o.commands <- cmd:
	case <-ctx.Done():
		return poker.State{}, fmt.Errorf("command %s not delivered: %w", cmd.Type, ctx.Err())
	}
	select {
	case s := <-cmd.reply:
		return s, nil
	case <-ctx.Done():
		return poker.State{}, fmt.Errorf("command %s not acknowledged: %w", cmd.Type, ctx.Err())
	}
}

func (o *GameOrchestrator) Toggle(ctx context.Context) (poker.State, error) {
	return o.Do(ctx, Command{Type: CmdToggle})
}

func (o *GameOrchestrator) Advance(ctx context.Context) (poker.State, error) {
	return o.Do(ctx, Command{Type: CmdAdvance})
}

func (o *GameOrchestrator) Restart(ctx context.Context) (poker.State, error) {
	return o.Do(ctx, Command{Type: CmdRestart})
}

func (o *GameOrchestrator) ResetTimer(ctx context.Context) (poker.State, error) {
	return o.Do(ctx, Command{Type: CmdResetTimer})
}

func (o *GameOrchestrator) Commit(ctx context.Context, rounds poker.Sequence) (poker.State, error) {
	return o.Do(ctx, Command{Type: CmdCommit, Rounds: rounds})
}

func (o *GameOrchestrator) Snapshot(ctx context.Context) (poker.State, error) {
	return o.Do(ctx, Command{Type: CmdSnapshot})
}

// apply runs one command. The expiry flash is cancelled before the state
// changes so a stale flash phase never draws over the reset clock.
func (o *GameOrchestrator) apply(cmd Command) {
	switch cmd.Type {
	case CmdToggle:
		if o.state.Timer.Status == poker.Expired {
			o.stopFlash()
		}
		o.state = o.state.Toggle()
	case CmdAdvance:
		o.stopFlash()
		o.state = o.state.Advance()
	case CmdRestart:
		o.stopFlash()
		o.state = o.state.Restart()
	case CmdResetTimer:
		o.stopFlash()
		o.state = o.state.ResetTimer()
	case CmdCommit:
		o.stopFlash()
		o.state = o.state.Commit(cmd.Rounds)
	case CmdSnapshot:
		return
	default:
		o.logger.Warn("unknown command", "type", int(cmd.Type))
		return
	}
	o.syncTicker()
	o.logger.Debug("command applied",
		"command", cmd.Type.String(),
		"round_index", o.state.Game.Index,
		"timer", o.state.Timer.Status.String(),
		"remaining", o.state.Timer.Remaining,
	)
	o.render()
}

func (o *GameOrchestrator) onTick() {
	var expired bool
	o.state, expired = o.state.Tick()
	if expired {
		o.syncTicker()
		o.logger.Info("round time expired", "round_index", o.state.Game.Index)
		o.startFlash()
	}
	o.render()
}

// syncTicker keeps the countdown ticker alive exactly while the timer runs.
func (o *GameOrchestrator) syncTicker() {
	running := o.state.Timer.Status == poker.Running
	switch {
	case running && o.ticker == nil:
		o.ticker = o.clock.NewTicker(o.tick)
	case !running && o.ticker != nil:
		o.stopTicker()
	}
}

func (o *GameOrchestrator) stopTicker() {
	if o.ticker != nil {
		o.ticker.Stop()
		o.ticker = nil
	}
}

func (o *GameOrchestrator) startFlash() {
	if o.flashCycles <= 0 {
		return
	}
	o.flasher = NewFlasher(o.flashCycles).Next()
	o.flashTicker = o.clock.NewTicker(o.flashInterval)
	o.renderer.Flash(o.flasher.On())
}

func (o *GameOrchestrator) onFlash() {
	o.flasher = o.flasher.Next()
	o.renderer.Flash(o.flasher.On())
	if o.flasher.Done() {
		o.stopFlash()
	}
}

func (o *GameOrchestrator) stopFlash() {
	if o.flashTicker != nil {
		o.flashTicker.Stop()
		o.flashTicker = nil
	}
	if o.flasher.On() {
		o.renderer.Flash(false)
	}
	o.flasher = Flasher{}
}

func (o *GameOrchestrator) render() {
	view, ok := o.state.View()
	o.renderer.Render(view, ok)
}

func chanOf(t clockwork.Ticker) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.Chan()
}
