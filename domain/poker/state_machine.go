package poker

// NewState starts a game on the first round with a stopped timer.
func NewState(rounds Sequence) (State, error) {
	g, err := NewGame(rounds)
	if err != nil {
		return State{}, err
	}
	r, _ := g.Current()
	return State{Game: g, Timer: NewTimer(r)}, nil
}

// current is the active round, or the zero round for an empty sequence so
// the timer resets to 0:00 instead of reading out of bounds.
func (s State) current() Round {
	r, _ := s.Game.Current()
	return r
}

// Advance moves to the next round and resets the timer, even when the cursor
// is already on the last round.
func (s State) Advance() State {
	s.Game = s.Game.Advance()
	s.Timer = s.Timer.Reset(s.current())
	return s
}

// Restart goes back to the first round and resets the timer.
func (s State) Restart() State {
	s.Game = s.Game.Restart()
	s.Timer = s.Timer.Reset(s.current())
	return s
}

// ResetTimer reloads the countdown of the active round and stops it.
func (s State) ResetTimer() State {
	s.Timer = s.Timer.Reset(s.current())
	return s
}

// Toggle starts, pauses, resumes or, once expired, resets the timer. With no
// round under the cursor there is nothing to time and the state is unchanged.
func (s State) Toggle() State {
	if _, ok := s.Game.Current(); !ok {
		return s
	}
	s.Timer = s.Timer.Toggle(s.current())
	return s
}

// Tick applies one elapsed second and reports whether the timer expired on it.
func (s State) Tick() (State, bool) {
	var expired bool
	s.Timer, expired = s.Timer.Tick()
	return s, expired
}

// Commit replaces the sequence, clamps the cursor into it and refreshes the
// timer against whatever round now sits under the cursor.
func (s State) Commit(rounds Sequence) State {
	s.Game = s.Game.Replace(rounds)
	s.Timer = s.Timer.Reset(s.current())
	return s
}

// View derives the display values. ok is false when there is no round to show.
func (s State) View() (View, bool) {
	r, ok := s.Game.Current()
	if !ok {
		return View{Clock: s.Timer.String(), Status: s.Timer.Status, Label: s.Timer.Label()}, false
	}
	next, hasNext := s.Game.Next()
	return View{
		Round:      r,
		Clock:      s.Timer.String(),
		Status:     s.Timer.Status,
		Label:      s.Timer.Label(),
		Next:       next,
		HasNext:    hasNext,
		RoundCount: len(s.Game.Rounds),
	}, true
}
