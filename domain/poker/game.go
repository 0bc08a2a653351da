package poker

// NewGame places the cursor on the first round. A game needs at least one
// round to display, so an empty sequence is rejected here.
func NewGame(rounds Sequence) (Game, error) {
	if len(rounds) == 0 {
		return Game{}, ErrNoRounds
	}
	return Game{Rounds: rounds.Clone(), Index: 0}, nil
}

// Current returns the round under the cursor.
func (g Game) Current() (Round, bool) {
	return g.Rounds.At(g.Index)
}

// Next returns the round after the cursor, if any.
func (g Game) Next() (Round, bool) {
	return g.Rounds.At(g.Index + 1)
}

// IsLast reports whether the cursor is on the final round.
func (g Game) IsLast() bool {
	return g.Index >= g.Rounds.Last()
}

// Advance moves to the next round. The last round is sticky: advancing from
// it leaves the cursor where it is.
func (g Game) Advance() Game {
	if !g.IsLast() {
		g.Index++
	}
	return g
}

// Restart moves the cursor back to the first round.
func (g Game) Restart() Game {
	g.Index = 0
	return g
}

// Replace swaps in a new sequence. The cursor keeps its index when it is
// still valid and is clamped to the last round otherwise.
func (g Game) Replace(rounds Sequence) Game {
	g.Rounds = rounds.Clone()
	g.Index = clamp(g.Index, len(rounds))
	return g
}

func clamp(index, length int) int {
	if index > length-1 {
		index = length - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
