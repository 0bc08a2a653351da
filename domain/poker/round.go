package poker

import "fmt"

// NewRound builds the round that sits at the given 1-based position.
func NewRound(number, minutes, smallBlind, bigBlind uint) Round {
	return Round{
		Number:     number,
		Minutes:    minutes,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
	}
}

// At returns the round at index i. ok is false when i is out of range,
// which covers reading index 0 of an empty sequence.
func (s Sequence) At(i int) (r Round, ok bool) {
	if i < 0 || i >= len(s) {
		return Round{}, false
	}
	return s[i], true
}

// Last returns the index of the final round, or -1 for an empty sequence.
func (s Sequence) Last() int {
	return len(s) - 1
}

// Validate verifies that rounds are numbered 1..N in order.
func (s Sequence) Validate() error {
	for i, r := range s {
		if r.Number != uint(i+1) {
			return fmt.Errorf("round at position %d is numbered %d, expected %d", i+1, r.Number, i+1)
		}
	}
	return nil
}

// Clone returns a copy that does not share the backing array.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// TotalMinutes is the scheduled length of the whole structure.
func (s Sequence) TotalMinutes() uint {
	var total uint
	for _, r := range s {
		total += r.Minutes
	}
	return total
}
