package poker

import "errors"

// ErrNoRounds is returned when a game is started on an empty sequence.
var ErrNoRounds = errors.New("sequence has no rounds")

// Round is a single level of the tournament.
type Round struct {
	Number     uint // 1-based position in the sequence
	Minutes    uint
	SmallBlind uint
	BigBlind   uint
}

// Seconds returns the countdown length of the round.
func (r Round) Seconds() uint {
	return r.Minutes * 60
}

// Sequence is the ordered list of rounds, insertion order is play order.
type Sequence []Round

type TimerStatus int

const (
	Stopped TimerStatus = iota
	Running
	Paused
	Expired
)

func (s TimerStatus) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Timer is the countdown of the active round. Remaining is in seconds and
// only decreases while Status is Running.
type Timer struct {
	Remaining uint
	Status    TimerStatus
}

// Game is the cursor over a Sequence. Index is always a valid index of
// Rounds unless Rounds is empty, in which case it is 0.
type Game struct {
	Rounds Sequence
	Index  int
}

// State pairs the cursor with the countdown of the round it points at.
type State struct {
	Game  Game
	Timer Timer
}

// View is what a display needs to draw the clock.
type View struct {
	Round      Round
	Clock      string
	Status     TimerStatus
	Label      string
	Next       Round
	HasNext    bool
	RoundCount int
}
