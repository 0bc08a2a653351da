package poker

import "fmt"

// NewTimer returns a stopped timer loaded with the round's duration.
func NewTimer(r Round) Timer {
	return Timer{Remaining: r.Seconds(), Status: Stopped}
}

// Start begins the countdown from Stopped or Paused. Other states are left
// as they are.
func (t Timer) Start() Timer {
	if t.Status == Stopped || t.Status == Paused {
		t.Status = Running
	}
	return t
}

// Pause freezes a running countdown and keeps the remaining time.
func (t Timer) Pause() Timer {
	if t.Status == Running {
		t.Status = Paused
	}
	return t
}

// Reset reloads the countdown from r and stops it.
func (t Timer) Reset(r Round) Timer {
	return NewTimer(r)
}

// Toggle is the start/pause button. An expired timer is reset against r.
func (t Timer) Toggle(r Round) Timer {
	switch t.Status {
	case Stopped, Paused:
		return t.Start()
	case Running:
		return t.Pause()
	case Expired:
		return t.Reset(r)
	}
	return t
}

// Tick applies one elapsed second. Outside Running it is a no-op, so a tick
// delivered after a pause never decrements. The tick that reaches zero, or
// one that finds the timer already at zero, expires it and reports it: an
// N-second round expires after N ticks.
func (t Timer) Tick() (Timer, bool) {
	if t.Status != Running {
		return t, false
	}
	if t.Remaining > 0 {
		t.Remaining--
	}
	if t.Remaining == 0 {
		t.Status = Expired
		return t, true
	}
	return t, false
}

// Label is the caption of the start/pause button for the current status.
func (t Timer) Label() string {
	switch t.Status {
	case Running:
		return "Pause Timer"
	case Paused:
		return "Resume Timer"
	case Expired:
		return "Reset Timer"
	default:
		return "Start Timer"
	}
}

func (t Timer) String() string {
	if t.Status == Expired {
		return FormatClock(0)
	}
	return FormatClock(t.Remaining)
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds uint) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
