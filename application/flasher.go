package application

// Flasher alternates on/off for a bounded number of cycles. A cycle is one
// on phase followed by one off phase.
type Flasher struct {
	left int
	on   bool
}

// NewFlasher returns an idle flasher that will run the given number of cycles.
func NewFlasher(cycles int) Flasher {
	return Flasher{left: cycles}
}

// Next moves to the following phase.
func (f Flasher) Next() Flasher {
	if f.on {
		f.on = false
		f.left--
		return f
	}
	if f.left > 0 {
		f.on = true
	}
	return f
}

// On reports whether the current phase is the highlighted one.
func (f Flasher) On() bool {
	return f.on
}

// Done reports whether every cycle has completed.
func (f Flasher) Done() bool {
	return f.left <= 0 && !f.on
}
