// Package poker implements the domain logic of a poker tournament clock:
// the blind structure, the cursor over it and the round countdown.
//
// # Core Types
//
// Round: One level of the tournament with its duration in minutes and its
// small and big blind.
//
// Sequence: The ordered list of rounds that defines the tournament structure.
//
// Game: The cursor over a Sequence.
//
// Timer: The countdown of the active round and its status.
//
// State: A Game and a Timer moving together. Every transition is a value
// method returning a new State, so the caller owns scheduling and rendering.
//
// # Game Flow
//
// A timer progresses Stopped → Running ⇄ Paused, and Running → Expired once
// the countdown has been at zero for one tick. Rounds never advance on their
// own: Advance and Restart move the cursor and reset the timer to the new
// round's duration.
//
// # Editing
//
// Draft collects raw editor input. Committing it is lenient:
// anything that does not parse becomes a zero-valued round instead of
// rejecting the whole edit.
package poker
