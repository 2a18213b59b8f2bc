// Package level defines the contract every mini-game level implements and
// the queue that sequences them. Levels are pure simulations: the platform
// feeds them input frames and elapsed time, and they draw into a screen
// buffer.
package level

import "github.com/qbakra/escape-arcade/internal/core"

// Outcome is the tri-state result of a level. Whether "complete" means win
// or loss is level-specific, so every level reports it through the shared
// contract and the session never needs concrete-type knowledge.
type Outcome int

const (
	// Ongoing means the level is still being played.
	Ongoing Outcome = iota
	// Won means the level finished and the player met its win condition.
	Won
	// Lost means the level finished and the player failed it.
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Level is the common contract of the four campaign mini-games. A level
// owns all entities needed for its own simulation and exposes nothing to
// the outside except its name, its instructions, and its outcome.
//
// Lifecycle: constructed once at queue-build time, Load (re)initializes
// its entities, Update/Render run each frame while active, Unload releases
// everything. No entity outlives Unload.
type Level interface {
	// Name returns the display name shown on the transition screen.
	Name() string

	// Instructions returns the how-to-play lines for the transition screen.
	Instructions() []string

	// Load (re)initializes the level's internal entities.
	Load()

	// Unload releases the level's entities.
	Unload()

	// Update advances the simulation by dt seconds using this frame's input.
	Update(dt float64, in core.InputFrame)

	// Render draws the current level state into the screen buffer.
	Render(dst *core.Screen)

	// Outcome reports whether the level is ongoing, won, or lost.
	Outcome() Outcome
}
