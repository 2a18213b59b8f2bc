// Package session implements the campaign state machine: title screen,
// active level, transition screens between levels, and the global game
// over / game won screens. The session is a pure steppable object so the
// whole flow is testable without a terminal.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/level"
)

// State identifies which screen the session is currently showing.
type State int

const (
	// StateTitle is the global title screen with the Escape and Suffer buttons.
	StateTitle State = iota
	// StatePlaying means a level is active and receiving input.
	StatePlaying
	// StateTransition is the between-levels screen naming the next level.
	StateTransition
	// StateGameOver is the global loss screen.
	StateGameOver
	// StateGameWon is the global victory screen.
	StateGameWon
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateTransition:
		return "transition"
	case StateGameOver:
		return "game_over"
	case StateGameWon:
		return "game_won"
	default:
		return "unknown"
	}
}

// sufferDuration is how long the taunt stays on the title screen.
const sufferDuration = 2.0

// Factory builds a fresh ordered set of campaign levels sized for the
// given runtime config. The session calls it every time a new run starts
// so levels never carry state between runs and always match the current
// playfield size.
type Factory func(cfg core.RuntimeConfig) []level.Level

// Session drives the campaign. It owns the level queue and the active
// level, advances them with Step, and draws the current screen with Render.
type Session struct {
	state   State
	queue   *level.Queue
	active  level.Level
	factory Factory

	cfg core.RuntimeConfig

	// Cached from the queue front when entering a transition, so the
	// transition screen never touches level internals.
	nextName         string
	nextInstructions []string

	sufferVisible bool
	sufferTimer   float64

	logger *log.Logger
}

// New creates a session on the title screen. The factory must not be nil;
// a nil logger disables logging.
func New(cfg core.RuntimeConfig, factory Factory, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		state:   StateTitle,
		factory: factory,
		cfg:     cfg,
		logger:  logger,
	}
}

// State returns the screen the session is currently on.
func (s *Session) State() State { return s.state }

// NextName returns the level name shown on the transition screen.
func (s *Session) NextName() string { return s.nextName }

// Remaining returns how many levels are still queued, including none.
func (s *Session) Remaining() int {
	if s.queue == nil {
		return 0
	}
	return s.queue.Len()
}

// Resize updates the session's notion of the screen size. Button hit areas
// follow the new size on the next frame.
func (s *Session) Resize(w, h int) {
	if w > 0 {
		s.cfg.ScreenW = w
	}
	if h > 0 {
		s.cfg.ScreenH = h
	}
}

// Step advances the session by dt seconds with this frame's input.
func (s *Session) Step(dt float64, in core.InputFrame) {
	switch s.state {
	case StateTitle:
		s.stepTitle(dt, in)
	case StatePlaying:
		s.stepPlaying(dt, in)
	case StateTransition:
		s.stepTransition(in)
	case StateGameOver, StateGameWon:
		if in.Has(core.ActionConfirm) {
			s.toTitle()
		}
	}
}

func (s *Session) stepTitle(dt float64, in core.InputFrame) {
	if s.sufferVisible {
		s.sufferTimer -= dt
		if s.sufferTimer <= 0 {
			s.sufferVisible = false
			s.sufferTimer = 0
		}
	}

	if in.Has(core.ActionConfirm) || in.ClickedIn(s.escapeButton()) {
		s.startRun()
		return
	}
	if in.ClickedIn(s.sufferButton()) {
		s.sufferVisible = true
		s.sufferTimer = sufferDuration
	}
}

// startRun builds the queue and drops straight into the first level; the
// transition screen only sits between levels.
func (s *Session) startRun() {
	levels := s.factory(s.cfg)
	s.queue = level.NewQueue(levels...)
	s.logger.Info("campaign started", "levels", s.queue.Len())
	if s.queue.Len() == 0 {
		s.state = StateGameWon
		return
	}
	s.active = s.queue.Pop()
	s.active.Load()
	s.state = StatePlaying
	s.logger.Info("level started", "name", s.active.Name())
}

// enterTransition caches the front level's name and instructions and shows
// the transition screen. The level itself stays queued until Ready.
func (s *Session) enterTransition() {
	next := s.queue.Peek()
	s.nextName = next.Name()
	s.nextInstructions = next.Instructions()
	s.state = StateTransition
	s.logger.Debug("transition", "next", s.nextName)
}

func (s *Session) stepTransition(in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.ClickedIn(s.readyButton()) {
		s.active = s.queue.Pop()
		s.active.Load()
		s.state = StatePlaying
		s.logger.Info("level started", "name", s.active.Name())
	}
}

func (s *Session) stepPlaying(dt float64, in core.InputFrame) {
	if s.active == nil {
		// Playing with no active level is a bug somewhere upstream; fail
		// into the loss screen instead of wedging the loop.
		s.logger.Error("playing state with no active level")
		s.state = StateGameOver
		return
	}

	s.active.Update(dt, in)

	switch s.active.Outcome() {
	case level.Ongoing:
		return
	case level.Lost:
		s.logger.Info("level lost", "name", s.active.Name())
		s.active.Unload()
		s.active = nil
		s.state = StateGameOver
	case level.Won:
		s.logger.Info("level won", "name", s.active.Name())
		s.active.Unload()
		s.active = nil
		if s.queue.Len() > 0 {
			s.enterTransition()
		} else {
			s.state = StateGameWon
		}
	}
}

func (s *Session) toTitle() {
	if s.active != nil {
		s.active.Unload()
		s.active = nil
	}
	s.queue = nil
	s.sufferVisible = false
	s.sufferTimer = 0
	s.state = StateTitle
}

// Render draws the current screen into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	switch s.state {
	case StateTitle:
		s.renderTitle(dst)
	case StatePlaying:
		if s.active != nil {
			s.active.Render(dst)
		}
	case StateTransition:
		s.renderTransition(dst)
	case StateGameOver:
		s.renderGameOver(dst)
	case StateGameWon:
		s.renderGameWon(dst)
	}
}
