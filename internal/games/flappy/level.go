// Package flappy implements the third trial: flap a bird through pipe
// gaps until the score target is met, with a health pool instead of
// one-hit deaths.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/qbakra/escape-arcade/internal/config"
	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/level"
)

// birdRadius is in vertical cells; the renderer widens it for the
// terminal cell aspect.
const birdRadius = 1.0

// mode is the level's internal phase.
type mode int

const (
	modeMenu mode = iota
	modePlaying
	modeLost
	modeWon
)

// Level is the flappy trial.
type Level struct {
	cfg  core.RuntimeConfig
	fcfg config.FlappyConfig

	rng *rand.Rand

	mode   mode
	birdX  float64
	birdY  float64
	birdVY float64
	health int
	score  int
	pipes  []Pipe

	flashTimer float64 // brief red flash after taking damage
}

// New creates the flappy trial. Entities are built on Load.
func New(cfg core.RuntimeConfig, fcfg config.FlappyConfig) *Level {
	return &Level{cfg: cfg, fcfg: fcfg}
}

func (l *Level) Name() string { return "Flappy Gauntlet" }

func (l *Level) Instructions() []string {
	return []string{
		fmt.Sprintf("Pass %d pipes to clear the gauntlet.", l.fcfg.WinScore),
		"Space to flap. Gravity does the rest.",
		"Crashing costs health, not the run. Usually.",
	}
}

func (l *Level) Load() {
	seed := l.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l.rng = rand.New(rand.NewSource(seed))

	l.mode = modeMenu
	l.health = l.fcfg.MaxHealth
	l.score = 0
	l.flashTimer = 0
	l.resetField()
}

// resetField repositions the bird and rebuilds the two starting pipes.
// Used on load and after every crash.
func (l *Level) resetField() {
	w := float64(l.cfg.ScreenW)
	h := float64(l.cfg.ScreenH)
	l.birdX = w / 4
	l.birdY = h / 2
	l.birdVY = 0
	l.pipes = []Pipe{
		newPipe(w, l.fcfg.GapHeight, h, l.rng),
		newPipe(w+l.fcfg.PipeSpacing, l.fcfg.GapHeight, h, l.rng),
	}
}

func (l *Level) Unload() {
	l.pipes = nil
}

func (l *Level) Update(dt float64, in core.InputFrame) {
	switch l.mode {
	case modeMenu:
		if in.Has(core.ActionJump) {
			l.mode = modePlaying
			l.birdVY = l.fcfg.JumpVelocity
		}
	case modePlaying:
		l.updatePlaying(dt, in)
	}
}

func (l *Level) updatePlaying(dt float64, in core.InputFrame) {
	if l.flashTimer > 0 {
		l.flashTimer -= dt
	}

	if in.Has(core.ActionJump) {
		l.birdVY = l.fcfg.JumpVelocity
	}
	l.birdVY += l.fcfg.Gravity * dt
	l.birdY += l.birdVY * dt

	// The bird bounces off the screen edges instead of dying there;
	// pipes are the only real hazard.
	h := float64(l.cfg.ScreenH)
	if l.birdY < birdRadius*1.5 {
		l.birdY = birdRadius * 1.5
		l.birdVY = 0
	}
	if l.birdY > h-birdRadius*1.5 {
		l.birdY = h - birdRadius*1.5
		l.birdVY = 0
	}

	l.scrollPipes(dt)

	if l.birdHitsPipe() {
		l.takeDamage()
	}

	// The win check runs last: reaching the target on the same frame as a
	// fatal crash still wins.
	if l.score >= l.fcfg.WinScore {
		l.mode = modeWon
	}
}

func (l *Level) scrollPipes(dt float64) {
	w := float64(l.cfg.ScreenW)
	h := float64(l.cfg.ScreenH)

	kept := l.pipes[:0]
	for _, p := range l.pipes {
		p.X -= l.fcfg.PipeSpeed * dt

		// A pipe scores once, when its trailing edge clears the bird.
		if !p.scored && p.X+l.fcfg.PipeWidth < l.birdX-birdRadius {
			p.scored = true
			l.score++
		}

		if p.X+l.fcfg.PipeWidth < 0 {
			continue
		}
		kept = append(kept, p)
	}
	l.pipes = kept

	// Keep the gauntlet topped up: spawn when the rearmost pipe has
	// scrolled a full spacing onto the screen.
	rearmost := -1.0
	for _, p := range l.pipes {
		if p.X > rearmost {
			rearmost = p.X
		}
	}
	if rearmost < w-l.fcfg.PipeSpacing {
		l.pipes = append(l.pipes, newPipe(w, l.fcfg.GapHeight, h, l.rng))
	}
}

func (l *Level) birdHitsPipe() bool {
	h := float64(l.cfg.ScreenH)
	for _, p := range l.pipes {
		if core.CircleOverlapsRect(l.birdX, l.birdY, birdRadius, p.TopRect(l.fcfg.PipeWidth, l.fcfg.GapHeight)) {
			return true
		}
		if core.CircleOverlapsRect(l.birdX, l.birdY, birdRadius, p.BottomRect(l.fcfg.PipeWidth, l.fcfg.GapHeight, h)) {
			return true
		}
	}
	return false
}

// takeDamage applies crash damage and soft-resets the field, keeping the
// score. Running out of health ends the level.
func (l *Level) takeDamage() {
	l.health -= l.fcfg.Damage
	if l.health <= 0 {
		l.health = 0
		l.mode = modeLost
		return
	}
	l.flashTimer = 0.3
	l.resetField()
}

func (l *Level) Render(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("score: %d/%d", l.score, l.fcfg.WinScore), core.ColorWhite)
	hp := fmt.Sprintf("health: %d", l.health)
	dst.DrawTextColored(dst.Width()-len(hp)-1, 0, hp, core.ColorGreen)

	h := float64(l.cfg.ScreenH)
	for _, p := range l.pipes {
		dst.FillWorldRect(p.TopRect(l.fcfg.PipeWidth, l.fcfg.GapHeight), '█', core.ColorGreen)
		dst.FillWorldRect(p.BottomRect(l.fcfg.PipeWidth, l.fcfg.GapHeight, h), '█', core.ColorGreen)
	}

	birdColor := core.ColorYellow
	if l.flashTimer > 0 {
		birdColor = core.ColorRed
	}
	dst.DrawCircle(l.birdX, l.birdY, birdRadius, '●', birdColor)

	if l.mode == modeMenu {
		dst.DrawTextCentered(l.cfg.ScreenH/2+4, "press space to start flapping", core.ColorCyan)
	}
}

func (l *Level) Outcome() level.Outcome {
	switch l.mode {
	case modeWon:
		return level.Won
	case modeLost:
		return level.Lost
	default:
		return level.Ongoing
	}
}
