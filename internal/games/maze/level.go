// Package maze implements the first trial: escape a randomly generated
// maze, grabbing coins on the way to the exit.
package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/qbakra/escape-arcade/internal/config"
	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/level"
)

// Maze cells are drawn two screen cells wide and one tall so corridors
// look roughly square in a terminal.
const (
	cellW = 2.0
	cellH = 1.0
)

// playerScale is the player's size as a fraction of a maze cell. Slightly
// smaller than a corridor so the player can slide along walls.
const playerScale = 0.6

type coin struct {
	rect      core.Rect
	collected bool
}

// Level is the maze trial.
type Level struct {
	cfg  core.RuntimeConfig
	mcfg config.MazeConfig

	grid   *Grid
	player core.Rect
	coins  []coin
	exit   core.Rect
	score  int

	// Offsets centering the maze on screen; row 0 is the HUD.
	offX, offY float64

	outcome level.Outcome
}

// New creates the maze trial. Entities are built on Load.
func New(cfg core.RuntimeConfig, mcfg config.MazeConfig) *Level {
	return &Level{cfg: cfg, mcfg: mcfg}
}

func (l *Level) Name() string { return "The Maze" }

func (l *Level) Instructions() []string {
	return []string{
		"Find the exit in the bottom-right corner.",
		"Arrow keys or WASD to move.",
		"The exit stays shut until every coin is yours.",
	}
}

// Load builds the grid, scatters coins, and places the player at the
// entrance. Loading again produces a fresh maze.
func (l *Level) Load() {
	seed := l.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cols, rows := l.fitGrid()
	l.grid = NewGrid(cols, rows, rng)

	mazeW := float64(l.grid.Cols()) * cellW
	mazeH := float64(l.grid.Rows()) * cellH
	l.offX = (float64(l.cfg.ScreenW) - mazeW) / 2
	l.offY = 1 + (float64(l.cfg.ScreenH)-1-mazeH)/2

	l.player = l.cellRect(1, 1, playerScale)
	l.exit = l.cellRect(l.grid.Cols()-2, l.grid.Rows()-2, 1.0)

	l.coins = nil
	for r := 1; r < l.grid.Rows()-1; r++ {
		for c := 1; c < l.grid.Cols()-1; c++ {
			if l.grid.IsWall(c, r) {
				continue
			}
			if c == 1 && r == 1 {
				continue
			}
			if c == l.grid.Cols()-2 && r == l.grid.Rows()-2 {
				continue
			}
			if rng.Float64() < l.mcfg.CoinChance {
				l.coins = append(l.coins, coin{rect: l.cellRect(c, r, 0.4)})
			}
		}
	}

	l.score = 0
	l.outcome = level.Ongoing
}

// fitGrid shrinks the configured maze size so it fits the screen with a
// HUD row on top.
func (l *Level) fitGrid() (cols, rows int) {
	cols = l.mcfg.Cols
	rows = l.mcfg.Rows
	if max := int(float64(l.cfg.ScreenW) / cellW); cols > max {
		cols = max
	}
	if max := int(float64(l.cfg.ScreenH-1) / cellH); rows > max {
		rows = max
	}
	return cols, rows
}

// cellRect returns a rect of the given scale centered in a maze cell, in
// screen coordinates.
func (l *Level) cellRect(c, r int, scale float64) core.Rect {
	w := cellW * scale
	h := cellH * scale
	x := l.offX + float64(c)*cellW + (cellW-w)/2
	y := l.offY + float64(r)*cellH + (cellH-h)/2
	return core.NewRect(x, y, w, h)
}

func (l *Level) Unload() {
	l.grid = nil
	l.coins = nil
}

func (l *Level) Update(dt float64, in core.InputFrame) {
	if l.outcome != level.Ongoing {
		return
	}

	dx, dy := 0.0, 0.0
	if in.Has(core.ActionLeft) {
		dx -= l.mcfg.PlayerSpeed * cellW * dt
	}
	if in.Has(core.ActionRight) {
		dx += l.mcfg.PlayerSpeed * cellW * dt
	}
	if in.Has(core.ActionUp) {
		dy -= l.mcfg.PlayerSpeed * cellH * dt
	}
	if in.Has(core.ActionDown) {
		dy += l.mcfg.PlayerSpeed * cellH * dt
	}

	// Per-axis movement so the player slides along walls instead of
	// sticking to them.
	moved := l.player
	moved.X += dx
	if l.hitsWall(moved) {
		moved.X = l.player.X
	}
	moved.Y += dy
	if l.hitsWall(moved) {
		moved.Y = l.player.Y
	}
	moved.X = core.ClampF(moved.X, 0, float64(l.cfg.ScreenW)-moved.W)
	moved.Y = core.ClampF(moved.Y, 0, float64(l.cfg.ScreenH)-moved.H)
	l.player = moved

	for i := range l.coins {
		if !l.coins[i].collected && l.player.Overlaps(l.coins[i].rect) {
			l.coins[i].collected = true
			l.score++
		}
	}

	// The exit only counts once every coin is picked up. A maze that
	// spawned no coins opens the exit immediately.
	if l.player.Overlaps(l.exit) && l.score == len(l.coins) {
		l.outcome = level.Won
	}
}

// hitsWall reports whether the rect overlaps any wall cell.
func (l *Level) hitsWall(r core.Rect) bool {
	const eps = 1e-9
	minC := int((r.X - l.offX) / cellW)
	maxC := int((r.Right() - eps - l.offX) / cellW)
	minR := int((r.Y - l.offY) / cellH)
	maxR := int((r.Bottom() - eps - l.offY) / cellH)

	for rr := minR; rr <= maxR; rr++ {
		for cc := minC; cc <= maxC; cc++ {
			if l.grid.IsWall(cc, rr) {
				return true
			}
		}
	}
	return false
}

func (l *Level) Render(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("coins: %d/%d", l.score, len(l.coins)), core.ColorGold)

	for r := 0; r < l.grid.Rows(); r++ {
		for c := 0; c < l.grid.Cols(); c++ {
			if l.grid.IsWall(c, r) {
				x := int(l.offX + float64(c)*cellW)
				y := int(l.offY + float64(r)*cellH)
				dst.FillRect(x, y, int(cellW), int(cellH), '█', core.ColorBlue)
			}
		}
	}

	for _, co := range l.coins {
		if !co.collected {
			cx, cy := co.rect.Center()
			dst.SetCell(int(cx), int(cy), 'o', core.ColorGold)
		}
	}

	exitColor := core.ColorRed
	if l.score == len(l.coins) {
		exitColor = core.ColorGreen
	}
	dst.FillWorldRect(l.exit, '▓', exitColor)
	dst.FillWorldRect(l.player, '@', core.ColorYellow)
}

func (l *Level) Outcome() level.Outcome { return l.outcome }
