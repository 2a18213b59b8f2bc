// Package course implements the final trial: a platforming climb to the
// exit door, collecting every coin on the way.
package course

import (
	"fmt"

	"github.com/qbakra/escape-arcade/internal/config"
	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/level"
)

const (
	playerW = 4.0
	playerH = 2.0

	coinW = 2.0
	coinH = 1.0

	doorW = 5.0
	doorH = 4.0
)

type coin struct {
	rect      core.Rect
	collected bool
}

// Level is the obstacle course trial.
type Level struct {
	cfg  core.RuntimeConfig
	ccfg config.CourseConfig

	player    core.Rect
	vx, vy    float64
	onGround  bool
	obstacles []core.Rect
	coins     []coin
	door      core.Rect

	outcome level.Outcome
}

// New creates the course trial. Entities are built on Load.
func New(cfg core.RuntimeConfig, ccfg config.CourseConfig) *Level {
	return &Level{cfg: cfg, ccfg: ccfg}
}

func (l *Level) Name() string { return "The Final Climb" }

func (l *Level) Instructions() []string {
	return []string{
		"Collect every coin, then reach the door at the top.",
		"Left/right to run, space to jump.",
		"Falling off the bottom ends the run.",
	}
}

func (l *Level) Load() {
	w := float64(l.cfg.ScreenW)
	h := float64(l.cfg.ScreenH)

	l.obstacles = buildObstacles(w, h)
	l.player = core.NewRect(2, h-groundH-playerH, playerW, playerH)
	l.vx, l.vy = 0, 0
	l.onGround = false

	// Every obstacle thinner than the ground slab is a platform and
	// carries a coin above it.
	l.coins = nil
	for _, obs := range l.obstacles {
		if obs.H >= groundH {
			continue
		}
		cx, _ := obs.Center()
		l.coins = append(l.coins, coin{
			rect: core.NewRect(cx-coinW/2, obs.Y-coinH-1, coinW, coinH),
		})
	}

	// The door stands on the last authored platform, up by the corner.
	top := l.obstacles[len(l.obstacles)-1]
	cx, _ := top.Center()
	l.door = core.NewRect(cx-doorW/2, top.Y-doorH, doorW, doorH)

	l.outcome = level.Ongoing
}

func (l *Level) Unload() {
	l.obstacles = nil
	l.coins = nil
}

func (l *Level) Update(dt float64, in core.InputFrame) {
	if l.outcome != level.Ongoing {
		return
	}

	l.vx = 0
	if in.Has(core.ActionLeft) {
		l.vx = -l.ccfg.PlayerSpeed
	}
	if in.Has(core.ActionRight) {
		l.vx = l.ccfg.PlayerSpeed
	}
	if in.Has(core.ActionJump) && l.onGround {
		l.vy = -l.ccfg.JumpForce
	}
	l.vy += l.ccfg.Gravity * dt

	prev := l.player
	l.player.X += l.vx * dt
	l.player.Y += l.vy * dt
	l.player.X = core.ClampF(l.player.X, 0, float64(l.cfg.ScreenW)-l.player.W)

	l.onGround = false
	for _, obs := range l.obstacles {
		if l.player.Overlaps(obs) {
			l.resolveCollision(prev, obs)
		}
	}

	for i := range l.coins {
		if !l.coins[i].collected && l.player.Overlaps(l.coins[i].rect) {
			l.coins[i].collected = true
		}
	}

	if l.player.Y > float64(l.cfg.ScreenH) {
		l.outcome = level.Lost
		return
	}

	if l.player.Overlaps(l.door) && l.remainingCoins() == 0 {
		l.outcome = level.Won
	}
}

// resolveCollision pushes the player out of an obstacle along the axis it
// came from, using the previous frame's position to decide direction.
func (l *Level) resolveCollision(prev core.Rect, obs core.Rect) {
	switch {
	case prev.Bottom() <= obs.Y && l.vy > 0:
		// Landing from above.
		l.player.Y = obs.Y - l.player.H
		l.vy = 0
		l.onGround = true
	case prev.Y >= obs.Bottom() && l.vy < 0:
		// Head bump from below.
		l.player.Y = obs.Bottom()
		l.vy = 0
	case prev.Right() <= obs.X:
		l.player.X = obs.X - l.player.W
	case prev.X >= obs.Right():
		l.player.X = obs.Right()
	}
}

func (l *Level) remainingCoins() int {
	n := 0
	for _, c := range l.coins {
		if !c.collected {
			n++
		}
	}
	return n
}

func (l *Level) Render(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("coins left: %d", l.remainingCoins()), core.ColorGold)

	for i, obs := range l.obstacles {
		c := core.ColorGray
		if i == 0 {
			c = core.ColorBrown
		}
		dst.FillWorldRect(obs, '▒', c)
	}
	for _, co := range l.coins {
		if !co.collected {
			cx, cy := co.rect.Center()
			dst.SetCell(int(cx), int(cy), 'o', core.ColorGold)
		}
	}

	doorColor := core.ColorRed
	if l.remainingCoins() == 0 {
		doorColor = core.ColorGreen
	}
	dst.FillWorldRect(l.door, '▓', doorColor)
	dst.FillWorldRect(l.player, '@', core.ColorYellow)
}

func (l *Level) Outcome() level.Outcome { return l.outcome }
