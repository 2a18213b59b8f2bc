// Package invaders implements the second trial: hold off a descending
// alien formation long enough to clear it out.
package invaders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/qbakra/escape-arcade/internal/config"
	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/level"
)

const (
	playerW = 5.0
	playerH = 1.0

	invaderW = 4.0
	invaderH = 2.0
	// Spacing between formation slots.
	slotW = 6.0
	slotH = 3.0

	// The formation reverses when it touches either margin.
	edgeMargin = 2.0
)

type invader struct {
	rect   core.Rect
	active bool
}

type bullet struct {
	rect    core.Rect
	vy      float64
	hostile bool
}

// Level is the invaders trial.
type Level struct {
	cfg  core.RuntimeConfig
	icfg config.InvadersConfig

	rng *rand.Rand

	player   core.Rect
	lives    int
	score    int
	cooldown float64

	invaders  []invader
	direction float64 // +1 right, -1 left
	moveTimer float64

	bullets []bullet

	outcome level.Outcome
}

// New creates the invaders trial. Entities are built on Load.
func New(cfg core.RuntimeConfig, icfg config.InvadersConfig) *Level {
	return &Level{cfg: cfg, icfg: icfg}
}

func (l *Level) Name() string { return "Invader Swarm" }

func (l *Level) Instructions() []string {
	return []string{
		"Shoot down every invader before they reach you.",
		"Left/right to move, space to fire.",
		fmt.Sprintf("You have %d lives. The swarm has none to spare.", l.icfg.Lives),
	}
}

func (l *Level) Load() {
	seed := l.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l.rng = rand.New(rand.NewSource(seed))

	w := float64(l.cfg.ScreenW)
	h := float64(l.cfg.ScreenH)
	l.player = core.NewRect(w/2-playerW/2, h-2, playerW, playerH)
	l.lives = l.icfg.Lives
	l.score = 0
	l.cooldown = 0

	l.invaders = nil
	formationW := float64(l.icfg.Cols-1)*slotW + invaderW
	startX := (w - formationW) / 2
	for r := 0; r < l.icfg.Rows; r++ {
		for c := 0; c < l.icfg.Cols; c++ {
			l.invaders = append(l.invaders, invader{
				rect: core.NewRect(
					startX+float64(c)*slotW,
					2+float64(r)*slotH,
					invaderW, invaderH,
				),
				active: true,
			})
		}
	}
	l.direction = 1
	l.moveTimer = 0
	l.bullets = nil
	l.outcome = level.Ongoing
}

func (l *Level) Unload() {
	l.invaders = nil
	l.bullets = nil
}

func (l *Level) Update(dt float64, in core.InputFrame) {
	if l.outcome != level.Ongoing {
		return
	}

	l.updatePlayer(dt, in)
	l.updateFormation(dt)
	l.updateInvaderFire(dt)
	l.updateBullets(dt)

	// A swarm that descends to the player's row ends the run outright.
	for _, inv := range l.invaders {
		if inv.active && inv.rect.Bottom() >= l.player.Y {
			l.outcome = level.Lost
			return
		}
	}

	// Running out of lives loses even on the frame the last invader dies.
	if l.lives <= 0 {
		l.outcome = level.Lost
		return
	}

	if l.activeCount() == 0 {
		l.outcome = level.Won
	}
}

func (l *Level) updatePlayer(dt float64, in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		l.player.X -= l.icfg.PlayerSpeed * dt
	}
	if in.Has(core.ActionRight) {
		l.player.X += l.icfg.PlayerSpeed * dt
	}
	l.player.X = core.ClampF(l.player.X, 0, float64(l.cfg.ScreenW)-l.player.W)

	l.cooldown -= dt
	if l.cooldown < 0 {
		l.cooldown = 0
	}
	if in.Has(core.ActionJump) && l.cooldown == 0 {
		cx, _ := l.player.Center()
		l.bullets = append(l.bullets, bullet{
			rect: core.NewRect(cx, l.player.Y-1, 1, 1),
			vy:   -l.icfg.BulletSpeed,
		})
		l.cooldown = l.icfg.FireCooldown
	}
}

// updateFormation steps the whole formation sideways on a fixed interval,
// reversing and descending one step when an edge invader touches a margin.
func (l *Level) updateFormation(dt float64) {
	l.moveTimer += dt
	if l.moveTimer < l.icfg.MoveInterval {
		return
	}
	l.moveTimer -= l.icfg.MoveInterval

	dx := l.direction * l.icfg.StepSize
	atEdge := false
	for _, inv := range l.invaders {
		if !inv.active {
			continue
		}
		nx := inv.rect.X + dx
		if nx < edgeMargin || nx+inv.rect.W > float64(l.cfg.ScreenW)-edgeMargin {
			atEdge = true
			break
		}
	}

	if atEdge {
		l.direction = -l.direction
		for i := range l.invaders {
			l.invaders[i].rect.Y += l.icfg.Descent
		}
		return
	}
	for i := range l.invaders {
		l.invaders[i].rect.X += dx
	}
}

// updateInvaderFire rolls each active invader's fire chance for this frame.
func (l *Level) updateInvaderFire(dt float64) {
	for _, inv := range l.invaders {
		if !inv.active {
			continue
		}
		if l.rng.Float64() < l.icfg.FireRate*dt {
			cx, _ := inv.rect.Center()
			l.bullets = append(l.bullets, bullet{
				rect:    core.NewRect(cx, inv.rect.Bottom(), 1, 1),
				vy:      l.icfg.BulletSpeed,
				hostile: true,
			})
		}
	}
}

func (l *Level) updateBullets(dt float64) {
	kept := l.bullets[:0]
	for _, b := range l.bullets {
		b.rect.Y += b.vy * dt

		if b.rect.Bottom() < 0 || b.rect.Y > float64(l.cfg.ScreenH) {
			continue
		}

		if b.hostile {
			if b.rect.Overlaps(l.player) {
				l.lives--
				continue
			}
		} else if hit := l.hitInvader(b.rect); hit {
			l.score += l.icfg.ScorePerKill
			continue
		}
		kept = append(kept, b)
	}
	l.bullets = kept
}

// hitInvader deactivates the first active invader the rect overlaps.
func (l *Level) hitInvader(r core.Rect) bool {
	for i := range l.invaders {
		if l.invaders[i].active && r.Overlaps(l.invaders[i].rect) {
			l.invaders[i].active = false
			return true
		}
	}
	return false
}

func (l *Level) activeCount() int {
	n := 0
	for _, inv := range l.invaders {
		if inv.active {
			n++
		}
	}
	return n
}

func (l *Level) Render(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("score: %d", l.score), core.ColorWhite)
	lives := fmt.Sprintf("lives: %d", l.lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorRed)

	for _, inv := range l.invaders {
		if inv.active {
			dst.FillWorldRect(inv.rect, '▼', core.ColorGreen)
		}
	}
	for _, b := range l.bullets {
		c := core.ColorCyan
		r := '|'
		if b.hostile {
			c = core.ColorRed
			r = '!'
		}
		dst.FillWorldRect(b.rect, r, c)
	}
	dst.FillWorldRect(l.player, '▲', core.ColorYellow)
}

func (l *Level) Outcome() level.Outcome { return l.outcome }
