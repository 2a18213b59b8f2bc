package course

import (
	"testing"

	"github.com/qbakra/escape-arcade/internal/config"
	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/level"
)

const dt = 1.0 / 60.0

func testLevel() *Level {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	ccfg := config.CourseConfig{PlayerSpeed: 20, JumpForce: 21, Gravity: 43}
	l := New(cfg, ccfg)
	l.Load()
	return l
}

func idle() core.InputFrame { return core.NewInputFrame() }

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestLoadBuildsCourse(t *testing.T) {
	l := testLevel()
	if len(l.obstacles) != len(platformLayout)+1 {
		t.Errorf("obstacles = %d, want %d platforms plus ground", len(l.obstacles), len(platformLayout)+1)
	}
	if len(l.coins) != len(platformLayout) {
		t.Errorf("coins = %d, want one per platform", len(l.coins))
	}
	if l.Outcome() != level.Ongoing {
		t.Errorf("fresh level outcome = %v", l.Outcome())
	}
}

func TestTallTerminalKeepsCoins(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 200, ScreenH: 120, TickRate: 60, Seed: 1}
	ccfg := config.CourseConfig{PlayerSpeed: 20, JumpForce: 21, Gravity: 43}
	l := New(cfg, ccfg)
	l.Load()

	for i, obs := range l.obstacles[1:] {
		if obs.H >= groundH {
			t.Errorf("platform %d height %v, must stay thinner than the ground", i, obs.H)
		}
	}
	if len(l.coins) != len(platformLayout) {
		t.Errorf("coins = %d on a tall terminal, want one per platform", len(l.coins))
	}
}

func TestLandingOnGround(t *testing.T) {
	l := testLevel()
	ground := l.obstacles[0]
	l.player.Y = ground.Y - playerH - 3
	l.vy = 0

	for i := 0; i < 120 && !l.onGround; i++ {
		l.Update(dt, idle())
	}
	if !l.onGround {
		t.Fatalf("player never landed")
	}
	if l.vy != 0 {
		t.Errorf("landing should zero vertical velocity, vy=%v", l.vy)
	}
	if l.player.Bottom() != ground.Y {
		t.Errorf("player bottom = %v, want ground top %v", l.player.Bottom(), ground.Y)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	l := testLevel()
	// Settle onto the ground first.
	for i := 0; i < 120 && !l.onGround; i++ {
		l.Update(dt, idle())
	}

	l.Update(dt, press(core.ActionJump))
	if l.vy >= 0 {
		t.Fatalf("grounded jump did not launch, vy=%v", l.vy)
	}
	if l.onGround {
		t.Errorf("player still grounded right after a jump")
	}

	// A second jump mid-air does nothing.
	vyBefore := l.vy
	l.Update(dt, press(core.ActionJump))
	if l.vy < vyBefore {
		t.Errorf("air jump changed velocity: %v -> %v", vyBefore, l.vy)
	}
}

func TestHeadBump(t *testing.T) {
	l := testLevel()
	plat := l.obstacles[1]
	// Rising into the platform from just below it.
	l.player.X = plat.X + 1
	l.player.Y = plat.Bottom() + 0.1
	l.vy = -10

	l.Update(dt, idle())
	if l.vy != 0 {
		t.Errorf("head bump should zero vertical velocity, vy=%v", l.vy)
	}
	if l.player.Y != plat.Bottom() {
		t.Errorf("player top = %v, want platform bottom %v", l.player.Y, plat.Bottom())
	}
	if l.onGround {
		t.Errorf("a head bump must not count as grounded")
	}
}

func TestSideCollisionSnaps(t *testing.T) {
	l := testLevel()
	plat := l.obstacles[1]
	// Running right into the platform's left face.
	l.player.X = plat.X - playerW - 0.1
	l.player.Y = plat.Y + 0.1
	l.vy = 0

	l.Update(dt, press(core.ActionRight))
	if l.player.Right() > plat.X {
		t.Errorf("player passed through the wall: right=%v, wall=%v", l.player.Right(), plat.X)
	}
}

func TestFallingOffScreenLoses(t *testing.T) {
	l := testLevel()
	l.obstacles = nil
	l.player.Y = float64(l.cfg.ScreenH) + 1

	l.Update(dt, idle())
	if l.Outcome() != level.Lost {
		t.Errorf("outcome = %v below the screen, want lost", l.Outcome())
	}
}

func TestDoorNeedsAllCoins(t *testing.T) {
	l := testLevel()
	l.player.X = l.door.X
	l.player.Y = l.door.Y
	l.vy = 0

	l.Update(dt, idle())
	if l.Outcome() == level.Won {
		t.Fatalf("door opened with %d coins uncollected", l.remainingCoins())
	}

	for i := range l.coins {
		l.coins[i].collected = true
	}
	l.player.X = l.door.X
	l.player.Y = l.door.Y
	l.vy = 0
	l.Update(dt, idle())
	if l.Outcome() != level.Won {
		t.Errorf("outcome = %v at the door with every coin, want won", l.Outcome())
	}
}

func TestCoinCollectedOnOverlap(t *testing.T) {
	l := testLevel()
	c := l.coins[0].rect
	l.player.X = c.X
	l.player.Y = c.Y
	l.vy = 0

	l.Update(dt, idle())
	if !l.coins[0].collected {
		t.Errorf("overlapping coin not collected")
	}
}

func TestRenderSmoke(t *testing.T) {
	l := testLevel()
	scr := core.NewScreen(80, 24)
	l.Render(scr)
	if scr.String() == "" {
		t.Fatalf("render produced empty screen")
	}
}
