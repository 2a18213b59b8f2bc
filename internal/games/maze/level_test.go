package maze

import (
	"testing"

	"github.com/qbakra/escape-arcade/internal/config"
	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/level"
)

func testLevel(coinChance float64) *Level {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	mcfg := config.MazeConfig{Cols: 21, Rows: 15, CoinChance: coinChance, PlayerSpeed: 8}
	l := New(cfg, mcfg)
	l.Load()
	return l
}

const dt = 1.0 / 60.0

func TestLoadPlacesPlayerAtEntrance(t *testing.T) {
	l := testLevel(0.3)
	want := l.cellRect(1, 1, playerScale)
	if l.player != want {
		t.Errorf("player = %+v, want entrance cell %+v", l.player, want)
	}
	if l.Outcome() != level.Ongoing {
		t.Errorf("fresh level outcome = %v, want ongoing", l.Outcome())
	}
	if l.score != 0 {
		t.Errorf("fresh level score = %d, want 0", l.score)
	}
}

func TestWallsBlockAndCorridorsDoNot(t *testing.T) {
	l := testLevel(0)
	if l.hitsWall(l.cellRect(1, 1, playerScale)) {
		t.Errorf("entrance cell should be open")
	}
	if !l.hitsWall(l.cellRect(0, 0, playerScale)) {
		t.Errorf("border cell should be solid")
	}
	if !l.hitsWall(l.cellRect(0, 1, playerScale)) {
		t.Errorf("left border next to entrance should be solid")
	}
}

func TestMovementBlockedByBorder(t *testing.T) {
	l := testLevel(0)
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionUp)
	for i := 0; i < 120; i++ {
		l.Update(dt, in)
	}
	// The player must still be inside corridor cell (1,1), not in a wall.
	if l.hitsWall(l.player) {
		t.Errorf("player pushed into a wall: %+v", l.player)
	}
	entrance := l.cellRect(1, 1, 1.0)
	if !l.player.Overlaps(entrance) {
		t.Errorf("player escaped through the border: %+v", l.player)
	}
}

func TestCoinCollectedOnce(t *testing.T) {
	l := testLevel(1.0)
	if len(l.coins) == 0 {
		t.Fatalf("coin chance 1.0 produced no coins")
	}

	l.player.X = l.coins[0].rect.X
	l.player.Y = l.coins[0].rect.Y
	l.Update(dt, core.NewInputFrame())
	first := l.score
	if !l.coins[0].collected {
		t.Fatalf("overlapping coin was not collected")
	}
	if first < 1 {
		t.Fatalf("score = %d after collecting, want >= 1", first)
	}

	l.Update(dt, core.NewInputFrame())
	if l.score != first {
		t.Errorf("coin counted twice: score %d -> %d", first, l.score)
	}
}

func TestReachingExitWins(t *testing.T) {
	l := testLevel(0)
	l.player.X = l.exit.X
	l.player.Y = l.exit.Y
	l.Update(dt, core.NewInputFrame())
	if l.Outcome() != level.Won {
		t.Errorf("outcome = %v at the exit, want won", l.Outcome())
	}

	// Finished levels ignore further input.
	before := l.player
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	l.Update(dt, in)
	if l.player != before {
		t.Errorf("finished level still moves the player")
	}
}

func TestExitShutWhileCoinsRemain(t *testing.T) {
	l := testLevel(1.0)
	if len(l.coins) < 2 {
		t.Fatalf("test needs several coins, got %d", len(l.coins))
	}
	l.player.X = l.exit.X
	l.player.Y = l.exit.Y
	l.Update(dt, core.NewInputFrame())
	if l.Outcome() == level.Won {
		t.Errorf("exit opened with %d of %d coins collected", l.score, len(l.coins))
	}
}

func TestZeroCoinMazeIsWinnable(t *testing.T) {
	l := testLevel(0)
	if len(l.coins) != 0 {
		t.Fatalf("coin chance 0 produced %d coins", len(l.coins))
	}
	l.player.X = l.exit.X
	l.player.Y = l.exit.Y
	l.Update(dt, core.NewInputFrame())
	if l.Outcome() != level.Won {
		t.Errorf("coinless maze not winnable at the exit")
	}
}

func TestGridShrinksToFitScreen(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1}
	l := New(cfg, config.MazeConfig{Cols: 99, Rows: 99, PlayerSpeed: 8})
	l.Load()
	if float64(l.grid.Cols())*cellW > float64(cfg.ScreenW) {
		t.Errorf("maze wider than screen: %d cols", l.grid.Cols())
	}
	if float64(l.grid.Rows())*cellH > float64(cfg.ScreenH-1) {
		t.Errorf("maze taller than playfield: %d rows", l.grid.Rows())
	}
}

func TestRenderSmoke(t *testing.T) {
	l := testLevel(0.3)
	scr := core.NewScreen(80, 24)
	l.Render(scr)
	if scr.String() == "" {
		t.Fatalf("render produced empty screen")
	}
}
