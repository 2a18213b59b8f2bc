// Package games assembles the campaign: the ordered set of trials the
// player has to clear to escape.
package games

import (
	"github.com/qbakra/escape-arcade/internal/config"
	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/games/course"
	"github.com/qbakra/escape-arcade/internal/games/flappy"
	"github.com/qbakra/escape-arcade/internal/games/invaders"
	"github.com/qbakra/escape-arcade/internal/games/maze"
	"github.com/qbakra/escape-arcade/internal/level"
)

// Campaign returns the four trials in play order. Call it once per run;
// every level starts cold and is loaded by the session when reached.
func Campaign(cfg core.RuntimeConfig, bundle config.Bundle) []level.Level {
	return []level.Level{
		maze.New(cfg, bundle.Maze),
		invaders.New(cfg, bundle.Invaders),
		flappy.New(cfg, bundle.Flappy),
		course.New(cfg, bundle.Course),
	}
}
