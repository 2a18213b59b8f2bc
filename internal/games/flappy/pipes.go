package flappy

import (
	"math/rand"

	"github.com/qbakra/escape-arcade/internal/core"
)

// Pipe is one pipe pair: a gap centered at GapY with solid columns above
// and below, scrolling left.
type Pipe struct {
	X      float64
	GapY   float64
	scored bool
}

// TopRect returns the upper column for the given pipe geometry.
func (p Pipe) TopRect(width, gap float64) core.Rect {
	return core.NewRect(p.X, 0, width, p.GapY-gap/2)
}

// BottomRect returns the lower column, extending to the bottom of the
// playfield.
func (p Pipe) BottomRect(width, gap float64, screenH float64) core.Rect {
	top := p.GapY + gap/2
	return core.NewRect(p.X, top, width, screenH-top)
}

// newPipe places a pipe at x with a random gap center kept clear of the
// screen edges.
func newPipe(x float64, gap, screenH float64, rng *rand.Rand) Pipe {
	margin := gap/2 + 2
	span := screenH - 2*margin
	if span < 1 {
		span = 1
	}
	return Pipe{X: x, GapY: margin + rng.Float64()*span}
}
