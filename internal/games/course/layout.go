package course

import "github.com/qbakra/escape-arcade/internal/core"

// The course is authored in screen fractions so it keeps its shape at any
// terminal size. Platforms zig-zag up and to the right toward the exit.
var platformLayout = [][4]float64{
	{0.10, 0.80, 0.10, 0.04},
	{0.22, 0.75, 0.10, 0.04},
	{0.34, 0.65, 0.10, 0.04},
	{0.10, 0.55, 0.10, 0.04},
	{0.48, 0.58, 0.12, 0.04},
	{0.62, 0.70, 0.10, 0.04},
	{0.74, 0.55, 0.12, 0.04},
	{0.60, 0.42, 0.10, 0.04},
	{0.44, 0.32, 0.10, 0.04},
	{0.28, 0.24, 0.10, 0.04},
	{0.50, 0.16, 0.12, 0.04},
	{0.68, 0.22, 0.10, 0.04},
	{0.84, 0.18, 0.12, 0.04},
}

const groundH = 3.0

// buildObstacles returns the ground slab plus the authored platforms,
// scaled to the given screen size. Platform heights are kept between one
// cell and thinner than the ground slab, so they stay landable on short
// terminals and recognizably platforms on tall ones.
func buildObstacles(w, h float64) []core.Rect {
	obstacles := []core.Rect{
		core.NewRect(0, h-groundH, w, groundH),
	}
	for _, p := range platformLayout {
		ph := core.ClampF(p[3]*h, 1, groundH-1)
		obstacles = append(obstacles, core.NewRect(p[0]*w, p[1]*h, p[2]*w, ph))
	}
	return obstacles
}
