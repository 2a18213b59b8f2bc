package maze

import (
	"math/rand"
	"testing"
)

func TestGridDimensionsForcedOdd(t *testing.T) {
	cases := []struct {
		inC, inR   int
		wantC, wantR int
	}{
		{35, 21, 35, 21},
		{4, 4, 3, 3},
		{10, 8, 9, 7},
		{0, 0, 3, 3},
		{2, 5, 3, 5},
		{-3, 1, 3, 3},
	}
	rng := rand.New(rand.NewSource(1))
	for _, tc := range cases {
		g := NewGrid(tc.inC, tc.inR, rng)
		if g.Cols() != tc.wantC || g.Rows() != tc.wantR {
			t.Errorf("NewGrid(%d,%d) = %dx%d, want %dx%d",
				tc.inC, tc.inR, g.Cols(), g.Rows(), tc.wantC, tc.wantR)
		}
	}
}

func TestGridBorderIsSolid(t *testing.T) {
	g := NewGrid(11, 9, rand.New(rand.NewSource(2)))
	for c := 0; c < g.Cols(); c++ {
		if !g.IsWall(c, 0) || !g.IsWall(c, g.Rows()-1) {
			t.Fatalf("border row open at col %d", c)
		}
	}
	for r := 0; r < g.Rows(); r++ {
		if !g.IsWall(0, r) || !g.IsWall(g.Cols()-1, r) {
			t.Fatalf("border col open at row %d", r)
		}
	}
	if !g.IsWall(-1, 4) || !g.IsWall(4, 100) {
		t.Errorf("out-of-range cells must count as walls")
	}
}

// TestGridIsSpanningTree checks the two properties that make a maze
// solvable and loop-free: every corridor cell is reachable from the
// entrance, and the number of open cells is exactly 2p-1 for p corridor
// cells (p corridors plus p-1 knocked walls).
func TestGridIsSpanningTree(t *testing.T) {
	sizes := [][2]int{{3, 3}, {7, 5}, {35, 21}, {51, 31}}
	for seed := int64(0); seed < 5; seed++ {
		for _, sz := range sizes {
			g := NewGrid(sz[0], sz[1], rand.New(rand.NewSource(seed)))

			open := 0
			for r := 0; r < g.Rows(); r++ {
				for c := 0; c < g.Cols(); c++ {
					if !g.IsWall(c, r) {
						open++
					}
				}
			}
			p := ((g.Cols() - 1) / 2) * ((g.Rows() - 1) / 2)
			if open != 2*p-1 {
				t.Errorf("size %v seed %d: %d open cells, want %d (loop or unreached area)",
					sz, seed, open, 2*p-1)
			}

			if reached := floodFrom(g, 1, 1); reached != open {
				t.Errorf("size %v seed %d: flood reached %d of %d open cells",
					sz, seed, reached, open)
			}
		}
	}
}

func floodFrom(g *Grid, c, r int) int {
	seen := make(map[[2]int]bool)
	queue := [][2]int{{c, r}}
	seen[[2]int{c, r}] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			nc, nr := cur[0]+d[0], cur[1]+d[1]
			if g.IsWall(nc, nr) || seen[[2]int{nc, nr}] {
				continue
			}
			seen[[2]int{nc, nr}] = true
			queue = append(queue, [2]int{nc, nr})
		}
	}
	return len(seen)
}

func TestGridDeterministicForSeed(t *testing.T) {
	a := NewGrid(21, 15, rand.New(rand.NewSource(7)))
	b := NewGrid(21, 15, rand.New(rand.NewSource(7)))
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			if a.IsWall(c, r) != b.IsWall(c, r) {
				t.Fatalf("same seed produced different mazes at (%d,%d)", c, r)
			}
		}
	}
}
