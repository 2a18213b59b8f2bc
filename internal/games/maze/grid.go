package maze

import "math/rand"

// Grid is a maze on a cell grid. Odd rows and columns carry the corridors,
// even ones the walls between them, so both dimensions are forced odd.
type Grid struct {
	cols, rows int
	walls      [][]bool // [row][col], true = wall
}

// carve directions, in steps of two cells.
var carveDirs = [4][2]int{
	{0, -2}, // up
	{2, 0},  // right
	{0, 2},  // down
	{-2, 0}, // left
}

// carveFrame is one node of the depth-first carve, held on an explicit
// stack so deep mazes cannot blow the call stack.
type carveFrame struct {
	c, r int
	dirs [4]int
	next int
}

// NewGrid generates a maze of roughly the requested size. Dimensions are
// forced odd with a minimum of 3. The result is a spanning tree over the
// corridor cells: every corridor is reachable and there are no loops.
func NewGrid(cols, rows int, rng *rand.Rand) *Grid {
	cols = forceOdd(cols)
	rows = forceOdd(rows)

	g := &Grid{cols: cols, rows: rows}
	g.walls = make([][]bool, rows)
	for r := range g.walls {
		g.walls[r] = make([]bool, cols)
		for c := range g.walls[r] {
			g.walls[r][c] = true
		}
	}
	g.carve(rng)
	return g
}

func forceOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func (g *Grid) carve(rng *rand.Rand) {
	g.walls[1][1] = false

	stack := []carveFrame{newFrame(1, 1, rng)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		advanced := false
		for top.next < 4 {
			d := carveDirs[top.dirs[top.next]]
			top.next++

			nc, nr := top.c+d[0], top.r+d[1]
			if nc < 1 || nc >= g.cols-1 || nr < 1 || nr >= g.rows-1 {
				continue
			}
			if !g.walls[nr][nc] {
				continue
			}
			// Knock down the wall between the two corridor cells.
			g.walls[top.r+d[1]/2][top.c+d[0]/2] = false
			g.walls[nr][nc] = false
			stack = append(stack, newFrame(nc, nr, rng))
			advanced = true
			break
		}
		if !advanced && stack[len(stack)-1].next >= 4 {
			stack = stack[:len(stack)-1]
		}
	}
}

func newFrame(c, r int, rng *rand.Rand) carveFrame {
	f := carveFrame{c: c, r: r}
	perm := rng.Perm(4)
	copy(f.dirs[:], perm)
	return f
}

// Cols returns the grid width in maze cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in maze cells.
func (g *Grid) Rows() int { return g.rows }

// IsWall reports whether the cell is a wall. Cells outside the grid count
// as walls so collision checks never index out of range.
func (g *Grid) IsWall(c, r int) bool {
	if c < 0 || c >= g.cols || r < 0 || r >= g.rows {
		return true
	}
	return g.walls[r][c]
}
