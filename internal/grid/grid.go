package grid

// Grid is a rectangular field of cell codes. What the codes mean is up
// to the caller; grid just moves cells around. All rows are the same
// length (the caller pads short rows before handing grids to us).
type Grid [][]uint8

// New returns an empty width x height grid
func New(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]uint8, width)
	}
	return g
}

// Width of the grid (0 for a grid with no rows)
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height of the grid
func (g Grid) Height() int {
	return len(g)
}

// FlipRows mirrors the grid top to bottom
func (g Grid) FlipRows() Grid {
	out := New(g.Width(), g.Height())
	for y, row := range g {
		copy(out[len(g)-1-y], row)
	}
	return out
}

// FlipCells mirrors the grid left to right
func (g Grid) FlipCells() Grid {
	w := g.Width()
	out := New(w, g.Height())
	for y, row := range g {
		for x, c := range row {
			out[y][w-1-x] = c
		}
	}
	return out
}

// Transpose swaps the grid's axes; the cell at (x,y) moves to (y,x)
// & a wide grid comes back tall (and vice versa)
func (g Grid) Transpose() Grid {
	out := New(g.Height(), g.Width())
	for y, row := range g {
		for x, c := range row {
			out[x][y] = c
		}
	}
	return out
}

// Symmetries returns the 8 grids reachable under the symmetries of a
// square: the grid itself, its two mirrors, their combination (a 180
// rotation) & the same four again transposed. Duplicates are *not*
// removed here; grids with symmetry of their own will repeat.
func Symmetries(g Grid) []Grid {
	t := g.Transpose()
	return []Grid{
		g,
		g.FlipRows(),
		g.FlipCells(),
		g.FlipRows().FlipCells(),
		t,
		t.FlipRows(),
		t.FlipCells(),
		t.FlipRows().FlipCells(),
	}
}

// Key packs the grid dimensions & cells into a string. Two grids have
// equal keys iff they are structurally equal, so keys can stand in for
// grids in map based set dedup.
func (g Grid) Key() string {
	buf := make([]byte, 0, g.Width()*g.Height()+2)
	buf = append(buf, byte(g.Width()), byte(g.Height()))
	for _, row := range g {
		buf = append(buf, row...)
	}
	return string(buf)
}
