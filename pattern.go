package tinytowns

import (
	"sort"
	"strings"

	"github.com/voidshard/tinytowns/internal/grid"
)

// Pattern is one orientation of a building footprint: a rectangular
// grid of cells, each either requiring some Resource or None (a gap,
// transparent to matching). Patterns are immutable once built; the
// width & height are computed up front from the given rows.
type Pattern struct {
	cells  grid.Grid
	width  int
	height int
	key    string
}

// NewPattern builds a Pattern from rows of resources. Short rows are
// padded out to the longest row with None.
func NewPattern(rows [][]Resource) *Pattern {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cells := grid.New(width, len(rows))
	for y, row := range rows {
		for x, r := range row {
			cells[y][x] = uint8(r.ID())
		}
	}

	return patternForGrid(cells)
}

// patternForGrid wraps a ready made (rectangular) cell grid
func patternForGrid(cells grid.Grid) *Pattern {
	return &Pattern{
		cells:  cells,
		width:  cells.Width(),
		height: cells.Height(),
		key:    cells.Key(),
	}
}

// Width of the pattern (cells per row)
func (p *Pattern) Width() int {
	return p.width
}

// Height of the pattern (number of rows)
func (p *Pattern) Height() int {
	return p.height
}

// Size is the total number of cells, gaps included
func (p *Pattern) Size() int {
	return p.width * p.height
}

// At returns the resource required at x,y.
// None for gaps & out of range co-ords.
func (p *Pattern) At(x, y int) Resource {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return None
	}
	return resourceForID(int(p.cells[y][x]))
}

// Key is stable & equal between two patterns iff they hold identical
// cells (gap / filled distinction & position included), which is what
// lets us dedup orientation sets.
func (p *Pattern) Key() string {
	return p.key
}

// Equals returns if two patterns are structurally equal
func (p *Pattern) Equals(o *Pattern) bool {
	return o != nil && p.key == o.key
}

// Orientations returns the distinct patterns reachable by rotating
// and/or mirroring this one. The result always includes the pattern
// itself & its length divides 8 (1, 2, 4 or 8 depending on how much
// symmetry the pattern has of its own). Order is deterministic.
func (p *Pattern) Orientations() []*Pattern {
	seen := map[string]*Pattern{}
	for _, g := range grid.Symmetries(p.cells) {
		sym := patternForGrid(g)
		seen[sym.key] = sym
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*Pattern, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}

// String renders the pattern with the two letter resource codes
func (p *Pattern) String() string {
	sb := &strings.Builder{}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			sb.WriteString(p.At(x, y).Short())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
