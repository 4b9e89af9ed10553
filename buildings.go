package tinytowns

import (
	"image"
)

// Building enumerates every structure in the game. The set is closed;
// each building maps to exactly one canonical footprint via Pattern()
// & that mapping never varies at runtime.
type Building string

const (
	Well        Building = "well"
	Theater     Building = "theater"
	TradingPost Building = "trading-post"
	Cottage     Building = "cottage"
	Farm        Building = "farm"
	Chapel      Building = "chapel"
	Tavern      Building = "tavern"
)

var (
	allBuildings = []Building{
		Well, Theater, TradingPost, Cottage, Farm, Chapel, Tavern,
	}

	buildingindex = map[Building]int{
		Well:        1,
		Theater:     2,
		TradingPost: 3,
		Cottage:     4,
		Farm:        5,
		Chapel:      6,
		Tavern:      7,
	}

	invBuildingIndex = map[int]Building{}
)

func init() {
	for k, v := range buildingindex {
		invBuildingIndex[v] = k
	}
}

// ID returns the index of a building (always > 0 for known buildings)
func (b Building) ID() int {
	v, ok := buildingindex[b]
	if !ok {
		return 0
	}
	return v
}

// buildingForID is the inversion of Building.ID()
func buildingForID(i int) Building {
	build, ok := invBuildingIndex[i]
	if !ok {
		return Building("")
	}
	return build
}

// Short returns a fixed two character code for the building,
// handy when printing boards
func (b Building) Short() string {
	switch b {
	case Well:
		return "We"
	case Theater:
		return "Te"
	case TradingPost:
		return "Tp"
	case Cottage:
		return "Ct"
	case Farm:
		return "Fm"
	case Chapel:
		return "Cp"
	case Tavern:
		return "Tv"
	}
	return ".."
}

// AllBuildings returns all known Building enums
func AllBuildings() []Building {
	return allBuildings
}

// Pattern returns the canonical footprint of the building
func (b Building) Pattern() *Pattern {
	switch b {
	case Well:
		// Wd St
		return NewPattern([][]Resource{
			{Wood, Stone},
		})
	case Theater:
		// .. St ..
		// Wd Gs Wd
		return NewPattern([][]Resource{
			{None, Stone, None},
			{Wood, Glass, Wood},
		})
	case TradingPost:
		// St Wd
		// St Wd Bk
		return NewPattern([][]Resource{
			{Stone, Wood},
			{Stone, Wood, Brick},
		})
	case Cottage:
		// .. Wt
		// Bk Gs
		return NewPattern([][]Resource{
			{None, Wheat},
			{Brick, Glass},
		})
	case Farm:
		// Wt Wt
		// Wd Wd
		return NewPattern([][]Resource{
			{Wheat, Wheat},
			{Wood, Wood},
		})
	case Chapel:
		// .. .. Gs
		// St Gs St
		return NewPattern([][]Resource{
			{None, None, Glass},
			{Stone, Glass, Stone},
		})
	case Tavern:
		// Bk Bk Gs
		return NewPattern([][]Resource{
			{Brick, Brick, Glass},
		})
	}
	return nil
}

// Orientations returns every distinct orientation of the building's
// footprint (rotations & mirrors, deduplicated)
func (b Building) Orientations() []*Pattern {
	return b.Pattern().Orientations()
}

// Placement is one way a building could sit on the board: an oriented
// footprint anchored at a top left board square, flattened into
// absolute (co-ord, resource) cells.
type Placement struct {
	Building Building
	Pattern  *Pattern
	Anchor   image.Point
	Cells    []PlacementCell
}

// PlacementCell pins one pattern cell to an absolute board co-ord.
// Resource is None where the pattern has no requirement there.
type PlacementCell struct {
	At       image.Point
	Resource Resource
}

// Placements enumerates every way the building could sit within the
// board bounds: each distinct orientation slid across every anchor
// that keeps the whole footprint on the board. Cells are listed in
// row major order of the oriented pattern.
func (b Building) Placements() []*Placement {
	possible := []*Placement{}

	for _, p := range b.Orientations() {
		for x := 0; x+p.Width() <= BoardWidth; x++ {
			for y := 0; y+p.Height() <= BoardHeight; y++ {
				cells := make([]PlacementCell, 0, p.Size())
				for dy := 0; dy < p.Height(); dy++ {
					for dx := 0; dx < p.Width(); dx++ {
						cells = append(cells, PlacementCell{
							At:       image.Pt(x+dx, y+dy),
							Resource: p.At(dx, dy),
						})
					}
				}

				possible = append(possible, &Placement{
					Building: b,
					Pattern:  p,
					Anchor:   image.Pt(x, y),
					Cells:    cells,
				})
			}
		}
	}

	return possible
}
