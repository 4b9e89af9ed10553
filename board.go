package tinytowns

import (
	"fmt"
	"strings"

	"github.com/boljen/go-bitmap"
	"github.com/pkg/errors"
)

const (
	// BoardWidth is the number of squares across the board
	BoardWidth = 4

	// BoardHeight is the number of squares down the board
	BoardHeight = 4
)

var (
	// ErrOutOfBounds implies co-ords outside the board area
	ErrOutOfBounds = fmt.Errorf("co-ords are out of bounds of the board")

	// ErrOccupied implies placing on to a square that already holds a piece
	ErrOccupied = fmt.Errorf("square already holds a piece")
)

// Piece is the contents of an occupied board square: either a cube of
// some resource or a completed building. Exactly one field is set.
type Piece struct {
	Cube      Resource `json:",omitempty"`
	Structure Building `json:",omitempty"`
}

// Board holds the state of one player's town: a fixed 4x4 field of
// squares, each empty or holding a single Piece. Squares are addressed
// (x, y) with x the column & y the row, top left being (0, 0) - see
// Legend() for a printable version of the scheme.
//
// Squares are occupied at most once for the life of the board; there
// is no removal or replacement.
type Board struct {
	pieces   []*Piece
	occupied bitmap.Bitmap
}

// NewBoard returns an empty board
func NewBoard() *Board {
	return &Board{
		pieces:   make([]*Piece, BoardWidth*BoardHeight),
		occupied: bitmap.New(BoardWidth * BoardHeight),
	}
}

// index converts x,y into the offset of the square in our backing array
func index(x, y int) int {
	return y*BoardWidth + x
}

// isOutOfBounds determines if x,y is outside the board area
func isOutOfBounds(x, y int) bool {
	return x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight
}

// Get returns the piece at x,y.
// Nil if the square is empty or the co-ords are out of bounds.
func (b *Board) Get(x, y int) *Piece {
	if isOutOfBounds(x, y) {
		return nil
	}
	return b.pieces[index(x, y)]
}

// Occupied returns if the square at x,y holds a piece
func (b *Board) Occupied(x, y int) bool {
	if isOutOfBounds(x, y) {
		return false
	}
	return b.occupied.Get(index(x, y))
}

// Free returns the number of empty squares left on the board
func (b *Board) Free() int {
	free := 0
	for i := 0; i < BoardWidth*BoardHeight; i++ {
		if !b.occupied.Get(i) {
			free++
		}
	}
	return free
}

// put places the piece, enforcing bounds & occupancy
func (b *Board) put(x, y int, p *Piece) error {
	if isOutOfBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d)", x, y)
	}

	i := index(x, y)
	if b.occupied.Get(i) {
		return errors.Wrapf(ErrOccupied, "(%d,%d)", x, y)
	}

	b.pieces[i] = p
	b.occupied.Set(i, true)
	return nil
}

// Place puts a cube of the given resource at x,y
func (b *Board) Place(x, y int, r Resource) error {
	return b.put(x, y, &Piece{Cube: r})
}

// PlaceBrick puts a brick cube at x,y
func (b *Board) PlaceBrick(x, y int) error {
	return b.Place(x, y, Brick)
}

// PlaceGlass puts a glass cube at x,y
func (b *Board) PlaceGlass(x, y int) error {
	return b.Place(x, y, Glass)
}

// PlaceStone puts a stone cube at x,y
func (b *Board) PlaceStone(x, y int) error {
	return b.Place(x, y, Stone)
}

// PlaceWheat puts a wheat cube at x,y
func (b *Board) PlaceWheat(x, y int) error {
	return b.Place(x, y, Wheat)
}

// PlaceWood puts a wood cube at x,y
func (b *Board) PlaceWood(x, y int) error {
	return b.Place(x, y, Wood)
}

// PlaceBuilding puts a completed building at x,y
func (b *Board) PlaceBuilding(x, y int, building Building) error {
	return b.put(x, y, &Piece{Structure: building})
}

// Fits returns if every non-gap cell of the placement sits on an
// empty, in bounds square. Gaps are transparent; whatever sits under
// them doesn't matter.
func (b *Board) Fits(p *Placement) bool {
	for _, c := range p.Cells {
		if c.Resource == None {
			continue
		}
		if isOutOfBounds(c.At.X, c.At.Y) || b.Occupied(c.At.X, c.At.Y) {
			return false
		}
	}
	return true
}

// String renders the board as a grid of two letter codes,
// ".." marking empty squares
func (b *Board) String() string {
	sb := &strings.Builder{}
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			p := b.Get(x, y)
			switch {
			case p == nil:
				sb.WriteString(".. ")
			case p.Structure != "":
				sb.WriteString(p.Structure.Short() + " ")
			default:
				sb.WriteString(p.Cube.Short() + " ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
