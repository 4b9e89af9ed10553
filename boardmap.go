package tinytowns

import (
	"fmt"
	"image"
	"image/color"
	"io/ioutil"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// ColourScheme defines how the board should be coloured when rendered.
type ColourScheme struct {
	Grid      color.Color
	Empty     color.Color
	Resources map[Resource]color.Color
	Buildings map[Building]color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Grid:  colornames.Black,
		Empty: colornames.Whitesmoke,
		Resources: map[Resource]color.Color{
			Brick: colornames.Firebrick,
			Glass: colornames.Lightblue,
			Stone: colornames.Gray,
			Wheat: colornames.Wheat,
			Wood:  colornames.Saddlebrown,
		},
		Buildings: map[Building]color.Color{
			Well:        colornames.Steelblue,
			Theater:     colornames.Indigo,
			TradingPost: colornames.Goldenrod,
			Cottage:     colornames.Royalblue,
			Farm:        colornames.Lightgreen,
			Chapel:      colornames.Gold,
			Tavern:      colornames.Maroon,
		},
	}
}

// Image renders the board with the given scheme, each square being
// cellSize x cellSize pixels.
func (b *Board) Image(scheme *ColourScheme, cellSize int) image.Image {
	ctx := gg.NewContext(BoardWidth*cellSize, BoardHeight*cellSize)
	ctx.SetColor(scheme.Empty)
	ctx.Clear()

	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			col := pieceColour(b.Get(x, y), scheme)
			if col == nil {
				continue
			}
			ctx.SetColor(col)
			ctx.DrawRectangle(
				float64(x*cellSize), float64(y*cellSize),
				float64(cellSize), float64(cellSize),
			)
			ctx.Fill()
		}
	}

	// grid lines last so they sit on top of the squares
	ctx.SetColor(scheme.Grid)
	ctx.SetLineWidth(1)
	for x := 0; x <= BoardWidth; x++ {
		ctx.DrawLine(float64(x*cellSize), 0, float64(x*cellSize), float64(BoardHeight*cellSize))
		ctx.Stroke()
	}
	for y := 0; y <= BoardHeight; y++ {
		ctx.DrawLine(0, float64(y*cellSize), float64(BoardWidth*cellSize), float64(y*cellSize))
		ctx.Stroke()
	}

	return ctx.Image()
}

// SavePNG renders the board & writes it to disk
func (b *Board) SavePNG(fpath string, scheme *ColourScheme, cellSize int) error {
	err := savePNG(fpath, b.Image(scheme, cellSize))
	return errors.Wrapf(err, "failed to save board to %s", fpath)
}

// pieceColour picks the scheme colour for a piece, nil for empty
// squares & pieces the scheme doesn't mention
func pieceColour(p *Piece, scheme *ColourScheme) color.Color {
	if p == nil {
		return nil
	}
	if p.Structure != "" {
		col, ok := scheme.Buildings[p.Structure]
		if !ok {
			return nil
		}
		return col
	}
	col, ok := scheme.Resources[p.Cube]
	if !ok {
		return nil
	}
	return col
}

// schemeFile is the on-disk (yaml) form of a ColourScheme. Colours are
// given by their SVG 1.1 name (see golang.org/x/image/colornames).
type schemeFile struct {
	Grid      string            `yaml:"grid"`
	Empty     string            `yaml:"empty"`
	Resources map[string]string `yaml:"resources"`
	Buildings map[string]string `yaml:"buildings"`
}

// LoadScheme reads a yaml colour scheme from disk, overlaying whatever
// it sets on to DefaultScheme(). All fields are optional.
func LoadScheme(fpath string) (*ColourScheme, error) {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	sf := &schemeFile{}
	err = yaml.Unmarshal(data, sf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse scheme %s", fpath)
	}

	scheme := DefaultScheme()

	if sf.Grid != "" {
		scheme.Grid, err = colourByName(sf.Grid)
		if err != nil {
			return nil, err
		}
	}
	if sf.Empty != "" {
		scheme.Empty, err = colourByName(sf.Empty)
		if err != nil {
			return nil, err
		}
	}

	for name, cname := range sf.Resources {
		res := Resource(name)
		if res.ID() == 0 {
			return nil, fmt.Errorf("unknown resource %s in scheme %s", name, fpath)
		}
		col, err := colourByName(cname)
		if err != nil {
			return nil, err
		}
		scheme.Resources[res] = col
	}

	for name, cname := range sf.Buildings {
		build := Building(name)
		if build.ID() == 0 {
			return nil, fmt.Errorf("unknown building %s in scheme %s", name, fpath)
		}
		col, err := colourByName(cname)
		if err != nil {
			return nil, err
		}
		scheme.Buildings[build] = col
	}

	return scheme, nil
}

// colourByName resolves a colour from its SVG 1.1 name
func colourByName(name string) (color.Color, error) {
	col, ok := colornames.Map[name]
	if !ok {
		return nil, fmt.Errorf("unknown colour %s", name)
	}
	return col, nil
}
