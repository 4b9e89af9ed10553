package tinytowns

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io/ioutil"
	"strings"
)

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}

// Legend returns a human readable map of the board's co-ordinate
// scheme: each square shows its (x, y) address over the offset of the
// square in the backing array (y*BoardWidth + x). Eg. for the top of
// a 4x4 board:
//
//	x: 0     1     2     3
//	y + --- + --- + --- + --- +
//	  | 0,0 | 1,0 | 2,0 | 3,0 |
//	0 | 0   | 1   | 2   | 3   |
//	  + --- + --- + --- + --- +
func Legend() string {
	sb := &strings.Builder{}

	sb.WriteString("x:")
	for x := 0; x < BoardWidth; x++ {
		sb.WriteString(fmt.Sprintf(" %-5d", x))
	}
	sb.WriteString("\n")

	border := strings.Repeat("+ --- ", BoardWidth) + "+\n"
	sb.WriteString("y " + border)

	for y := 0; y < BoardHeight; y++ {
		sb.WriteString("  ")
		for x := 0; x < BoardWidth; x++ {
			sb.WriteString(fmt.Sprintf("| %d,%d ", x, y))
		}
		sb.WriteString("|\n")

		sb.WriteString(fmt.Sprintf("%d ", y))
		for x := 0; x < BoardWidth; x++ {
			sb.WriteString(fmt.Sprintf("| %-3d ", index(x, y)))
		}
		sb.WriteString("|\n")

		sb.WriteString("  " + border)
	}

	return sb.String()
}
