package cave

import (
	"bufio"
	"io"

	"cave-ca/internal/core"
)

// Glyphs used by WriteText.
const (
	WallGlyph  = '#'
	FloorGlyph = '.'
)

// WriteText prints g one row per line, walls as '#' and floor as '.'.
func WriteText(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			glyph := byte(FloorGlyph)
			if g.At(x, y) == core.Wall {
				glyph = WallGlyph
			}
			if err := bw.WriteByte(glyph); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
