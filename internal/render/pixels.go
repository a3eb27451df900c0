package render

import "image/color"

var (
	// FloorColor fills open cells.
	FloorColor color.Color = color.White
	// WallColor fills blocked cells.
	WallColor color.Color = color.Black
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// Non-zero cells take the wall color.
func fillBinaryRGBA(buf []byte, cells []uint8, wall, floor color.Color) {
	rWall, gWall, bWall, aWall := wall.RGBA()
	rFloor, gFloor, bFloor, aFloor := floor.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rWall >> 8)
			buf[base+1] = uint8(gWall >> 8)
			buf[base+2] = uint8(bWall >> 8)
			buf[base+3] = uint8(aWall >> 8)
			continue
		}
		buf[base+0] = uint8(rFloor >> 8)
		buf[base+1] = uint8(gFloor >> 8)
		buf[base+2] = uint8(bFloor >> 8)
		buf[base+3] = uint8(aFloor >> 8)
	}
}

// CellAt maps a pixel position to the column and row of the cell drawn
// there when every cell covers a cellSize square anchored at
// (col*cellSize, row*cellSize).
func CellAt(px, py, cellSize int) (col, row int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	return floorDiv(px, cellSize), floorDiv(py, cellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
