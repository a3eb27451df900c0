package cave

import (
	"fmt"

	"cave-ca/internal/core"
)

// WallThreshold is the neighbour wall count a cell must exceed to become a
// wall. A count equal to the threshold yields floor.
const WallThreshold = 4

// WallNeighbors counts the walls among the eight neighbours of (x, y).
// Neighbours outside the grid count as walls.
func WallNeighbors(src *core.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !src.InBounds(nx, ny) {
				count++
				continue
			}
			if src.At(nx, ny) == core.Wall {
				count++
			}
		}
	}
	return count
}

// SmoothStep applies one synchronous majority pass, reading only src and
// writing every cell of dst. dst and src must be distinct grids of equal size.
func SmoothStep(dst, src *core.Grid) {
	if dst == src {
		panic("cave: SmoothStep called with aliased grids")
	}
	if dst.W != src.W || dst.H != src.H {
		panic(fmt.Sprintf("cave: SmoothStep size mismatch %dx%d vs %dx%d", dst.W, dst.H, src.W, src.H))
	}
	out := dst.Cells()
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			idx := src.Index(x, y)
			if WallNeighbors(src, x, y) > WallThreshold {
				out[idx] = core.Wall
			} else {
				out[idx] = core.Floor
			}
		}
	}
}

// Smooth runs the given number of smoothing passes over src and returns the
// result in a new grid. Each pass reads the previous pass's output. src is
// never modified; zero or negative iterations return a copy of src. height and
// width must match the grid.
func Smooth(src *core.Grid, iterations, height, width int) *core.Grid {
	if src.H != height || src.W != width || len(src.Cells()) != height*width {
		panic(fmt.Sprintf("cave: Smooth got %dx%d grid for %dx%d map", src.W, src.H, width, height))
	}
	if iterations <= 0 {
		return src.Clone()
	}
	out := core.NewGrid(width, height)
	SmoothStep(out, src)
	if iterations == 1 {
		return out
	}
	spare := core.NewGrid(width, height)
	for i := 1; i < iterations; i++ {
		SmoothStep(spare, out)
		out, spare = spare, out
	}
	return out
}
