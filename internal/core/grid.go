package core

const (
	// Floor marks an open cell.
	Floor uint8 = 0
	// Wall marks a blocked cell.
	Wall uint8 = 1
)

// Grid stores a 2D grid of binary cell values in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a floor-filled grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// InBounds reports whether (x, y) lies inside a height×width map.
func InBounds(x, y, height, width int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of this grid.
func (g *Grid) InBounds(x, y int) bool { return InBounds(x, y, g.H, g.W) }

// At returns the value at (x, y). Callers must check bounds first.
func (g *Grid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y), normalising any non-zero value to Wall. Out of
// range coordinates are ignored.
func (g *Grid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	if v != Floor {
		v = Wall
	}
	g.data[y*g.W+x] = v
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H || len(g.data) != len(o.data) {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold v.
func (g *Grid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Fill sets every cell to v.
func (g *Grid) Fill(v uint8) {
	if v != Floor {
		v = Wall
	}
	for i := range g.data {
		g.data[i] = v
	}
}
