package cave

import "cave-ca/internal/core"

// SeedNoise fills a height×width grid with random walls. Each cell draws a
// uniform integer in [1, 100] and becomes a wall when the draw is at most
// density, so density 100 walls everything and density 0 nothing.
func SeedNoise(rng *core.RNG, density, height, width int) *core.Grid {
	g := core.NewGrid(width, height)
	cells := g.Cells()
	for i := range cells {
		if rng.Percent() <= density {
			cells[i] = core.Wall
		}
	}
	return g
}
