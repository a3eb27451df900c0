package cave

import (
	"fmt"

	"cave-ca/internal/core"
)

// Stats summarises wall coverage before and after smoothing.
type Stats struct {
	Cells      int
	NoiseWalls int
	Walls      int
}

// NoiseFraction is the share of walls in the seed noise.
func (s Stats) NoiseFraction() float64 { return fraction(s.NoiseWalls, s.Cells) }

// WallFraction is the share of walls in the smoothed map.
func (s Stats) WallFraction() float64 { return fraction(s.Walls, s.Cells) }

// Stats reports wall counts for the current generation.
func (c *Cave) Stats() Stats {
	return Stats{
		Cells:      len(c.grid.Cells()),
		NoiseWalls: c.noise.Count(core.Wall),
		Walls:      c.grid.Count(core.Wall),
	}
}

// WallFraction returns the share of cells in g that are walls.
func WallFraction(g *core.Grid) float64 {
	return fraction(g.Count(core.Wall), len(g.Cells()))
}

func fraction(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// Summary is a one-line description of the current generation for logs.
func (c *Cave) Summary() string {
	s := c.Stats()
	return fmt.Sprintf("cave %s: %dx%d density=%d iterations=%d seed=%d walls %.1f%% -> %.1f%%",
		c.id, c.cfg.Width, c.cfg.Height, c.cfg.WallDensity, c.cfg.Iterations, c.seed,
		s.NoiseFraction()*100, s.WallFraction()*100)
}
