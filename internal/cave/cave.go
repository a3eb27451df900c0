package cave

import (
	"time"

	"cave-ca/internal/core"

	"github.com/google/uuid"
)

// Cave generates a static cave map: density-controlled noise smoothed by a
// cellular automaton. The map is computed on Reset and never changes on Step.
type Cave struct {
	cfg Config

	noise *core.Grid
	grid  *core.Grid

	id   uuid.UUID
	seed int64
}

// New returns a Cave for the provided configuration. Call Reset to generate
// the first map.
func New(cfg Config) *Cave {
	return &Cave{
		cfg:   cfg,
		noise: core.NewGrid(cfg.Width, cfg.Height),
		grid:  core.NewGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the generator identifier.
func (c *Cave) Name() string { return "cave" }

// Size reports the grid dimensions.
func (c *Cave) Size() core.Size { return core.Size{W: c.cfg.Width, H: c.cfg.Height} }

// Cells exposes the smoothed map.
func (c *Cave) Cells() []uint8 { return c.grid.Cells() }

// Grid returns the smoothed map.
func (c *Cave) Grid() *core.Grid { return c.grid }

// Noise returns the seed noise the current map was smoothed from.
func (c *Cave) Noise() *core.Grid { return c.noise }

// ID identifies the current generation; it changes on every Reset.
func (c *Cave) ID() uuid.UUID { return c.id }

// Seed returns the seed the current map was generated from.
func (c *Cave) Seed() int64 { return c.seed }

// Reset regenerates the map. A zero seed falls back to the configured seed,
// and to the wall clock when that is zero too.
func (c *Cave) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = c.cfg.Seed
	}
	if effective == 0 {
		effective = time.Now().UnixNano()
	}
	c.seed = effective

	rng := core.NewRNG(effective)
	c.noise = SeedNoise(rng, c.cfg.WallDensity, c.cfg.Height, c.cfg.Width)
	c.grid = Smooth(c.noise, c.cfg.Iterations, c.cfg.Height, c.cfg.Width)
	c.id = uuid.New()
}

// Step is a no-op: the map is generated once per Reset.
func (c *Cave) Step() {}
