package cave

import "fmt"

// Config holds the parameters for generating and displaying a cave map.
type Config struct {
	TickRate    int // display ticks per second
	CellSize    int // pixels per cell edge
	Width       int // columns
	Height      int // rows
	WallDensity int // percent chance a seeded cell starts as wall
	Iterations  int // smoothing passes

	// Seed feeds the noise RNG. Zero means a time-based seed is chosen at
	// generation time.
	Seed int64
}

// Config file keys, lower-cased.
const (
	KeyFPS         = "fps"
	KeySquareSize  = "squaresize"
	KeyMapWidth    = "mapwidth"
	KeyMapHeight   = "mapheight"
	KeyWallDensity = "walldensity"
	KeyIterations  = "iterations"
	KeySeed        = "seed"
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		TickRate:    30,
		CellSize:    8,
		Width:       100,
		Height:      75,
		WallDensity: 45,
		Iterations:  5,
	}
}

// ScreenWidth is the window width in pixels.
func (c Config) ScreenWidth() int { return c.Width * c.CellSize }

// ScreenHeight is the window height in pixels.
func (c Config) ScreenHeight() int { return c.Height * c.CellSize }

// Validate checks every field against its allowed range and names the first
// offending key.
func (c Config) Validate() error {
	checks := []struct {
		key      string
		value    int
		min, max int
	}{
		{KeyFPS, c.TickRate, 1, -1},
		{KeySquareSize, c.CellSize, 1, -1},
		{KeyMapWidth, c.Width, 1, -1},
		{KeyMapHeight, c.Height, 1, -1},
		{KeyWallDensity, c.WallDensity, 0, 100},
		{KeyIterations, c.Iterations, 0, -1},
	}
	for _, chk := range checks {
		if err := checkRange(chk.value, chk.min, chk.max); err != nil {
			return &ConfigLoadError{Key: chk.key, Err: err}
		}
	}
	return nil
}

func checkRange(v, min, max int) error {
	if v < min {
		return fmt.Errorf("%w: %d is below %d", ErrOutOfRange, v, min)
	}
	if max >= min && v > max {
		return fmt.Errorf("%w: %d is above %d", ErrOutOfRange, v, max)
	}
	return nil
}
