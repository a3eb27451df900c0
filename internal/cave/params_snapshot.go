package cave

import (
	"fmt"
	"strconv"

	"cave-ca/internal/core"

	"github.com/google/uuid"
)

// Parameters groups the map settings and wall statistics for the HUD.
func (c *Cave) Parameters() core.ParameterSnapshot {
	stats := c.Stats()
	id := "--"
	if c.id != uuid.Nil {
		id = c.id.String()[:8]
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam(KeyMapWidth, "Width", c.cfg.Width),
				intParam(KeyMapHeight, "Height", c.cfg.Height),
				intParam(KeySquareSize, "Cell size", c.cfg.CellSize),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				intParam(KeyWallDensity, "Wall density", c.cfg.WallDensity),
				intParam(KeyIterations, "Iterations", c.cfg.Iterations),
				{Key: KeySeed, Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.seed, 10)},
				{Key: "id", Label: "Generation", Type: core.ParamTypeString, Value: id},
			},
		},
		{
			Name: "Display",
			Params: []core.Parameter{
				intParam(KeyFPS, "Tick rate", c.cfg.TickRate),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				percentParam("noise_walls", "Noise walls", stats.NoiseFraction()),
				percentParam("walls", "Walls", stats.WallFraction()),
			},
			Summary: fmt.Sprintf("%d cells", stats.Cells),
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func percentParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v*100, 'f', 1, 64)}
}
