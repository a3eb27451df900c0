package ui

import (
	"fmt"
	"strings"

	"cave-ca/internal/core"
	"cave-ca/internal/render"
)

var helpLines = []string{
	"1 toggle noise",
	"R redo  S new seed",
	"Q quit",
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Map"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

func formatParam(p core.Parameter) string {
	if p.Type == core.ParamTypeFloat {
		return fmt.Sprintf("%s: %s%%", p.Label, p.Value)
	}
	return fmt.Sprintf("%s: %s", p.Label, p.Value)
}

func cursorLabel(sim core.Sim, mx, my, cellSize int) string {
	size := sim.Size()
	col, row := render.CellAt(mx, my, cellSize)
	if !core.InBounds(col, row, size.H, size.W) {
		return ""
	}
	cells := sim.Cells()
	idx := row*size.W + col
	if idx >= len(cells) {
		return ""
	}
	state := "floor"
	if cells[idx] == core.Wall {
		state = "wall"
	}
	return fmt.Sprintf("(%d,%d) %s", col, row, state)
}
