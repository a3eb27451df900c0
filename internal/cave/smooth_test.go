package cave

import (
	"testing"

	"cave-ca/internal/core"
)

func gridFromRows(rows ...string) *core.Grid {
	g := core.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.Set(x, y, core.Wall)
			}
		}
	}
	return g
}

func expectRows(t *testing.T, g *core.Grid, rows ...string) {
	t.Helper()
	want := gridFromRows(rows...)
	if g.W != want.W || g.H != want.H {
		t.Fatalf("grid is %dx%d, expected %dx%d", g.W, g.H, want.W, want.H)
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != want.At(x, y) {
				t.Fatalf("cell (%d,%d)=%d, expected %d", x, y, g.At(x, y), want.At(x, y))
			}
		}
	}
}

func TestSmoothWallsInCorners(t *testing.T) {
	g := core.NewGrid(3, 3)
	out := Smooth(g, 1, 3, 3)
	expectRows(t, out,
		"#.#",
		"...",
		"#.#",
	)
}

func TestSmoothZeroIterationsIsIdentity(t *testing.T) {
	g := SeedNoise(core.NewRNG(3), 50, 12, 17)
	out := Smooth(g, 0, 12, 17)
	if !out.Equal(g) {
		t.Fatal("zero iterations must return the source grid unchanged")
	}
	if out == g {
		t.Fatal("expected a copy, not the source pointer")
	}
}

func TestSmoothIsSynchronous(t *testing.T) {
	g := gridFromRows(
		"###",
		"...",
		"...",
	)
	out := Smooth(g, 1, 3, 3)
	// (1,2) sees only three off-map walls in the unmodified snapshot; an
	// in-place update would also count the freshly walled (0,1), (2,1) and (0,2).
	expectRows(t, out,
		"###",
		"#.#",
		"#.#",
	)
}

func TestSmoothIterationsChain(t *testing.T) {
	g := gridFromRows(
		"###",
		"...",
		"...",
	)
	out := Smooth(g, 2, 3, 3)
	expectRows(t, out,
		"###",
		"###",
		"###",
	)
	expectRows(t, g,
		"###",
		"...",
		"...",
	)
}

func TestSmoothDeterministic(t *testing.T) {
	g := SeedNoise(core.NewRNG(99), 48, 40, 60)
	before := g.Clone()
	a := Smooth(g, 4, 40, 60)
	b := Smooth(g, 4, 40, 60)
	if !a.Equal(b) {
		t.Fatal("smoothing the same grid twice produced different maps")
	}
	if !g.Equal(before) {
		t.Fatal("Smooth modified its source grid")
	}
}

func TestSmoothKeepsCellsBinary(t *testing.T) {
	g := SeedNoise(core.NewRNG(5), 45, 30, 30)
	for iter := 0; iter <= 6; iter++ {
		out := Smooth(g, iter, 30, 30)
		for i, c := range out.Cells() {
			if c != core.Wall && c != core.Floor {
				t.Fatalf("iteration %d: cell %d has value %d", iter, i, c)
			}
		}
	}
}

func TestWallNeighborsEdgeCountsThreeOffMap(t *testing.T) {
	g := core.NewGrid(5, 4)
	edges := [][2]int{{2, 0}, {0, 2}, {4, 1}, {3, 3}}
	for _, e := range edges {
		if got := WallNeighbors(g, e[0], e[1]); got != 3 {
			t.Fatalf("edge cell (%d,%d) counted %d walls, expected 3", e[0], e[1], got)
		}
	}
	if got := WallNeighbors(g, 0, 0); got != 5 {
		t.Fatalf("corner counted %d walls, expected 5", got)
	}
	if got := WallNeighbors(g, 2, 2); got != 0 {
		t.Fatalf("interior counted %d walls, expected 0", got)
	}

	g.Fill(core.Wall)
	if got := WallNeighbors(g, 2, 0); got != 8 {
		t.Fatalf("edge cell on all-wall grid counted %d, expected 8", got)
	}
}

func TestSmoothThresholdTieIsFloor(t *testing.T) {
	// Center of a 3x3 sees exactly four walls.
	g := gridFromRows(
		"##.",
		"#..",
		"#..",
	)
	if got := WallNeighbors(g, 1, 1); got != 4 {
		t.Fatalf("expected 4 wall neighbours, got %d", got)
	}
	out := Smooth(g, 1, 3, 3)
	if out.At(1, 1) != core.Floor {
		t.Fatal("a tie at the threshold must resolve to floor")
	}
}

func TestSmoothStepRejectsAliasing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for aliased grids")
		}
	}()
	g := core.NewGrid(2, 2)
	SmoothStep(g, g)
}

func TestSmoothRejectsDimensionMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched dimensions")
		}
	}()
	Smooth(core.NewGrid(4, 3), 1, 4, 3)
}
