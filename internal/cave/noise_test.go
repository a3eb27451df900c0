package cave

import (
	"math"
	"testing"

	"cave-ca/internal/core"
)

func TestSeedNoiseFullDensityIsAllWall(t *testing.T) {
	g := SeedNoise(core.NewRNG(1), 100, 5, 5)
	if got := g.Count(core.Wall); got != 25 {
		t.Fatalf("expected 25 walls, got %d", got)
	}
}

func TestSeedNoiseZeroDensityIsAllFloor(t *testing.T) {
	g := SeedNoise(core.NewRNG(1), 0, 5, 5)
	if got := g.Count(core.Floor); got != 25 {
		t.Fatalf("expected 25 floor cells, got %d", got)
	}
}

func TestSeedNoiseOutOfRangeDensity(t *testing.T) {
	if got := SeedNoise(core.NewRNG(2), 150, 6, 6).Count(core.Wall); got != 36 {
		t.Fatalf("density above 100 should wall everything, got %d walls", got)
	}
	if got := SeedNoise(core.NewRNG(2), -10, 6, 6).Count(core.Wall); got != 0 {
		t.Fatalf("negative density should leave all floor, got %d walls", got)
	}
}

func TestSeedNoiseDimensions(t *testing.T) {
	g := SeedNoise(core.NewRNG(4), 50, 7, 11)
	if g.W != 11 || g.H != 7 || len(g.Cells()) != 77 {
		t.Fatalf("expected 11x7 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
	for i, c := range g.Cells() {
		if c != core.Wall && c != core.Floor {
			t.Fatalf("cell %d has value %d", i, c)
		}
	}
}

func TestSeedNoiseDensityTracksWallFraction(t *testing.T) {
	rng := core.NewRNG(2024)
	prev := -1.0
	for _, density := range []int{10, 30, 50, 70, 90} {
		frac := WallFraction(SeedNoise(rng, density, 100, 100))
		want := float64(density) / 100
		if math.Abs(frac-want) > 0.05 {
			t.Fatalf("density %d produced wall fraction %.3f, expected %.2f±0.05", density, frac, want)
		}
		if frac <= prev {
			t.Fatalf("density %d fraction %.3f not above previous %.3f", density, frac, prev)
		}
		prev = frac
	}
}

func TestSeedNoiseDeterministicForSeed(t *testing.T) {
	a := SeedNoise(core.NewRNG(77), 45, 20, 20)
	b := SeedNoise(core.NewRNG(77), 45, 20, 20)
	if !a.Equal(b) {
		t.Fatal("equal seeds should produce equal noise")
	}
}
