package main

import (
	"slices"
	"testing"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 40, 45,,50 ")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{40, 45, 50}) {
		t.Fatalf("got %v", got)
	}
	if _, err := parseInts("40,x"); err == nil {
		t.Fatal("expected error for non-integer entry")
	}
}

func TestRunScenarioFullDensity(t *testing.T) {
	res := runScenario(scenario{density: 100, iterations: 3}, 20, 10, 4, 1)
	if res.noiseMean != 1 || res.wallMean != 1 || res.wallMin != 1 || res.wallMax != 1 {
		t.Fatalf("all-wall noise should stay all wall, got %+v", res)
	}
}

func TestRunScenarioZeroIterationsMatchesNoise(t *testing.T) {
	res := runScenario(scenario{density: 45, iterations: 0}, 30, 30, 5, 9)
	if res.noiseMean != res.wallMean {
		t.Fatalf("identity pass should keep wall fraction, noise %.3f walls %.3f", res.noiseMean, res.wallMean)
	}
}

func TestWorkerCountClampsToOne(t *testing.T) {
	for _, n := range []int{-3, 0} {
		if got := workerCount(n); got != 1 {
			t.Fatalf("workerCount(%d)=%d, expected 1", n, got)
		}
	}
	if got := workerCount(6); got != 6 {
		t.Fatalf("workerCount(6)=%d, expected 6", got)
	}
}
