package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"cave-ca/internal/cave"
	"cave-ca/internal/core"
)

type scenario struct {
	density    int
	iterations int
}

type scenarioResult struct {
	scenario
	noiseMean float64
	wallMean  float64
	wallMin   float64
	wallMax   float64
}

func main() {
	width := flag.Int("w", 100, "map width")
	height := flag.Int("h", 75, "map height")
	runs := flag.Int("runs", 20, "seeds per scenario")
	densities := flag.String("densities", "35,40,45,50,55,60", "comma separated wall densities")
	iterations := flag.String("iterations", "0,1,3,5", "comma separated smoothing iteration counts")
	seed := flag.Int64("seed", 1, "base seed; run i of every scenario uses seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	nWorkers := workerCount(*workers)
	densityList, err := parseInts(*densities)
	if err != nil {
		fmt.Println("densities:", err)
		return
	}
	iterationList, err := parseInts(*iterations)
	if err != nil {
		fmt.Println("iterations:", err)
		return
	}

	var sets []scenario
	for _, d := range densityList {
		for _, it := range iterationList {
			sets = append(sets, scenario{density: d, iterations: it})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%dx%d, %d runs each, %d workers)\n", len(sets), *width, *height, *runs, nWorkers)
	start := time.Now()

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *width, *height, *runs, *seed)
			}
		}()
	}

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].density != all[j].density {
			return all[i].density < all[j].density
		}
		return all[i].iterations < all[j].iterations
	})

	fmt.Printf("%8s %10s %8s %8s %8s %8s\n", "density", "iterations", "noise%", "walls%", "min%", "max%")
	for _, r := range all {
		fmt.Printf("%8d %10d %8.1f %8.1f %8.1f %8.1f\n", r.density, r.iterations,
			r.noiseMean*100, r.wallMean*100, r.wallMin*100, r.wallMax*100)
	}
	fmt.Printf("done in %s\n", time.Since(start).Round(time.Millisecond))
}

func runScenario(sc scenario, w, h, runs int, base int64) scenarioResult {
	res := scenarioResult{scenario: sc, wallMin: 1}
	if runs <= 0 {
		res.wallMin = 0
		return res
	}
	for i := 0; i < runs; i++ {
		noise := cave.SeedNoise(core.NewRNG(base+int64(i)), sc.density, h, w)
		grid := cave.Smooth(noise, sc.iterations, h, w)
		nf := cave.WallFraction(noise)
		wf := cave.WallFraction(grid)
		res.noiseMean += nf
		res.wallMean += wf
		if wf < res.wallMin {
			res.wallMin = wf
		}
		if wf > res.wallMax {
			res.wallMax = wf
		}
	}
	res.noiseMean /= float64(runs)
	res.wallMean /= float64(runs)
	return res
}

// workerCount clamps the requested pool size to at least one worker.
func workerCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}
