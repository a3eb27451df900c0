//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"cave-ca/internal/app"
	"cave-ca/internal/cave"
	"cave-ca/internal/core"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cave-ca: ")

	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := cave.LoadConfig(flags.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}

	gen := cave.New(cfg)
	gen.Reset(flags.Seed)
	log.Print(gen.Summary())

	if !flags.Text {
		screen := core.Size{W: cfg.ScreenWidth(), H: cfg.ScreenHeight()}
		err := app.Run(app.New(gen, screen, cfg.CellSize, flags.HUDWidth), "cave-ca", cfg.TickRate)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "No window was opened. Pass -text to print the map, or re-run with `go run -tags ebiten ./cmd/cave`.")
		os.Exit(2)
	}

	if err := cave.WriteText(os.Stdout, gen.Grid()); err != nil {
		log.Fatal(err)
	}
}
