//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"cave-ca/internal/app"
	"cave-ca/internal/cave"
	"cave-ca/internal/core"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("cave-ca: ")

	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := cave.LoadConfig(flags.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}

	gen := cave.New(cfg)
	if flags.Text {
		gen.Reset(flags.Seed)
		log.Print(gen.Summary())
		if err := cave.WriteText(os.Stdout, gen.Grid()); err != nil {
			log.Fatal(err)
		}
		return
	}

	screen := core.Size{W: cfg.ScreenWidth(), H: cfg.ScreenHeight()}
	game := app.New(gen, screen, cfg.CellSize, flags.HUDWidth)
	game.Reset(flags.Seed)

	if err := app.Run(game, "cave-ca — "+gen.Name(), cfg.TickRate); err != nil {
		log.Fatal(err)
	}
}
