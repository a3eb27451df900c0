package app

import (
	"errors"
	"flag"
	"testing"

	"cave-ca/internal/cave"
	"cave-ca/internal/core"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("cave", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", "maps/small.txt", "-seed", "12", "-hud", "180", "-text"}); err != nil {
		t.Fatal(err)
	}
	if cfg.ConfigPath != "maps/small.txt" || cfg.Seed != 12 || cfg.HUDWidth != 180 || !cfg.Text {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.ConfigPath != "./config.txt" || cfg.Seed != 0 || cfg.HUDWidth != 0 || cfg.Text {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestWindowSizeFollowsConfig(t *testing.T) {
	cfg := cave.DefaultConfig()
	screen := core.Size{W: cfg.ScreenWidth(), H: cfg.ScreenHeight()}

	w, h := windowSize(screen, NewConfig().HUDWidth)
	if w != cfg.Width*cfg.CellSize || h != cfg.Height*cfg.CellSize {
		t.Fatalf("default window %dx%d, expected %dx%d", w, h, cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize)
	}

	w, h = windowSize(screen, 200)
	if w != screen.W+200 || h != screen.H {
		t.Fatalf("window with panel %dx%d, expected %dx%d", w, h, screen.W+200, screen.H)
	}

	w, _ = windowSize(screen, -5)
	if w != screen.W {
		t.Fatalf("negative panel width should be ignored, got %d", w)
	}
}

func TestDisplayInitErrorUnwraps(t *testing.T) {
	cause := errors.New("no GL context")
	err := error(&DisplayInitError{Err: cause})
	if !errors.Is(err, cause) {
		t.Fatal("expected DisplayInitError to unwrap to its cause")
	}
	if err.Error() != "display: no GL context" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
