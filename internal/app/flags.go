package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Seed       int64
	HUDWidth   int
	Text       bool
}

// NewConfig returns a Config populated with sensible defaults. The window is
// exactly the configured map size unless a HUD width is given.
func NewConfig() *Config {
	return &Config{ConfigPath: "./config.txt"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to the label:value config file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed (0 uses the config file seed or the clock)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.BoolVar(&c.Text, "text", c.Text, "print the map as text instead of opening a window")
}
