package gconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"xiangqi/src/geometry"
	"xiangqi/src/ui/gui/gbase"
)

const DefaultFile string = "xiangqi.yaml"

type Config struct {
	Theme    string `yaml:"theme"`            // light/dark
	WindowW  int    `yaml:"window_w"`         //
	WindowH  int    `yaml:"window_h"`         //
	Midline  string `yaml:"midline_rounding"` // floor/trunc
	FitBoard bool   `yaml:"fit_board"`        // camera frames the board instead of the fixed arena
	Debug    bool   `yaml:"debug"`            // pointer overlay

	// file the config was read from, Save writes back there
	file string
}

func defaultConfig() Config {
	return Config{
		Theme:    "light",
		WindowW:  gbase.WindowW,
		WindowH:  gbase.WindowH,
		Midline:  "floor",
		FitBoard: true,
		Debug:    false,
	}
}

// NewGUIConfig reads the config file, a missing file gives the defaults
func NewGUIConfig(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.file = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	c := defaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	c.file = file
	return &c, nil
}

func (c *Config) File() string {
	return c.file
}

// Save writes the config back to the file it was read from
func (c *Config) Save() error {
	if c.file == "" {
		return fmt.Errorf("error save config: no file")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error encode config: %w", err)
	}
	if err := os.WriteFile(c.file, data, 0644); err != nil {
		return fmt.Errorf("error save config: %w", err)
	}
	return nil
}

// Geometry returns the default board geometry with the configured rounding
func (c *Config) Geometry() geometry.Geometry {
	g := geometry.Default()
	if r, err := geometry.MidlineRoundingFromString(c.Midline); err == nil {
		g.Rounding = r
	}
	return g
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if _, err := geometry.MidlineRoundingFromString(c.Midline); err != nil {
		c.Midline = def.Midline
	}
	if c.WindowH < 300 || c.WindowW < 400 {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
