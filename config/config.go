// Package config holds the window, context and rendering settings.
package config

import (
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window     Window     `yaml:"window"`
	Context    Context    `yaml:"context"`
	ClearColor mgl32.Vec4 `yaml:"clear_color"`
	Program    string     `yaml:"program"`
	LogLevel   string     `yaml:"log_level"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Context holds the version and profile hints handed to the windowing
// subsystem before the window is created.
type Context struct {
	Major             int  `yaml:"major"`
	Minor             int  `yaml:"minor"`
	CoreProfile       bool `yaml:"core_profile"`
	ForwardCompatible bool `yaml:"forward_compatible"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  400,
			Height: 400,
			Title:  "Game",
		},
		Context: Context{
			Major:       3,
			Minor:       3,
			CoreProfile: true,
			// Core profiles are only available forward compatible on macOS.
			ForwardCompatible: runtime.GOOS == "darwin",
		},
		ClearColor: mgl32.Vec4{0.2, 0.2, 0.2, 1},
		Program:    "triangle",
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "reading config")
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parsing config %s", path)
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Newf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Context.Major < 3 || (c.Context.Major == 3 && c.Context.Minor < 3) {
		return errors.Newf("OpenGL %d.%d is too old, need at least 3.3", c.Context.Major, c.Context.Minor)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return errors.Newf("clear colour component %d is %v, want 0 to 1", i, v)
		}
	}
	if c.Program == "" {
		return errors.New("no program named")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug, info, warn and error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return l, errors.Wrapf(err, "log level %q", s)
	}
	return l, nil
}
