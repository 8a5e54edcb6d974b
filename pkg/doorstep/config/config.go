// Package config loads the doorstep TOML configuration file.
//
// Every key is optional; missing keys keep the values from Default.
//
//	initial_route = "Onboarding"
//	locale        = "en"
//
//	[log]
//	level = "info"
//	path  = "logs/doorstep.log"
//
//	[window]
//	title      = "doorstep"
//	width      = 1024
//	height     = 768
//	resizable  = true
//
//	[theme]
//	name         = "cannoli"
//	accent_color = 0x008080
//	font_path    = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
//	font_size    = 28
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal/logging"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
)

// Theme names accepted in [theme].name.
const (
	ThemeDefault = "default"
	ThemeCannoli = "cannoli"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	InitialRoute string       `toml:"initial_route"`
	Locale       string       `toml:"locale"`
	Log          LogConfig    `toml:"log"`
	Window       WindowConfig `toml:"window"`
	Theme        ThemeConfig  `toml:"theme"`
}

type LogConfig struct {
	Level         string `toml:"level"`          // Application log level
	InternalLevel string `toml:"internal_level"` // Framework log level
	Path          string `toml:"path"`           // Log file; empty logs to stderr only
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`  // 0 uses the display size
	Height     int32  `toml:"height"` // 0 uses the display size
	Borderless bool   `toml:"borderless"`
	Resizable  bool   `toml:"resizable"`
	Fullscreen bool   `toml:"fullscreen"`
}

type ThemeConfig struct {
	Name        string  `toml:"name"`
	AccentColor *uint32 `toml:"accent_color"` // 0xRRGGBB; unset keeps the theme accent
	FontPath    string  `toml:"font_path"`
	FontSize    int     `toml:"font_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InitialRoute: screens.NameOnboarding,
		Locale:       "en",
		Log: LogConfig{
			Level:         "info",
			InternalLevel: "error",
		},
		Window: WindowConfig{
			Title:     "doorstep",
			Resizable: true,
		},
		Theme: ThemeConfig{
			Name:     ThemeDefault,
			FontPath: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			FontSize: 28,
		},
	}
}

// Load reads a TOML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults. Unknown keys are rejected.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("%w: unknown keys: %s", ErrInvalid, strings.Join(keys, ", "))
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	if _, ok := screens.ParseRoute(c.InitialRoute); !ok {
		errs = append(errs, fmt.Errorf("%w: initial_route %q is not one of %s",
			ErrInvalid, c.InitialRoute, strings.Join(screens.RouteNames(), ", ")))
	}
	if _, err := locale.New(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}
	if _, ok := logging.ParseLevel(c.Log.InternalLevel); !ok {
		errs = append(errs, fmt.Errorf("%w: log.internal_level %q", ErrInvalid, c.Log.InternalLevel))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.Theme.Name != ThemeDefault && c.Theme.Name != ThemeCannoli {
		errs = append(errs, fmt.Errorf("%w: theme.name %q", ErrInvalid, c.Theme.Name))
	}
	if c.Theme.AccentColor != nil && *c.Theme.AccentColor > 0xFFFFFF {
		errs = append(errs, fmt.Errorf("%w: theme.accent_color %#x is not 0xRRGGBB", ErrInvalid, *c.Theme.AccentColor))
	}
	if c.Theme.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: theme.font_size %d", ErrInvalid, c.Theme.FontSize))
	}

	return errors.Join(errs...)
}
