package sdlhost

import (
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/config"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/platform/cannoli"
)

func themeFor(cfg config.ThemeConfig) internal.Theme {
	var theme internal.Theme
	switch cfg.Name {
	case config.ThemeCannoli:
		theme = cannoli.InitCannoliTheme(cfg.FontPath)
	default:
		theme = internal.DefaultTheme(cfg.FontPath)
	}

	if cfg.FontSize > 0 {
		theme.FontSize = cfg.FontSize
	}
	if cfg.AccentColor != nil {
		theme.AccentColor = internal.HexToColor(*cfg.AccentColor)
	}
	return theme
}

func windowOptions(cfg config.WindowConfig) internal.WindowOptions {
	return internal.WindowOptions{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Borderless: cfg.Borderless,
		Resizable:  cfg.Resizable,
		Fullscreen: cfg.Fullscreen,
	}
}
