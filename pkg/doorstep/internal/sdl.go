package internal

import (
	"fmt"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	window      *Window
	controllers []*sdl.GameController
)

// Init starts SDL video, fonts and controllers and opens the window.
// The caller must call Cleanup, even when Init fails part way.
func Init(opts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("init ttf: %w", err)
	}

	openControllers()

	var err error
	window, err = newWindow(opts)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	theme := GetTheme()
	if err := initFonts(theme.FontPath, theme.FontSize); err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	sdl.StartTextInput()
	return nil
}

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			controllers = append(controllers, c)
			logging.GetInternalLogger().Debug("Opened game controller", "name", c.Name())
		}
	}
}

func closeControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}

// Cleanup releases everything Init acquired.
func Cleanup() {
	sdl.StopTextInput()
	closeFonts()
	if window != nil {
		window.destroy()
		window = nil
	}
	closeControllers()
	ttf.Quit()
	sdl.Quit()
}
