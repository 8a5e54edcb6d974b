// Package sdlhost draws an App in an SDL2 window and feeds it keyboard,
// controller and text input events.
package sdlhost

import (
	"context"
	"errors"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/config"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
)

// Host owns the window, the input state and the notification overlay.
type Host struct {
	cfg    config.Config
	app    *doorstep.App
	queue  *doorstep.NotificationQueue
	logger *slog.Logger

	input  *internal.InputProcessor
	repeat internal.DirectionalInput
	cache  *internal.TextureCache
}

// New builds the App with a notifier that queues messages for the overlay.
// opts.Notifier is replaced. No SDL resources are touched until Run.
func New(cfg config.Config, opts doorstep.AppOptions) (*Host, error) {
	h := &Host{
		cfg:    cfg,
		queue:  &doorstep.NotificationQueue{},
		logger: doorstep.GetInternalLogger(),
		input:  internal.NewInputProcessor(),
		repeat: internal.NewDirectionalInput(),
	}
	opts.Notifier = screens.NotifierFunc(func(message string) {
		doorstep.GetLogger().Info("Notification shown", "message", message)
		h.queue.Notify(message)
	})

	app, err := doorstep.NewApp(opts)
	if err != nil {
		return nil, err
	}
	h.app = app
	return h, nil
}

// App returns the driven application.
func (h *Host) App() *doorstep.App {
	return h.app
}

// Notifications returns the overlay queue.
func (h *Host) Notifications() *doorstep.NotificationQueue {
	return h.queue
}

// Run opens the window and loops until the window is closed, App.Quit is
// called or ctx is done. SDL failures are returned as *doorstep.InfrastructureError.
func (h *Host) Run(ctx context.Context) error {
	internal.SetTheme(themeFor(h.cfg.Theme))

	defer internal.Cleanup()
	if err := internal.Init(windowOptions(h.cfg.Window)); err != nil {
		return doorstep.NewInfrastructureError("init", err)
	}

	h.cache = internal.NewTextureCache()
	defer h.cache.Destroy()

	h.logger.Debug("SDL host started", "route", h.app.CurrentName())

	for h.app.Running() {
		if ctx.Err() != nil {
			h.app.Quit()
			break
		}

		h.pollEvents()

		if button := h.repeat.Update(); button != constants.VirtualButtonUnassigned {
			h.handleButton(button)
		}

		h.render()
	}

	h.logger.Debug("SDL host stopped", "route", h.app.CurrentName())
	return ctx.Err()
}

func (h *Host) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			h.app.Quit()
			return

		case *sdl.TextInputEvent:
			h.handleText(e.GetText())

		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_BACKSPACE {
				if e.State == sdl.PRESSED {
					h.handleErase()
				}
				continue
			}
			h.handleInput(event)

		case *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent:
			h.handleInput(event)
		}
	}
}

func (h *Host) handleInput(event sdl.Event) {
	inputEvent := h.input.ProcessSDLEvent(event)
	if inputEvent == nil {
		return
	}

	// Held directions repeat through DirectionalInput, not SDL key repeat.
	if inputEvent.Repeat {
		return
	}

	h.repeat.SetHeld(inputEvent.Button, inputEvent.Pressed)
	if !inputEvent.Pressed {
		return
	}
	h.handleButton(inputEvent.Button)
}

// handleButton routes a press to the overlay while a notification is showing,
// otherwise to the App.
func (h *Host) handleButton(button constants.VirtualButton) {
	if _, showing := h.queue.Current(); showing {
		switch button {
		case constants.VirtualButtonA, constants.VirtualButtonB, constants.VirtualButtonStart:
			h.queue.Dismiss()
		}
		return
	}

	h.app.Press(button)
}

func (h *Host) handleText(text string) {
	if _, showing := h.queue.Current(); showing {
		return
	}
	if err := h.app.Type(text); err != nil && !errors.Is(err, doorstep.ErrNoFocus) {
		h.logger.Warn("Text input failed", "error", err)
	}
}

func (h *Host) handleErase() {
	if _, showing := h.queue.Current(); showing {
		return
	}
	_ = h.app.Erase()
}
