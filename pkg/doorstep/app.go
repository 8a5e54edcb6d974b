package doorstep

import (
	"fmt"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/router"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
)

// AppOptions configures the application root.
type AppOptions struct {
	InitialRoute string            // Route name; defaults to Onboarding
	Localizer    *locale.Localizer // Defaults to English
	Notifier     screens.Notifier  // Where confirmation messages go; defaults to the app logger
	Logger       *slog.Logger      // Defaults to GetLogger()
}

// App is the composition root: it owns the router, the route table and the
// focus cursor that hosts drive with virtual buttons.
//
// App is driven from a single event loop. Quit and Running are the only methods
// safe to call from other goroutines.
type App struct {
	router   *router.Router[screens.Screen]
	loc      *locale.Localizer
	notifier screens.Notifier
	logger   *slog.Logger

	focus         int
	running       *atomic.Bool
	notifications *atomic.Int64
}

// NewApp registers the route table and mounts the initial route.
func NewApp(opts AppOptions) (*App, error) {
	if opts.Localizer == nil {
		opts.Localizer = locale.Default()
	}
	if opts.Logger == nil {
		opts.Logger = GetLogger()
	}
	if opts.Notifier == nil {
		opts.Notifier = screens.LogNotifier{Logger: opts.Logger}
	}
	if opts.InitialRoute == "" {
		opts.InitialRoute = screens.NameOnboarding
	}

	initial, ok := screens.ParseRoute(opts.InitialRoute)
	if !ok {
		return nil, fmt.Errorf("initial route %q: %w", opts.InitialRoute, ErrInvalidRouteTarget)
	}

	a := &App{
		router:        router.New[screens.Screen](),
		loc:           opts.Localizer,
		logger:        opts.Logger,
		running:       atomic.NewBool(true),
		notifications: atomic.NewInt64(0),
	}
	a.notifier = screens.NotifierFunc(func(message string) {
		a.notifications.Inc()
		a.logger.Debug("Notify", "route", a.CurrentName(), "message", message)
		opts.Notifier.Notify(message)
	})

	for _, def := range screens.Table(a.loc, a.notifier) {
		if err := a.router.Register(def); err != nil {
			return nil, err
		}
	}

	a.router.OnTransition(func(from, to router.Route, kind router.TransitionKind) {
		a.focus = 0
		a.logger.Debug("Route changed",
			"from", a.router.Name(from),
			"to", a.router.Name(to),
			"kind", kind.String(),
			"depth", len(a.router.History()))
	})

	if err := a.router.Start(initial); err != nil {
		return nil, err
	}
	return a, nil
}

// Localizer returns the localizer the screens were built with.
func (a *App) Localizer() *locale.Localizer {
	return a.loc
}

// Navigate moves to the named route. Unknown names return ErrInvalidRouteTarget
// and leave the current route unchanged.
func (a *App) Navigate(name string) error {
	return a.router.Navigate(name)
}

// GoBack returns to the previous route. It reports false on the initial route.
func (a *App) GoBack() bool {
	return a.router.GoBack()
}

// CanGoBack reports whether a back control should be offered.
func (a *App) CanGoBack() bool {
	return a.router.CanGoBack()
}

// Current returns the route on screen.
func (a *App) Current() router.Route {
	return a.router.Current()
}

// CurrentName returns the name of the route on screen.
func (a *App) CurrentName() string {
	return a.router.Name(a.router.Current())
}

// History returns the visited route names, oldest first.
func (a *App) History() []string {
	routes := a.router.History()
	names := make([]string, len(routes))
	for i, r := range routes {
		names[i] = a.router.Name(r)
	}
	return names
}

// Routes returns the route table.
func (a *App) Routes() []router.Definition[screens.Screen] {
	return a.router.Routes()
}

// Screen returns the mounted instance of the current route.
func (a *App) Screen() screens.Screen {
	s, _ := a.router.CurrentView()
	return s
}

// View renders the current screen.
func (a *App) View() screens.View {
	return a.Screen().Render()
}

// Focused returns the focused element of the current screen.
func (a *App) Focused() (screens.Node, bool) {
	nodes := a.View().Focusable()
	if len(nodes) == 0 {
		return screens.Node{}, false
	}
	if a.focus >= len(nodes) {
		a.focus = len(nodes) - 1
	}
	return nodes[a.focus], true
}

// FocusIndex returns the index of the focused element among focusable nodes.
func (a *App) FocusIndex() int {
	return a.focus
}

// Focus moves focus to the element with the given ID.
func (a *App) Focus(id string) error {
	for i, n := range a.View().Focusable() {
		if n.ID == id {
			a.focus = i
			return nil
		}
	}
	return fmt.Errorf("focus %q: %w", id, ErrUnknownElement)
}

// Activate presses the button or link with the given ID.
func (a *App) Activate(id string) error {
	return screens.Press(a.Screen(), id)
}

// SetField sets an input on the current screen.
func (a *App) SetField(id, value string) error {
	return screens.SetField(a.Screen(), id, value)
}

// Field returns the value of an input on the current screen.
func (a *App) Field(id string) (string, error) {
	n, ok := a.View().Find(id)
	if !ok || n.Field == nil {
		return "", fmt.Errorf("field %q: %w", id, ErrUnknownElement)
	}
	return n.Field.Value(), nil
}

// Type appends text to the focused input.
func (a *App) Type(text string) error {
	n, ok := a.Focused()
	if !ok || n.Field == nil {
		return ErrNoFocus
	}
	n.Field.Append(text)
	return nil
}

// Erase removes the last character of the focused input.
func (a *App) Erase() error {
	n, ok := a.Focused()
	if !ok || n.Field == nil {
		return ErrNoFocus
	}
	n.Field.Backspace()
	return nil
}

// Press handles a virtual button: Up/Down (and Left/Right) move focus with
// wrap-around, A or Start activate the focused button or link, B goes back.
func (a *App) Press(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonLeft:
		a.moveFocus(-1)
	case constants.VirtualButtonDown, constants.VirtualButtonRight:
		a.moveFocus(1)
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		n, ok := a.Focused()
		if !ok || n.Field != nil {
			return
		}
		if err := a.Activate(n.ID); err != nil {
			a.logger.Warn("Activate failed", "id", n.ID, "error", err)
		}
	case constants.VirtualButtonB:
		a.GoBack()
	}
}

func (a *App) moveFocus(delta int) {
	count := len(a.View().Focusable())
	if count == 0 {
		return
	}
	a.focus = (a.focus + delta + count) % count
}

// Notifications returns how many confirmation messages have been shown.
func (a *App) Notifications() int64 {
	return a.notifications.Load()
}

// Quit asks the host loop to stop. Safe to call from any goroutine.
func (a *App) Quit() {
	a.running.Store(false)
}

// Running reports whether Quit has not been called yet.
func (a *App) Running() bool {
	return a.running.Load()
}
