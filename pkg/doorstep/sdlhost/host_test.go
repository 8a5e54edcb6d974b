package sdlhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/config"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
)

func newTestHost(t *testing.T, initial string) *Host {
	t.Helper()

	h, err := New(config.Default(), doorstep.AppOptions{InitialRoute: initial})
	require.NoError(t, err)
	return h
}

func TestOverlayCapturesButtons(t *testing.T) {
	h := newTestHost(t, "ForgotPassword")

	require.NoError(t, h.App().Focus(screens.IDSubmit))
	h.handleButton(constants.VirtualButtonA)

	msg, showing := h.Notifications().Current()
	require.True(t, showing)
	assert.Equal(t, "Password reset link sent!", msg)

	// Directions and typing are swallowed while the overlay is up.
	h.handleButton(constants.VirtualButtonUp)
	h.handleText("zzz")
	assert.Equal(t, 1, h.App().FocusIndex())

	h.handleButton(constants.VirtualButtonB)
	_, showing = h.Notifications().Current()
	assert.False(t, showing)
	assert.Equal(t, "ForgotPassword", h.App().CurrentName())

	// Overlay gone: B now goes back, which is a no-op on the initial route.
	h.handleButton(constants.VirtualButtonB)
	assert.Equal(t, "ForgotPassword", h.App().CurrentName())
}

func TestTextAndErase(t *testing.T) {
	h := newTestHost(t, "Login")

	h.handleText("ab")
	h.handleErase()
	h.handleText("c")

	v, err := h.App().Field(screens.IDEmail)
	require.NoError(t, err)
	assert.Equal(t, "ac", v)

	// No focused input: ignored.
	require.NoError(t, h.App().Focus(screens.IDSubmit))
	h.handleText("x")
	v, _ = h.App().Field(screens.IDEmail)
	assert.Equal(t, "ac", v)
}

func TestNewRejectsUnknownRoute(t *testing.T) {
	_, err := New(config.Default(), doorstep.AppOptions{InitialRoute: "Home"})
	assert.ErrorIs(t, err, doorstep.ErrInvalidRouteTarget)
}

func TestThemeFor(t *testing.T) {
	cfg := config.Default().Theme

	theme := themeFor(cfg)
	assert.Equal(t, internal.DefaultTheme(cfg.FontPath).BackgroundColor, theme.BackgroundColor)
	assert.Equal(t, cfg.FontSize, theme.FontSize)

	cfg.Name = config.ThemeCannoli
	red := uint32(0xFF0000)
	cfg.AccentColor = &red
	cfg.FontSize = 20
	theme = themeFor(cfg)
	assert.Equal(t, sdl.Color{R: 255, G: 255, B: 255, A: 255}, theme.BackgroundColor)
	assert.Equal(t, sdl.Color{R: 255, A: 255}, theme.AccentColor)
	assert.Equal(t, 20, theme.FontSize)
}

func TestWindowOptions(t *testing.T) {
	opts := windowOptions(config.WindowConfig{Title: "t", Width: 640, Height: 480, Fullscreen: true})

	assert.Equal(t, internal.WindowOptions{Title: "t", Width: 640, Height: 480, Fullscreen: true}, opts)
	assert.NotZero(t, opts.ToSDLFlags()&sdl.WINDOW_FULLSCREEN_DESKTOP)
}

var testMetrics = metrics{Heading: 40, Subheading: 20, Control: 50, Link: 20, Gap: 10}

func TestLayoutNodes(t *testing.T) {
	h := newTestHost(t, "")
	view := h.App().View()

	placements := layoutNodes(view.Nodes, sdl.Rect{X: 8, Y: 100, W: 300, H: 400}, testMetrics)
	require.Len(t, placements, 4)

	// heading, subheading, then an extra gap before the first button.
	assert.Equal(t, sdl.Rect{X: 8, Y: 100, W: 300, H: 40}, placements[0].Rect)
	assert.Equal(t, int32(150), placements[1].Rect.Y)
	assert.Equal(t, int32(190), placements[2].Rect.Y)
	assert.Equal(t, int32(250), placements[3].Rect.Y)
	assert.Equal(t, screens.IDGoToSignup, placements[3].Node.ID)
}

func TestScrollOffset(t *testing.T) {
	h := newTestHost(t, "Login")
	view := h.App().View()
	viewport := sdl.Rect{Y: 0, W: 300, H: 200}
	placements := layoutNodes(view.Nodes, viewport, testMetrics)

	assert.Zero(t, scrollOffset(placements, screens.IDEmail, viewport, testMetrics.Gap))
	assert.Zero(t, scrollOffset(placements, "", viewport, testMetrics.Gap))

	last := placements[len(placements)-1]
	offset := scrollOffset(placements, last.Node.ID, viewport, testMetrics.Gap)
	assert.Equal(t, last.Rect.Y+last.Rect.H-viewport.H+testMetrics.Gap, offset)
}

func TestKeyRepeatEventsDoNotMoveFocus(t *testing.T) {
	h := newTestHost(t, "Login")
	down := func(repeat uint8) *sdl.KeyboardEvent {
		return &sdl.KeyboardEvent{State: sdl.PRESSED, Repeat: repeat, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}}
	}

	h.handleInput(down(0))
	assert.Equal(t, 1, h.App().FocusIndex())
	assert.True(t, h.repeat.IsHeld())

	// SDL auto-repeat is left to DirectionalInput.
	h.handleInput(down(1))
	h.handleInput(down(1))
	assert.Equal(t, 1, h.App().FocusIndex())
	assert.True(t, h.repeat.IsHeld())

	h.handleInput(&sdl.KeyboardEvent{State: sdl.RELEASED, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}})
	assert.False(t, h.repeat.IsHeld())
}

func TestThemeForBlackAccent(t *testing.T) {
	cfg := config.Default().Theme
	black := uint32(0)
	cfg.AccentColor = &black

	theme := themeFor(cfg)
	assert.Equal(t, sdl.Color{A: 255}, theme.AccentColor)

	cfg.AccentColor = nil
	assert.Equal(t, internal.DefaultTheme(cfg.FontPath).AccentColor, themeFor(cfg).AccentColor)
}
