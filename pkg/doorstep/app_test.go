package doorstep

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func newTestApp(t *testing.T, initial string) (*App, *recordingNotifier) {
	t.Helper()

	rec := &recordingNotifier{}
	app, err := NewApp(AppOptions{
		InitialRoute: initial,
		Notifier:     rec,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return app, rec
}

func TestNewAppStartsAtOnboarding(t *testing.T) {
	app, _ := newTestApp(t, "")

	assert.Equal(t, screens.RouteOnboarding, app.Current())
	assert.Equal(t, []string{"Onboarding"}, app.History())
	assert.False(t, app.CanGoBack())
	assert.True(t, app.Running())
	assert.Len(t, app.Routes(), 4)
}

func TestNewAppInitialRoute(t *testing.T) {
	app, _ := newTestApp(t, "ForgotPassword")
	assert.Equal(t, "ForgotPassword", app.CurrentName())

	_, err := NewApp(AppOptions{InitialRoute: "Dashboard"})
	assert.True(t, IsInvalidRouteTarget(err))
}

func TestNavigateScenario(t *testing.T) {
	app, _ := newTestApp(t, "")

	require.NoError(t, app.Navigate("Login"))
	assert.Equal(t, screens.RouteLogin, app.Current())

	require.NoError(t, app.Navigate("Signup"))
	assert.Equal(t, screens.RouteSignup, app.Current())

	assert.True(t, app.GoBack())
	assert.Equal(t, screens.RouteLogin, app.Current())
	assert.Equal(t, []string{"Onboarding", "Login"}, app.History())
}

func TestNavigateInvalidTargetIsNoop(t *testing.T) {
	app, _ := newTestApp(t, "")
	require.NoError(t, app.Navigate("Login"))

	err := app.Navigate("Settings")

	assert.ErrorIs(t, err, ErrInvalidRouteTarget)
	assert.Equal(t, "Login", app.CurrentName())
	assert.Equal(t, []string{"Onboarding", "Login"}, app.History())
}

func TestGoBackOnInitialIsNoop(t *testing.T) {
	app, _ := newTestApp(t, "")

	assert.False(t, app.GoBack())
	assert.Equal(t, screens.RouteOnboarding, app.Current())
}

func TestLoginSubmitScenario(t *testing.T) {
	app, rec := newTestApp(t, "")
	require.NoError(t, app.Navigate("Login"))

	require.NoError(t, app.SetField(screens.IDEmail, "a@b.com"))
	require.NoError(t, app.SetField(screens.IDPassword, "x"))
	require.NoError(t, app.Activate(screens.IDSubmit))

	assert.Equal(t, []string{"Login Successful!"}, rec.messages)
	assert.Equal(t, int64(1), app.Notifications())
	assert.Equal(t, screens.RouteLogin, app.Current())

	email, err := app.Field(screens.IDEmail)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
}

func TestButtonsDriveFocusAndActivation(t *testing.T) {
	app, _ := newTestApp(t, "")

	focused, ok := app.Focused()
	require.True(t, ok)
	assert.Equal(t, screens.IDGoToLogin, focused.ID)

	app.Press(constants.VirtualButtonDown)
	focused, _ = app.Focused()
	assert.Equal(t, screens.IDGoToSignup, focused.ID)

	// Wraps around.
	app.Press(constants.VirtualButtonDown)
	focused, _ = app.Focused()
	assert.Equal(t, screens.IDGoToLogin, focused.ID)
	app.Press(constants.VirtualButtonUp)
	focused, _ = app.Focused()
	assert.Equal(t, screens.IDGoToSignup, focused.ID)

	app.Press(constants.VirtualButtonA)
	assert.Equal(t, "Signup", app.CurrentName())
	assert.Equal(t, 0, app.FocusIndex())

	app.Press(constants.VirtualButtonB)
	assert.Equal(t, "Onboarding", app.CurrentName())
}

func TestTypingIntoFocusedInput(t *testing.T) {
	app, rec := newTestApp(t, "Login")

	require.NoError(t, app.Type("a@b"))
	require.NoError(t, app.Type(".comm"))
	require.NoError(t, app.Erase())

	app.Press(constants.VirtualButtonDown)
	require.NoError(t, app.Type("pw"))

	// A on an input does nothing.
	app.Press(constants.VirtualButtonA)
	assert.Empty(t, rec.messages)

	require.NoError(t, app.Focus(screens.IDSubmit))
	app.Press(constants.VirtualButtonStart)

	email, _ := app.Field(screens.IDEmail)
	password, _ := app.Field(screens.IDPassword)
	assert.Equal(t, "a@b.com", email)
	assert.Equal(t, "pw", password)
	assert.Equal(t, []string{"Login Successful!"}, rec.messages)
	assert.Equal(t, "Login", app.CurrentName())
}

func TestTypeWithoutFocusedInput(t *testing.T) {
	app, _ := newTestApp(t, "")

	assert.ErrorIs(t, app.Type("x"), ErrNoFocus)
	assert.ErrorIs(t, app.Erase(), ErrNoFocus)
	assert.ErrorIs(t, app.Focus("nothing"), ErrUnknownElement)
	_, err := app.Field("nothing")
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestInertButtonsDoNothing(t *testing.T) {
	app, rec := newTestApp(t, "Login")

	require.NoError(t, app.Focus(screens.IDGoogle))
	app.Press(constants.VirtualButtonA)

	assert.Empty(t, rec.messages)
	assert.Equal(t, []string{"Login"}, app.History())
}

func TestSpanishApp(t *testing.T) {
	loc, err := locale.New("es")
	require.NoError(t, err)
	rec := &recordingNotifier{}

	app, err := NewApp(AppOptions{InitialRoute: "Signup", Localizer: loc, Notifier: rec})
	require.NoError(t, err)
	require.NoError(t, app.Activate(screens.IDSubmit))

	assert.Equal(t, []string{"¡Registro correcto!"}, rec.messages)
	assert.Equal(t, loc, app.Localizer())
}

func TestQuitFromAnotherGoroutine(t *testing.T) {
	app, _ := newTestApp(t, "")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Quit()
	}()
	wg.Wait()

	assert.False(t, app.Running())
}

func TestInfrastructureError(t *testing.T) {
	err := NewInfrastructureError("load_font", io.ErrUnexpectedEOF)

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "doorstep: load_font: unexpected EOF", err.Error())
	assert.Equal(t, "doorstep: render", NewInfrastructureError("render", nil).Error())
	assert.False(t, IsInfrastructureError(ErrNoFocus))
}
