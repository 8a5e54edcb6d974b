// Package screens implements the four account-entry screens and their route table.
//
// Every screen owns its form fields as struct fields. A screen instance is created
// by the router each time its route is pushed and dropped when it is popped, so
// field values never carry over between instances.
package screens

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/router"
)

// Route identifiers.
const (
	RouteOnboarding router.Route = iota
	RouteLogin
	RouteSignup
	RouteForgotPassword
)

// Route names accepted by Navigate.
const (
	NameOnboarding     = "Onboarding"
	NameLogin          = "Login"
	NameSignup         = "Signup"
	NameForgotPassword = "ForgotPassword"
)

// Element IDs shared across screens.
const (
	IDEmail          = "email"
	IDPassword       = "password"
	IDUsername       = "username"
	IDSubmit         = "submit"
	IDGoToLogin      = "go-to-login"
	IDGoToSignup     = "go-to-signup"
	IDForgotPassword = "forgot-password"
	IDGoogle         = "sign-in-google"
	IDApple          = "sign-in-apple"
)

var (
	// ErrUnknownElement is returned when no node has the requested ID.
	ErrUnknownElement = errors.New("unknown element")

	// ErrNotInput is returned when setting text on a node that is not an input.
	ErrNotInput = errors.New("element is not an input")

	// ErrNotPressable is returned when pressing a node that is not a button or link.
	ErrNotPressable = errors.New("element is not pressable")
)

// Screen is a mounted screen instance.
// The interface is sealed: only this package's screens implement it.
type Screen interface {
	Route() router.Route
	Render() View
	dependencies() Deps
}

// Deps are the capabilities a screen is constructed with.
type Deps struct {
	Nav      router.Navigator
	Notifier Notifier
	Loc      *locale.Localizer
}

func (d Deps) t(id string) string {
	return d.Loc.T(id)
}

// Press fires the action bound to the button or link with the given ID.
func Press(s Screen, id string) error {
	n, ok := s.Render().Find(id)
	if !ok {
		return fmt.Errorf("press %q: %w", id, ErrUnknownElement)
	}
	if n.Kind != NodeButton && n.Kind != NodeLink {
		return fmt.Errorf("press %q: %w", id, ErrNotPressable)
	}
	deps := s.dependencies()
	n.Action.Fire(deps.Nav, deps.Notifier)
	return nil
}

// SetField sets the value of the input with the given ID.
func SetField(s Screen, id, value string) error {
	n, ok := s.Render().Find(id)
	if !ok {
		return fmt.Errorf("set %q: %w", id, ErrUnknownElement)
	}
	if n.Kind != NodeInput {
		return fmt.Errorf("set %q: %w", id, ErrNotInput)
	}
	n.Field.Set(value)
	return nil
}

// Table returns the static route table. Onboarding is the first row and the
// conventional initial route.
func Table(loc *locale.Localizer, notifier Notifier) []router.Definition[Screen] {
	deps := func(nav router.Navigator) Deps {
		return Deps{Nav: nav, Notifier: notifier, Loc: loc}
	}

	return []router.Definition[Screen]{
		{
			Route: RouteOnboarding,
			Name:  NameOnboarding,
			Mount: func(nav router.Navigator) Screen { return NewOnboarding(deps(nav)) },
		},
		{
			Route:       RouteLogin,
			Name:        NameLogin,
			Title:       loc.T(locale.LoginTitle),
			HeaderShown: true,
			Mount:       func(nav router.Navigator) Screen { return NewLogin(deps(nav)) },
		},
		{
			Route:       RouteSignup,
			Name:        NameSignup,
			Title:       loc.T(locale.SignupTitle),
			HeaderShown: true,
			Mount:       func(nav router.Navigator) Screen { return NewSignup(deps(nav)) },
		},
		{
			Route:       RouteForgotPassword,
			Name:        NameForgotPassword,
			Title:       loc.T(locale.ForgotPasswordTitle),
			HeaderShown: true,
			Mount:       func(nav router.Navigator) Screen { return NewForgotPassword(deps(nav)) },
		},
	}
}

// RouteNames lists the registered route names in table order.
func RouteNames() []string {
	return []string{NameOnboarding, NameLogin, NameSignup, NameForgotPassword}
}

// ParseRoute resolves a route name.
func ParseRoute(name string) (router.Route, bool) {
	switch name {
	case NameOnboarding:
		return RouteOnboarding, true
	case NameLogin:
		return RouteLogin, true
	case NameSignup:
		return RouteSignup, true
	case NameForgotPassword:
		return RouteForgotPassword, true
	default:
		return router.RouteNone, false
	}
}
