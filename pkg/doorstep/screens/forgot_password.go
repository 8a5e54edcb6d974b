package screens

import (
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/form"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/router"
)

// ForgotPassword asks for the email a reset link would go to. Nothing is sent.
type ForgotPassword struct {
	deps Deps

	Email *form.Field
}

// NewForgotPassword creates a password reset screen with an empty email field.
func NewForgotPassword(deps Deps) *ForgotPassword {
	return &ForgotPassword{
		deps:  deps,
		Email: form.New(IDEmail, deps.t(locale.ResetEmailPlaceholder)),
	}
}

func (s *ForgotPassword) Route() router.Route { return RouteForgotPassword }

func (s *ForgotPassword) dependencies() Deps { return s.deps }

func (s *ForgotPassword) Render() View {
	return View{
		Route:       RouteForgotPassword,
		Title:       s.deps.t(locale.ForgotPasswordTitle),
		HeaderShown: true,
		Nodes: []Node{
			heading(s.deps.t(locale.ForgotPasswordHeading)),
			input(s.Email),
			button(IDSubmit, s.deps.t(locale.Submit), Notify(s.deps.t(locale.ForgotPasswordSuccess))),
			button(IDGoToLogin, s.deps.t(locale.BackToLogin), NavigateTo(NameLogin)),
		},
	}
}

