package screens

import (
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/form"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/router"
)

// Login collects an email and password. Submit only confirms; nothing is checked.
type Login struct {
	deps Deps

	Email    *form.Field
	Password *form.Field
}

// NewLogin creates a login screen with empty fields.
func NewLogin(deps Deps) *Login {
	return &Login{
		deps:     deps,
		Email:    form.New(IDEmail, deps.t(locale.EmailPlaceholder)),
		Password: form.NewSecure(IDPassword, deps.t(locale.PasswordPlaceholder)),
	}
}

func (s *Login) Route() router.Route { return RouteLogin }

func (s *Login) dependencies() Deps { return s.deps }

func (s *Login) Render() View {
	return View{
		Route:       RouteLogin,
		Title:       s.deps.t(locale.LoginTitle),
		HeaderShown: true,
		Nodes: []Node{
			heading(s.deps.t(locale.LoginHeading)),
			input(s.Email),
			input(s.Password),
			button(IDSubmit, s.deps.t(locale.Submit), Notify(s.deps.t(locale.LoginSuccess))),
			// Social sign-in is presented but has no behaviour.
			button(IDGoogle, s.deps.t(locale.SignInWithGoogle), Action{}),
			button(IDApple, s.deps.t(locale.SignInWithApple), Action{}),
			button(IDGoToSignup, s.deps.t(locale.GoToSignup), NavigateTo(NameSignup)),
			link(IDForgotPassword, s.deps.t(locale.ForgotPasswordLink), NavigateTo(NameForgotPassword)),
		},
	}
}

