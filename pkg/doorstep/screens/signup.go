package screens

import (
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/form"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/router"
)

// Signup collects a username, email and password. Submit only confirms.
type Signup struct {
	deps Deps

	Username *form.Field
	Email    *form.Field
	Password *form.Field
}

// NewSignup creates a signup screen with empty fields.
func NewSignup(deps Deps) *Signup {
	return &Signup{
		deps:     deps,
		Username: form.New(IDUsername, deps.t(locale.UsernamePlaceholder)),
		Email:    form.New(IDEmail, deps.t(locale.EmailPlaceholder)),
		Password: form.NewSecure(IDPassword, deps.t(locale.PasswordPlaceholder)),
	}
}

func (s *Signup) Route() router.Route { return RouteSignup }

func (s *Signup) dependencies() Deps { return s.deps }

func (s *Signup) Render() View {
	return View{
		Route:       RouteSignup,
		Title:       s.deps.t(locale.SignupTitle),
		HeaderShown: true,
		Nodes: []Node{
			heading(s.deps.t(locale.SignupHeading)),
			input(s.Username),
			input(s.Email),
			input(s.Password),
			button(IDSubmit, s.deps.t(locale.Submit), Notify(s.deps.t(locale.SignupSuccess))),
			button(IDGoToLogin, s.deps.t(locale.GoToLogin), NavigateTo(NameLogin)),
		},
	}
}

