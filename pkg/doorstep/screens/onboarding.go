package screens

import (
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/router"
)

// Onboarding is the headerless welcome screen. It has no fields.
type Onboarding struct {
	deps Deps
}

// NewOnboarding creates the welcome screen.
func NewOnboarding(deps Deps) *Onboarding {
	return &Onboarding{deps: deps}
}

func (s *Onboarding) Route() router.Route { return RouteOnboarding }

func (s *Onboarding) dependencies() Deps { return s.deps }

func (s *Onboarding) Render() View {
	return View{
		Route: RouteOnboarding,
		Nodes: []Node{
			heading(s.deps.t(locale.OnboardingHeading)),
			subheading(s.deps.t(locale.OnboardingSubheading)),
			button(IDGoToLogin, s.deps.t(locale.GoToLogin), NavigateTo(NameLogin)),
			button(IDGoToSignup, s.deps.t(locale.GoToSignup), NavigateTo(NameSignup)),
		},
	}
}

