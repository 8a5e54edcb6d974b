package screens

import (
	"log/slog"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/router"
)

// Notifier shows a non-blocking confirmation message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) {
	f(message)
}

// LogNotifier writes notifications to a logger. Used when no host surface exists.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(message string) {
	n.Logger.Info("Notification", "message", message)
}

// ActionKind classifies what pressing a button does.
type ActionKind int

const (
	ActionNone     ActionKind = iota // Inert, e.g. the social sign-in buttons
	ActionNotify                     // Show Message; history is untouched
	ActionNavigate                   // Navigate to Target
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionNotify:
		return "notify"
	case ActionNavigate:
		return "navigate"
	default:
		return "unknown"
	}
}

// Action is the trigger bound to a button or link.
type Action struct {
	Kind    ActionKind
	Message string // ActionNotify
	Target  string // ActionNavigate, a route name
}

// Notify builds an ActionNotify.
func Notify(message string) Action {
	return Action{Kind: ActionNotify, Message: message}
}

// NavigateTo builds an ActionNavigate.
func NavigateTo(name string) Action {
	return Action{Kind: ActionNavigate, Target: name}
}

// Fire runs the action.
func (a Action) Fire(nav router.Navigator, notifier Notifier) {
	switch a.Kind {
	case ActionNotify:
		notifier.Notify(a.Message)
	case ActionNavigate:
		nav.Navigate(a.Target)
	}
}
