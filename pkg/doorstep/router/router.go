package router

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal/logging"
)

// Route is a type-safe identifier for screens.
// Applications should define their own Route constants using iota.
//
// Example:
//
//	const (
//	    RouteHome Route = iota
//	    RouteSettings
//	)
type Route int

// RouteNone is returned by Current before the router has been started.
const RouteNone Route = -1

var (
	// ErrInvalidRouteTarget indicates a navigate call named a route that is not registered.
	// The router state is left untouched when this is returned.
	ErrInvalidRouteTarget = errors.New("invalid route target")

	// ErrNotStarted is returned by operations that need a mounted route.
	ErrNotStarted = errors.New("router not started")

	// ErrDuplicateRoute is returned by Register when a route or name is already taken.
	ErrDuplicateRoute = errors.New("route already registered")
)

// Navigator is the capability handed to every mounted screen.
// Errors are absorbed: navigating to an unknown name does nothing.
type Navigator interface {
	Navigate(name string)
	GoBack()
}

// MountFunc builds a fresh screen instance. It is called every time its route is
// pushed, so instances never share state.
type MountFunc[V any] func(nav Navigator) V

// Definition is one row of the static route table.
type Definition[V any] struct {
	Route       Route
	Name        string // Name used by Navigate (e.g. "Login")
	Title       string // Header title; ignored when HeaderShown is false
	HeaderShown bool
	Mount       MountFunc[V]
}

// TransitionKind describes how the current route changed.
type TransitionKind int

const (
	TransitionStart TransitionKind = iota
	TransitionPush
	TransitionBack
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionStart:
		return "start"
	case TransitionPush:
		return "push"
	case TransitionBack:
		return "back"
	default:
		return "unknown"
	}
}

// TransitionFunc is called after each completed transition.
// from is RouteNone for the initial mount.
type TransitionFunc func(from, to Route, kind TransitionKind)

// Router owns the route table and the navigation history.
// It is not safe for concurrent use; hosts drive it from a single event loop.
type Router[V any] struct {
	routes     map[Route]Definition[V]
	names      map[string]Route
	order      []Route
	transition TransitionFunc
	stack      *Stack[V]
	started    bool
}

// New creates a new Router.
func New[V any]() *Router[V] {
	return &Router[V]{
		routes: make(map[Route]Definition[V]),
		names:  make(map[string]Route),
		stack:  NewStack[V](),
	}
}

// Register adds a route to the table. The table is frozen once Start is called.
func (r *Router[V]) Register(def Definition[V]) error {
	if r.started {
		return fmt.Errorf("router: register %q after start", def.Name)
	}
	if def.Mount == nil {
		return fmt.Errorf("router: route %q has no mount function", def.Name)
	}
	if _, ok := r.routes[def.Route]; ok {
		return fmt.Errorf("router: route %d: %w", def.Route, ErrDuplicateRoute)
	}
	if _, ok := r.names[def.Name]; ok {
		return fmt.Errorf("router: route %q: %w", def.Name, ErrDuplicateRoute)
	}

	r.routes[def.Route] = def
	r.names[def.Name] = def.Route
	r.order = append(r.order, def.Route)
	return nil
}

// OnTransition sets the observer called after every transition.
func (r *Router[V]) OnTransition(fn TransitionFunc) *Router[V] {
	r.transition = fn
	return r
}

// Start mounts the initial route. History becomes [initial].
func (r *Router[V]) Start(initial Route) error {
	if r.started {
		return fmt.Errorf("router: already started")
	}
	def, ok := r.routes[initial]
	if !ok {
		return fmt.Errorf("router: initial route %d: %w", initial, ErrInvalidRouteTarget)
	}

	r.started = true
	r.stack.Push(initial, def.Mount(r.navigator()))
	r.notify(RouteNone, initial, TransitionStart)
	return nil
}

// Navigate pushes a fresh instance of the named route.
// Navigating to the route already on screen does nothing.
func (r *Router[V]) Navigate(name string) error {
	route, ok := r.names[name]
	if !ok {
		return fmt.Errorf("router: navigate %q: %w", name, ErrInvalidRouteTarget)
	}
	return r.NavigateTo(route)
}

// NavigateTo is Navigate by identifier.
func (r *Router[V]) NavigateTo(route Route) error {
	if !r.started {
		return ErrNotStarted
	}
	def, ok := r.routes[route]
	if !ok {
		return fmt.Errorf("router: navigate %d: %w", route, ErrInvalidRouteTarget)
	}

	from := r.Current()
	if from == route {
		return nil
	}

	r.stack.Push(route, def.Mount(r.navigator()))
	r.notify(from, route, TransitionPush)
	return nil
}

// GoBack discards the current instance and returns to the previous route.
// On the initial route it does nothing and returns false.
func (r *Router[V]) GoBack() bool {
	if r.stack.Len() <= 1 {
		return false
	}

	popped := r.stack.Pop()
	to := r.stack.Peek().Route
	r.notify(popped.Route, to, TransitionBack)
	return true
}

// CanGoBack reports whether GoBack would move.
func (r *Router[V]) CanGoBack() bool {
	return r.stack.Len() > 1
}

// Current returns the route on screen, or RouteNone before Start.
func (r *Router[V]) Current() Route {
	top := r.stack.Peek()
	if top == nil {
		return RouteNone
	}
	return top.Route
}

// CurrentView returns the mounted instance of the current route.
func (r *Router[V]) CurrentView() (V, error) {
	top := r.stack.Peek()
	if top == nil {
		var zero V
		return zero, ErrNotStarted
	}
	return top.View, nil
}

// Definition returns the table row for a route.
func (r *Router[V]) Definition(route Route) (Definition[V], bool) {
	def, ok := r.routes[route]
	return def, ok
}

// Lookup resolves a route name.
func (r *Router[V]) Lookup(name string) (Route, bool) {
	route, ok := r.names[name]
	return route, ok
}

// Name returns the registered name of a route, or "" if unknown.
func (r *Router[V]) Name(route Route) string {
	return r.routes[route].Name
}

// Routes returns the route table in registration order.
func (r *Router[V]) Routes() []Definition[V] {
	defs := make([]Definition[V], 0, len(r.order))
	for _, route := range r.order {
		defs = append(defs, r.routes[route])
	}
	return defs
}

// History returns the visited routes, oldest first. The last element is Current.
func (r *Router[V]) History() []Route {
	return r.stack.Routes()
}

func (r *Router[V]) notify(from, to Route, kind TransitionKind) {
	if r.transition != nil {
		r.transition(from, to, kind)
	}
}

func (r *Router[V]) navigator() Navigator {
	return navigator[V]{r: r}
}

type navigator[V any] struct {
	r *Router[V]
}

func (n navigator[V]) Navigate(name string) {
	if err := n.r.Navigate(name); err != nil {
		logging.GetInternalLogger().Debug("Navigation ignored", "target", name, "error", err)
	}
}

func (n navigator[V]) GoBack() {
	n.r.GoBack()
}
