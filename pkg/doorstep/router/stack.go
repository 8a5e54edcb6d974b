package router

// StackEntry represents a single entry in the navigation history.
// It stores the route identifier and the mounted screen instance for that route,
// so returning to it restores the instance with its field values intact.
type StackEntry[V any] struct {
	Route Route
	View  V
}

// Stack manages navigation history for back navigation.
// The top entry is always the route currently on screen.
type Stack[V any] struct {
	entries []StackEntry[V]
}

// NewStack creates a new empty navigation stack.
func NewStack[V any]() *Stack[V] {
	return &Stack[V]{
		entries: make([]StackEntry[V], 0),
	}
}

// Push adds a new entry to the stack.
// Called when navigating forward to a new screen.
func (s *Stack[V]) Push(route Route, view V) {
	s.entries = append(s.entries, StackEntry[V]{
		Route: route,
		View:  view,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack[V]) Pop() *StackEntry[V] {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	var zero StackEntry[V]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack[V]) Peek() *StackEntry[V] {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[V]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[V]) Len() int {
	return len(s.entries)
}

// Routes returns the visited routes, oldest first.
func (s *Stack[V]) Routes() []Route {
	routes := make([]Route, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.Route
	}
	return routes
}

