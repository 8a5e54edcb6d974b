package doorstep

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/router"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidRouteTarget indicates a navigate call named an unregistered route.
	// Screens never see it; only hosts calling App.Navigate directly do.
	ErrInvalidRouteTarget = router.ErrInvalidRouteTarget

	// ErrUnknownElement indicates no element on the current screen has the given ID.
	ErrUnknownElement = screens.ErrUnknownElement

	// ErrNoFocus indicates a text edit arrived while no input had focus.
	ErrNoFocus = errors.New("no input has focus")
)

// InfrastructureError represents a host-level failure (SDL failed to start, the
// font is missing, etc.). These errors are fatal for the host that raised them.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init_sdl", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("doorstep: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("doorstep: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsInvalidRouteTarget checks if an error came from navigating to an unknown route.
func IsInvalidRouteTarget(err error) bool {
	return errors.Is(err, ErrInvalidRouteTarget)
}
