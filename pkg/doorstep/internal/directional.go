package internal

import (
	"time"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
)

// DirectionalInput tracks a held direction button and decides when it repeats.
// SDL key repeat is ignored; controllers do not send repeats at all, so the host
// uses this for both.
type DirectionalInput struct {
	held           constants.VirtualButton
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
	}
}

func isDirectional(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		return true
	}
	return false
}

// SetHeld records a press or release. Returns true if the button was directional.
// The most recent press wins when several directions are held. Pressing the
// direction that is already held keeps its repeat timing.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	if !isDirectional(button) {
		return false
	}

	if held {
		if d.held == button {
			return true
		}
		d.held = button
		d.hasRepeated = false
		d.lastRepeatTime = d.now()
	} else if d.held == button {
		d.Reset()
	}
	return true
}

// IsHeld returns true if a direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held != constants.VirtualButtonUnassigned
}

// Update checks if a repeat should fire. Call it every frame; it returns the held
// button when a repeat is due and VirtualButtonUnassigned otherwise.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update() constants.VirtualButton {
	if !d.IsHeld() {
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.now().Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = d.now()
		d.hasRepeated = true
		return d.held
	}

	return constants.VirtualButtonUnassigned
}

// Reset clears the held direction and timing state.
func (d *DirectionalInput) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
}
