package internal

import (
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a virtual button press or release decoded from an SDL event.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool // Keyboard auto-repeat
}

const axisDeadZone = 16000

// InputProcessor turns keyboard and controller events into virtual buttons.
// Stick axes are tracked so a tilt produces one press and one release.
type InputProcessor struct {
	axisState map[sdl.GameControllerAxis]constants.VirtualButton
}

func NewInputProcessor() *InputProcessor {
	return &InputProcessor{axisState: make(map[sdl.GameControllerAxis]constants.VirtualButton)}
}

// ProcessSDLEvent returns nil for events that do not map to a virtual button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button := keyToButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		button := controllerToButton(sdl.GameControllerButton(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerAxisEvent:
		return p.processAxis(sdl.GameControllerAxis(e.Axis), e.Value)
	}
	return nil
}

func (p *InputProcessor) processAxis(axis sdl.GameControllerAxis, value int16) *Event {
	var button constants.VirtualButton
	switch axis {
	case sdl.CONTROLLER_AXIS_LEFTX:
		if value < -axisDeadZone {
			button = constants.VirtualButtonLeft
		} else if value > axisDeadZone {
			button = constants.VirtualButtonRight
		}
	case sdl.CONTROLLER_AXIS_LEFTY:
		if value < -axisDeadZone {
			button = constants.VirtualButtonUp
		} else if value > axisDeadZone {
			button = constants.VirtualButtonDown
		}
	default:
		return nil
	}

	previous := p.axisState[axis]
	if button == previous {
		return nil
	}
	p.axisState[axis] = button

	if button == constants.VirtualButtonUnassigned {
		return &Event{Button: previous, Pressed: false}
	}
	// A flick straight across the dead zone skips the release of the old
	// direction; the newer press replaces it.
	return &Event{Button: button, Pressed: true}
}

// Backspace is handled by the host as text editing, and letters arrive as
// text input events, so neither is mapped here.
func keyToButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN, sdl.K_TAB:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE:
		return constants.VirtualButtonB
	case sdl.K_F1:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

func controllerToButton(button sdl.GameControllerButton) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}
