// Package constants defines shared constants, types, and configuration values
// used throughout doorstep.
package constants

import (
	"os"
	"strings"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by doorstep.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"     // "DEV" enables windowed development mode
	WindowWidthEnvVar  = "WINDOW_WIDTH"    // Window width override in development mode
	WindowHeightEnvVar = "WINDOW_HEIGHT"   // Window height override in development mode
	DebugEnvVar        = "DOORSTEP_DEBUG"  // Any value raises the internal log level to debug
	ConfigPathEnvVar   = "DOORSTEP_CONFIG" // Config file used when --config is not given
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from a physical
// keyboard key or controller button.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) GetName() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

func (vb VirtualButton) String() string {
	return vb.GetName()
}

// ParseVirtualButton resolves a button name, case-insensitively.
func ParseVirtualButton(name string) (VirtualButton, bool) {
	for vb, n := range buttonNames {
		if vb != VirtualButtonUnassigned && strings.EqualFold(n, name) {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultTitleSpacing int32 = 5  // Vertical spacing below title text
	DefaultFrameDelay         = 16 // Milliseconds between frames (~60fps)
)
