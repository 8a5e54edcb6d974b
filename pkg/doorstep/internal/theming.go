package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of every screen.
type Theme struct {
	HighlightColor       sdl.Color // Focused element background
	AccentColor          sdl.Color // Buttons and header bar
	ButtonLabelColor     sdl.Color // Text inside buttons
	TextColor            sdl.Color // Headings and input values
	HighlightedTextColor sdl.Color // Text on the focused element
	HintColor            sdl.Color // Placeholders, subheadings and links
	BackgroundColor      sdl.Color // Screen background color
	InputColor           sdl.Color // Input box fill
	FontPath             string    // Path to the UI font
	FontSize             int       // Base font size; headings and hints scale from it
}

var currentTheme = DefaultTheme("")

// DefaultTheme is a dark flat theme.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(0x3A5BD9),
		ButtonLabelColor:     HexToColor(0xFFFFFF),
		TextColor:            HexToColor(0xF0F0F0),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0x9A9AA5),
		BackgroundColor:      HexToColor(0x1C1C22),
		InputColor:           HexToColor(0x32323C),
		FontPath:             fontPath,
		FontSize:             28,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
