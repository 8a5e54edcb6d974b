// Package cannoli provides the light theme used by the Cannoli custom firmware.
package cannoli

import (
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal"
)

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:       internal.HexToColor(0x000000),
		AccentColor:          internal.HexToColor(0x008080),
		ButtonLabelColor:     internal.HexToColor(0xFFFFFF),
		HintColor:            internal.HexToColor(0x555555),
		TextColor:            internal.HexToColor(0x000000),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		BackgroundColor:      internal.HexToColor(0xFFFFFF),
		InputColor:           internal.HexToColor(0xE6E6E6),
		FontPath:             fontPath,
		FontSize:             28,
	}
}
