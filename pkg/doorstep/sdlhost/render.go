package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
)

var (
	screenMargins = internal.Symmetric(24, 40)
	boxPadding    = internal.Symmetric(12, 16)
)

func (h *Host) render() {
	window := internal.GetWindow()
	renderer := window.Renderer

	window.Clear()

	width, height := window.GetWidth(), window.GetHeight()
	view := h.app.View()

	top := int32(0)
	if view.HeaderShown {
		top = h.renderHeader(renderer, view, width)
	}

	viewport := sdl.Rect{X: 0, Y: top, W: width, H: height - top}
	content := screenMargins.Inset(viewport)

	focusedID := ""
	if n, ok := h.app.Focused(); ok {
		focusedID = n.ID
	}

	m := fontMetrics()
	placements := layoutNodes(view.Nodes, content, m)
	offset := scrollOffset(placements, focusedID, content, m.Gap)

	renderer.SetClipRect(&viewport)
	for _, p := range placements {
		p.Rect.Y -= offset
		h.renderNode(renderer, p, p.Node.ID != "" && p.Node.ID == focusedID)
	}
	renderer.SetClipRect(nil)

	if message, showing := h.queue.Current(); showing {
		h.renderOverlay(renderer, message, width, height)
	}

	window.Present()
}

// renderHeader draws the title bar and returns its height.
func (h *Host) renderHeader(renderer *sdl.Renderer, view screens.View, width int32) int32 {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont
	bar := sdl.Rect{W: width, H: int32(font.Height()) + 2*boxPadding.Top}

	fillRect(renderer, bar, theme.AccentColor)
	h.drawText(renderer, font, view.Title, bar, theme.ButtonLabelColor, constants.TextAlignCenter)

	if h.app.CanGoBack() {
		back := boxPadding.Inset(bar)
		h.drawText(renderer, internal.Fonts.SmallFont, "< "+h.app.Localizer().T(locale.Back), back,
			theme.ButtonLabelColor, constants.TextAlignLeft)
	}

	return bar.H + constants.DefaultTitleSpacing
}

func (h *Host) renderNode(renderer *sdl.Renderer, p placement, focused bool) {
	theme := internal.GetTheme()
	n := p.Node

	switch n.Kind {
	case screens.NodeHeading:
		h.drawText(renderer, internal.Fonts.LargeFont, n.Text, p.Rect, theme.TextColor, constants.TextAlignLeft)

	case screens.NodeSubheading:
		h.drawText(renderer, internal.Fonts.SmallFont, n.Text, p.Rect, theme.HintColor, constants.TextAlignLeft)

	case screens.NodeInput:
		fillRect(renderer, p.Rect, theme.InputColor)
		if focused {
			outlineRect(renderer, p.Rect, theme.HighlightColor, 2)
		}
		text, color := n.Field.Display(), theme.TextColor
		if text == "" {
			text, color = n.Field.Placeholder, theme.HintColor
		}
		h.drawText(renderer, internal.Fonts.MediumFont, text, boxPadding.Inset(p.Rect), color, constants.TextAlignLeft)

	case screens.NodeButton:
		fill, label := theme.AccentColor, theme.ButtonLabelColor
		if focused {
			fill, label = theme.HighlightColor, theme.HighlightedTextColor
		}
		fillRect(renderer, p.Rect, fill)
		h.drawText(renderer, internal.Fonts.MediumFont, n.Text, p.Rect, label, constants.TextAlignCenter)

	case screens.NodeLink:
		color := theme.HintColor
		if focused {
			color = theme.TextColor
		}
		w := h.drawText(renderer, internal.Fonts.SmallFont, n.Text, p.Rect, color, constants.TextAlignCenter)
		if focused {
			underline := sdl.Rect{X: p.Rect.X + (p.Rect.W-w)/2, Y: p.Rect.Y + p.Rect.H - 2, W: w, H: 2}
			fillRect(renderer, underline, color)
		}
	}
}

// renderOverlay dims the screen and shows message in a centered box.
func (h *Host) renderOverlay(renderer *sdl.Renderer, message string, width, height int32) {
	theme := internal.GetTheme()

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(0, 0, 0, 160)
	renderer.FillRect(&sdl.Rect{W: width, H: height})
	renderer.SetDrawBlendMode(sdl.BLENDMODE_NONE)

	boxWidth := width * 3 / 4
	if boxWidth > 800 {
		boxWidth = 800
	}
	messageHeight := int32(internal.Fonts.MediumFont.Height())
	hintHeight := int32(internal.Fonts.SmallFont.Height())
	spacing := int32(30)
	boxW, boxH := internal.UniformPadding(24).Outset(boxWidth, messageHeight+spacing+hintHeight)

	box := sdl.Rect{X: (width - boxW) / 2, Y: (height - boxH) / 2, W: boxW, H: boxH}
	fillRect(renderer, box, theme.BackgroundColor)
	outlineRect(renderer, box, theme.AccentColor, 2)

	inner := internal.UniformPadding(24).Inset(box)
	h.drawText(renderer, internal.Fonts.MediumFont, message,
		sdl.Rect{X: inner.X, Y: inner.Y, W: inner.W, H: messageHeight},
		theme.TextColor, constants.TextAlignCenter)
	h.drawText(renderer, internal.Fonts.SmallFont, "A: "+h.app.Localizer().T(locale.Dismiss),
		sdl.Rect{X: inner.X, Y: inner.Y + messageHeight + spacing, W: inner.W, H: hintHeight},
		theme.HintColor, constants.TextAlignCenter)
}

// drawText renders text vertically centered in area and returns its width.
// Empty strings draw nothing.
func (h *Host) drawText(renderer *sdl.Renderer, font *ttf.Font, text string, area sdl.Rect, color sdl.Color, align constants.TextAlign) int32 {
	if text == "" {
		return 0
	}

	t, err := h.cache.Text(renderer, font, text, color)
	if err != nil {
		h.logger.Debug("Failed to render text", "text", text, "error", err)
		return 0
	}

	x := area.X
	switch align {
	case constants.TextAlignCenter:
		x = area.X + (area.W-t.W)/2
	case constants.TextAlignRight:
		x = area.X + area.W - t.W
	}
	y := area.Y + (area.H-t.H)/2

	renderer.Copy(t.Texture, nil, &sdl.Rect{X: x, Y: y, W: t.W, H: t.H})
	return t.W
}

func fillRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}

func outlineRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color, thickness int32) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < thickness; i++ {
		renderer.DrawRect(&sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i})
	}
}
