package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
)

// metrics are the row heights for each node kind, taken from the loaded fonts.
type metrics struct {
	Heading    int32
	Subheading int32
	Control    int32 // Inputs and buttons, including their box padding
	Link       int32
	Gap        int32
}

func fontMetrics() metrics {
	control := internal.Symmetric(12, 0)
	_, controlHeight := control.Outset(0, int32(internal.Fonts.MediumFont.Height()))

	return metrics{
		Heading:    int32(internal.Fonts.LargeFont.Height()),
		Subheading: int32(internal.Fonts.SmallFont.Height()),
		Control:    controlHeight,
		Link:       int32(internal.Fonts.SmallFont.Height()),
		Gap:        16,
	}
}

type placement struct {
	Node screens.Node
	Rect sdl.Rect
}

// layoutNodes stacks nodes top to bottom inside content. Text rows keep their
// natural height; the first control after text gets an extra gap.
func layoutNodes(nodes []screens.Node, content sdl.Rect, m metrics) []placement {
	placements := make([]placement, 0, len(nodes))
	y := content.Y
	previousWasText := false

	for _, n := range nodes {
		var h int32
		isText := false
		switch n.Kind {
		case screens.NodeHeading:
			h, isText = m.Heading, true
		case screens.NodeSubheading:
			h, isText = m.Subheading, true
		case screens.NodeInput, screens.NodeButton:
			h = m.Control
		case screens.NodeLink:
			h = m.Link
		}

		if previousWasText && !isText {
			y += m.Gap
		}
		placements = append(placements, placement{
			Node: n,
			Rect: sdl.Rect{X: content.X, Y: y, W: content.W, H: h},
		})
		y += h + m.Gap
		previousWasText = isText
	}

	return placements
}

// scrollOffset returns how far to shift content up so the focused row fits in
// the viewport.
func scrollOffset(placements []placement, focusedID string, viewport sdl.Rect, gap int32) int32 {
	if focusedID == "" {
		return 0
	}
	for _, p := range placements {
		if p.Node.ID != focusedID {
			continue
		}
		bottom := p.Rect.Y + p.Rect.H
		limit := viewport.Y + viewport.H
		if bottom <= limit {
			return 0
		}
		return bottom - limit + gap
	}
	return 0
}
