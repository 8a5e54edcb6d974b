package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// Symmetric creates a Padding with separate vertical and horizontal values.
func Symmetric(vertical, horizontal int32) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Inset shrinks a rectangle by the padding.
func (p Padding) Inset(r sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
}

// Outset grows a content size to a box size.
func (p Padding) Outset(w, h int32) (int32, int32) {
	return w + p.Left + p.Right, h + p.Top + p.Bottom
}
