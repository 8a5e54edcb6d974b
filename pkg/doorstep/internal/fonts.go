package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the three sizes every screen uses.
type FontSet struct {
	LargeFont  *ttf.Font // Headings
	MediumFont *ttf.Font // Inputs, buttons, header
	SmallFont  *ttf.Font // Subheadings, links, hints
}

var Fonts FontSet

func initFonts(path string, base int) error {
	large, err := ttf.OpenFont(path, base*3/2)
	if err != nil {
		return err
	}
	medium, err := ttf.OpenFont(path, base)
	if err != nil {
		large.Close()
		return err
	}
	small, err := ttf.OpenFont(path, base*3/4)
	if err != nil {
		large.Close()
		medium.Close()
		return err
	}

	Fonts = FontSet{LargeFont: large, MediumFont: medium, SmallFont: small}
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = FontSet{}
}
