package office

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// Fonts holds the HUD faces. All are Go Mono at different sizes.
type Fonts struct {
	Small *text.GoTextFace
	HUD   *text.GoTextFace
	Big   *text.GoTextFace
}

// LoadFonts parses the embedded Go Mono font.
func LoadFonts() (*Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load gomono: %w", err)
	}
	return &Fonts{
		Small: &text.GoTextFace{Source: src, Size: 11},
		HUD:   &text.GoTextFace{Source: src, Size: 15},
		Big:   &text.GoTextFace{Source: src, Size: 48},
	}, nil
}

func drawText(dst *ebiten.Image, face text.Face, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// drawCentred draws s horizontally centred on cx.
func drawCentred(dst *ebiten.Image, face text.Face, s string, cx, y int, c color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, face, s, cx-int(w/2), y, c)
}
