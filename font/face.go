package font

import (
	"fmt"
	"image"
	"sync"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FromFace rasterizes the characters first through last of face into a
// fixed-cell bitmap font. The cell width is the widest glyph advance in the
// range; faces advancing more than 16 pixels are not supported.
func FromFace(face xfont.Face, first, last rune) (*Font, error) {
	if last < first {
		return nil, fmt.Errorf("font: empty character range %q..%q", first, last)
	}

	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()

	var w int
	for ch := first; ch <= last; ch++ {
		if adv, ok := face.GlyphAdvance(ch); ok && adv.Ceil() > w {
			w = adv.Ceil()
		}
	}
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("font: face has no glyphs in range %q..%q", first, last)
	}
	if w > 16 {
		return nil, fmt.Errorf("font: %d pixel glyph cell does not fit in 16 bit rows", w)
	}

	var (
		cell = image.NewGray(image.Rect(0, 0, w, h))
		dr   = &xfont.Drawer{
			Dst:  cell,
			Src:  image.White,
			Face: face,
		}
		rows = make([]uint16, 0, int(last-first+1)*h)
	)
	for ch := first; ch <= last; ch++ {
		for i := range cell.Pix {
			cell.Pix[i] = 0
		}
		dr.Dot = fixed.P(0, m.Ascent.Ceil())
		dr.DrawString(string(ch))

		for y := 0; y < h; y++ {
			var row uint16
			for x := 0; x < w; x++ {
				if cell.GrayAt(x, y).Y >= 0x80 {
					row |= 0x8000 >> uint(x)
				}
			}
			rows = append(rows, row)
		}
	}

	return New(uint8(w), uint8(h), first, rows)
}

// ParseTTF parses TrueType font data and rasterizes the printable ASCII
// range at the given pixel size.
func ParseTTF(data []byte, pixels float64) (*Font, error) {
	ft, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ft, &truetype.Options{
		Size:    pixels,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()
	return FromFace(face, ' ', '~')
}

var (
	fixed7x13     *Font
	fixed7x13Once sync.Once
)

// Fixed7x13 returns the builtin 7x13 font, rasterized once from
// basicfont.Face7x13. It covers the printable ASCII range.
func Fixed7x13() *Font {
	fixed7x13Once.Do(func() {
		f, err := FromFace(basicfont.Face7x13, ' ', '~')
		if err != nil {
			// basicfont.Face7x13 fits the cell constraints.
			panic(err)
		}
		fixed7x13 = f
	})
	return fixed7x13
}
