// Package font provides fixed-cell bitmap fonts for monochrome panels.
//
// A Font stores one bitmap per character for a contiguous run of code
// points, every glyph in the same Width×Height cell. Fonts are built from
// any [golang.org/x/image/font.Face], including TrueType faces parsed with
// freetype.
package font

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNoGlyph is returned for characters outside the range covered by a Font.
var ErrNoGlyph = errors.New("font: no glyph for character")

// Font is a fixed-cell bitmap font. Glyph rows are packed MSB first from
// bit 15, one uint16 per pixel row.
type Font struct {
	// Width of the glyph cell in pixels, at most 16.
	Width uint8

	// Height of the glyph cell in pixels.
	Height uint8

	first rune
	rows  []uint16
}

// New creates a font from packed glyph rows. The rows hold Height entries
// per glyph for a contiguous run of code points starting at first.
func New(width, height uint8, first rune, rows []uint16) (*Font, error) {
	if width == 0 || width > 16 || height == 0 {
		return nil, fmt.Errorf("font: unsupported %dx%d glyph cell", width, height)
	}
	if len(rows) == 0 || len(rows)%int(height) != 0 {
		return nil, fmt.Errorf("font: %d glyph rows is not a multiple of the glyph height %d", len(rows), height)
	}
	return &Font{
		Width:  width,
		Height: height,
		first:  first,
		rows:   rows,
	}, nil
}

// Count returns the number of characters covered by the font.
func (f *Font) Count() int {
	return len(f.rows) / int(f.Height)
}

// First returns the first code point covered by the font.
func (f *Font) First() rune {
	return f.first
}

// Glyph returns the Height bitmap rows for ch, or ErrNoGlyph if ch falls
// outside the covered range. The returned slice is read-only shared data.
func (f *Font) Glyph(ch rune) ([]uint16, error) {
	i := int(ch - f.first)
	if ch < f.first || i >= f.Count() {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, ch)
	}
	h := int(f.Height)
	return f.rows[i*h : (i+1)*h : (i+1)*h], nil
}

// StringSize returns the pixel extent of s rendered in f.
func (f *Font) StringSize(s string) (w, h int) {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0, 0
	}
	return n * int(f.Width), int(f.Height)
}
