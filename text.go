package oled

import (
	"fmt"
	"image"

	"github.com/BeatGlow/oled/font"
	"github.com/BeatGlow/oled/pixel"
)

// SetCursor moves the text cursor to (x, y), the top-left corner of the next
// glyph cell.
func (d *Device) SetCursor(x, y int) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return ErrBounds
	}
	d.cursor = image.Point{X: x, Y: y}
	return nil
}

// Cursor returns the current text cursor position.
func (d *Device) Cursor() image.Point {
	return d.cursor
}

// PutChar draws one character at the cursor and advances the cursor by the
// font width. The blit is opaque: glyph bits are drawn in c and the rest of
// the cell in the opposite color, so text overwrites its background. The
// cursor does not move when the glyph cell does not fit on the panel.
func (d *Device) PutChar(ch rune, f *font.Font, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if f == nil {
		return ErrInvalidParams
	}

	w, h := int(f.Width), int(f.Height)
	if d.width <= d.cursor.X+w || d.height <= d.cursor.Y+h {
		return ErrBounds
	}

	rows, err := f.Glyph(ch)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	for i := 0; i < h; i++ {
		row := rows[i]
		for j := 0; j < w; j++ {
			if row<<uint(j)&0x8000 != 0 {
				_ = d.drawPixel(d.cursor.X+j, d.cursor.Y+i, c)
			} else {
				_ = d.drawPixel(d.cursor.X+j, d.cursor.Y+i, pixel.Mono{On: !c.On})
			}
		}
	}

	d.cursor.X += w
	return nil
}

// PutString draws s character by character and stops at the first failure,
// leaving the cursor after the last character drawn.
func (d *Device) PutString(s string, f *font.Font, c pixel.Mono) error {
	for _, ch := range s {
		if err := d.PutChar(ch, f, c); err != nil {
			return err
		}
	}
	return nil
}
