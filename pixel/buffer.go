package pixel

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// ErrBounds is returned by the checked pixel accessors for coordinates
// outside the buffer.
var ErrBounds = errors.New("pixel: coordinate out of bounds")

// Buffer is a 1-bit per pixel buffer in the vertical LSB layout used by
// paged monochrome panels: the buffer is divided in horizontal pages of 8
// pixel rows, one byte per column per page, bit 0 being the topmost row of
// the page.
//
// The pixel at (x, y) lives in byte x + (y/8)*Stride, bit y%8.
type Buffer struct {
	// Rect is the buffer bounding box.
	Rect image.Rectangle

	// Pix are the packed pixels, page after page.
	Pix []byte

	// Stride is the page width in bytes, equal to the width in pixels.
	Stride int
}

// NewBuffer allocates a buffer for a w×h pixel panel. The height is rounded
// up to a whole number of pages; the allocation is fixed for the lifetime of
// the buffer.
func NewBuffer(w, h int) *Buffer {
	pages := (h + 7) / 8
	return &Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, pages*w),
		Stride: w,
	}
}

// Pages returns the number of 8-row pages in the buffer.
func (p *Buffer) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

// Page returns the Stride-byte slice holding page n. The slice aliases the
// buffer contents.
func (p *Buffer) Page(n int) []byte {
	return p.Pix[n*p.Stride : (n+1)*p.Stride]
}

// SetPixel sets the pixel at (x, y), or returns ErrBounds if the coordinate
// falls outside the buffer.
func (p *Buffer) SetPixel(x, y int, c Mono) error {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return ErrBounds
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	if c.On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
	return nil
}

// PixelAt returns the pixel at (x, y), or ErrBounds if the coordinate falls
// outside the buffer.
func (p *Buffer) PixelAt(x, y int) (Mono, error) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Off, ErrBounds
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	return Mono{On: p.Pix[pos]&bit != 0}, nil
}

// Fill sets every pixel to c.
func (p *Buffer) Fill(c Mono) {
	var value byte
	if c.On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Clear sets every pixel to Off.
func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

// Invert complements every byte, turning every lit pixel off and vice versa.
func (p *Buffer) Invert() {
	for i := range p.Pix {
		p.Pix[i] = ^p.Pix[i]
	}
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) ColorModel() color.Model {
	return MonoModel
}

// At implements image.Image; out of bounds pixels read as transparent.
func (p *Buffer) At(x, y int) color.Color {
	c, err := p.PixelAt(x, y)
	if err != nil {
		return color.Transparent
	}
	return c
}

// Set implements draw.Image; out of bounds pixels are silently discarded.
func (p *Buffer) Set(x, y int, c color.Color) {
	_ = p.SetPixel(x, y, monoModel(c).(Mono))
}

// Interface checks.
var (
	_ image.Image = (*Buffer)(nil)
	_ draw.Image  = (*Buffer)(nil)
)
