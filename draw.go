package oled

import (
	"github.com/BeatGlow/oled/pixel"
)

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawPixel commits one pixel with the output polarity applied. The only
// possible failure is an out of panel coordinate.
func (d *Device) drawPixel(x, y int, c pixel.Mono) error {
	if d.inverted {
		c.On = !c.On
	}
	if err := d.buf.SetPixel(x, y, c); err != nil {
		return ErrBounds
	}
	return nil
}

// DrawPixel sets the pixel at (x, y) to c, honoring the output polarity.
func (d *Device) DrawPixel(x, y int, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	return d.drawPixel(x, y, c)
}

// PixelAt returns the color at (x, y) as it was drawn, undoing the output
// polarity so a DrawPixel round-trips.
func (d *Device) PixelAt(x, y int) (pixel.Mono, error) {
	if !d.initialized {
		return pixel.Off, ErrNotInitialized
	}
	c, err := d.buf.PixelAt(x, y)
	if err != nil {
		return pixel.Off, ErrBounds
	}
	if d.inverted {
		c.On = !c.On
	}
	return c, nil
}

// DrawLine draws a line between (x0, y0) and (x1, y1). Endpoints outside the
// panel are clamped to the nearest edge, so off-screen lines are truncated
// rather than rejected.
func (d *Device) DrawLine(x0, y0, x1, y1 int, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}

	x0 = clamp(x0, d.width-1)
	x1 = clamp(x1, d.width-1)
	y0 = clamp(y0, d.height-1)
	y1 = clamp(y1, d.height-1)

	var (
		dx = abs(x1 - x0)
		dy = abs(y1 - y0)
		sx = 1
		sy = 1
	)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	// Vertical line.
	if dx == 0 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			_ = d.drawPixel(x0, y, c)
		}
		return nil
	}

	// Horizontal line.
	if dy == 0 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			_ = d.drawPixel(x, y0, c)
		}
		return nil
	}

	e := -dy
	if dx > dy {
		e = dx
	}
	e >>= 1

	for {
		_ = d.drawPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := e
		if e2 > -dx {
			e -= dy
			x0 += sx
		}
		if e2 < dy {
			e += dx
			y0 += sy
		}
	}
}

// DrawRectangle draws the outline of a rectangle with its top-left corner at
// (x, y). The width and height are capped so the rectangle never extends
// past the panel edge.
func (d *Device) DrawRectangle(x, y, w, h int, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return ErrBounds
	}
	if w < 0 || h < 0 {
		return ErrInvalidParams
	}

	if x+w > d.width-1 {
		w = d.width - 1 - x
	}
	if y+h > d.height-1 {
		h = d.height - 1 - y
	}

	if err := d.DrawLine(x, y, x+w, y, c); err != nil { // top
		return err
	}
	if err := d.DrawLine(x, y+h, x+w, y+h, c); err != nil { // bottom
		return err
	}
	if err := d.DrawLine(x, y, x, y+h, c); err != nil { // left
		return err
	}
	return d.DrawLine(x+w, y, x+w, y+h, c) // right
}

// DrawFilledRectangle draws a filled rectangle with its top-left corner at
// (x, y), with the same edge capping as DrawRectangle.
func (d *Device) DrawFilledRectangle(x, y, w, h int, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return ErrBounds
	}
	if w < 0 || h < 0 {
		return ErrInvalidParams
	}

	if x+w > d.width-1 {
		w = d.width - 1 - x
	}
	if y+h > d.height-1 {
		h = d.height - 1 - y
	}

	for i := 0; i <= h; i++ {
		if err := d.DrawLine(x, y+i, x+w, y+i, c); err != nil {
			return err
		}
	}
	return nil
}

// DrawTriangle draws the outline of the triangle with the given vertices.
func (d *Device) DrawTriangle(x1, y1, x2, y2, x3, y3 int, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if err := d.DrawLine(x1, y1, x2, y2, c); err != nil {
		return err
	}
	if err := d.DrawLine(x2, y2, x3, y3, c); err != nil {
		return err
	}
	return d.DrawLine(x3, y3, x1, y1, c)
}

// DrawFilledTriangle fills the triangle with the given vertices by sweeping
// a line from points along the (x1, y1)-(x2, y2) leg to the fixed vertex
// (x3, y3). The sweep is a coarse fill suited to small shapes; large
// triangles may show gaps near shallow edges.
func (d *Device) DrawFilledTriangle(x1, y1, x2, y2, x3, y3 int, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}

	var (
		deltax = abs(x2 - x1)
		deltay = abs(y2 - y1)
		x      = x1
		y      = y1
		xinc1  = 1
		xinc2  = 1
		yinc1  = 1
		yinc2  = 1
	)
	if x2 < x1 {
		xinc1 = -1
		xinc2 = -1
	}
	if y2 < y1 {
		yinc1 = -1
		yinc2 = -1
	}

	var den, num, numadd, numpixels int
	if deltax >= deltay {
		xinc1 = 0
		yinc2 = 0
		den, num, numadd, numpixels = deltax, deltax/2, deltay, deltax
	} else {
		xinc2 = 0
		yinc1 = 0
		den, num, numadd, numpixels = deltay, deltay/2, deltax, deltay
	}

	for curpixel := 0; curpixel <= numpixels; curpixel++ {
		if err := d.DrawLine(x, y, x3, y3, c); err != nil {
			return err
		}
		num += numadd
		if num >= den {
			num -= den
			x += xinc1
			y += yinc1
		}
		x += xinc2
		y += yinc2
	}
	return nil
}

// DrawCircle draws a circle of radius r around (x0, y0) using the integer
// midpoint algorithm. There is no bounds check on the radius; pixels falling
// off the panel are dropped individually.
func (d *Device) DrawCircle(x0, y0, r int, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}

	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)

	_ = d.drawPixel(x0, y0+r, c)
	_ = d.drawPixel(x0, y0-r, c)
	_ = d.drawPixel(x0+r, y0, c)
	_ = d.drawPixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		_ = d.drawPixel(x0+x, y0+y, c)
		_ = d.drawPixel(x0-x, y0+y, c)
		_ = d.drawPixel(x0+x, y0-y, c)
		_ = d.drawPixel(x0-x, y0-y, c)

		_ = d.drawPixel(x0+y, y0+x, c)
		_ = d.drawPixel(x0-y, y0+x, c)
		_ = d.drawPixel(x0+y, y0-x, c)
		_ = d.drawPixel(x0-y, y0-x, c)
	}
	return nil
}

// DrawFilledCircle draws a filled circle of radius r around (x0, y0),
// plotting horizontal chords between the symmetric midpoint steps.
func (d *Device) DrawFilledCircle(x0, y0, r int, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}

	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)

	_ = d.drawPixel(x0, y0+r, c)
	_ = d.drawPixel(x0, y0-r, c)
	_ = d.drawPixel(x0+r, y0, c)
	_ = d.drawPixel(x0-r, y0, c)
	if err := d.DrawLine(x0-r, y0, x0+r, y0, c); err != nil {
		return err
	}

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if err := d.DrawLine(x0-x, y0+y, x0+x, y0+y, c); err != nil {
			return err
		}
		if err := d.DrawLine(x0+x, y0-y, x0-x, y0-y, c); err != nil {
			return err
		}
		if err := d.DrawLine(x0+y, y0+x, x0-y, y0+x, c); err != nil {
			return err
		}
		if err := d.DrawLine(x0+y, y0-x, x0-y, y0-x, c); err != nil {
			return err
		}
	}
	return nil
}

// DrawBitmap blits a 1-bit per pixel bitmap with its top-left corner at
// (x, y). The bitmap is row-major, MSB first, each row padded to whole
// bytes. Only set source bits are drawn, so the background shows through;
// pixels falling off the panel are dropped individually.
func (d *Device) DrawBitmap(x, y int, bitmap []byte, w, h int, c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if w < 0 || h < 0 {
		return ErrInvalidParams
	}

	byteWidth := (w + 7) >> 3
	if len(bitmap) < byteWidth*h {
		return ErrInvalidParams
	}

	var b byte
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = bitmap[j*byteWidth+i/8]
			}
			if b&0x80 != 0 {
				_ = d.drawPixel(x+i, y+j, c)
			}
		}
	}
	return nil
}
