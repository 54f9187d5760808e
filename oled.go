// Package oled implements a driver for paged, 1-bit per pixel OLED panels
// driven by SSD1306-class controllers over I²C or SPI.
//
// The driver keeps an off-screen pixel buffer and rasterizes points, lines,
// rectangles, triangles, circles, bitmaps and text into it. Drawing never
// touches the bus; Flush pushes the buffer to the panel one page at a time.
package oled

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("OLED_DEBUG") != ""
}

// Errors
var (
	ErrNotInitialized = errors.New("oled: display not initialized")
	ErrBounds         = errors.New("oled: out of display bounds")
	ErrInvalidParams  = errors.New("oled: invalid parameters")
	ErrChunkTooLarge  = errors.New("oled: display width exceeds transport chunk size")
)
