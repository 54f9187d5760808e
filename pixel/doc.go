// Package pixel implements the monochrome color model and packed pixel
// buffer used by paged 1-bit OLED panels.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces.
package pixel
