package oled

import (
	"fmt"
	"image"

	"github.com/BeatGlow/oled/pixel"
)

const (
	defaultWidth    = 128
	defaultHeight   = 64
	defaultContrast = 0xFF
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Contrast level set during initialization; zero selects the maximum.
	Contrast byte
}

// Device drives a single paged monochrome panel. It owns the off-screen
// pixel buffer; drawing operations mutate only the buffer and Flush is the
// only operation that writes pixel data to the bus.
//
// A Device is not safe for concurrent use without external serialization.
type Device struct {
	c           Conn
	buf         *pixel.Buffer
	width       int
	height      int
	pages       int
	contrast    byte
	cursor      image.Point
	inverted    bool
	initialized bool
}

// New creates a driver for a panel on the given connection. The panel width
// must fit in one bus transaction; ErrChunkTooLarge is returned otherwise.
func New(c Conn, config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
	}
	if config.Width == 0 {
		config.Width = defaultWidth
	}
	if config.Height == 0 {
		config.Height = defaultHeight
	}
	if config.Width < 0 || config.Height < 0 {
		return nil, ErrInvalidParams
	}
	if config.Width > c.MaxChunk() {
		return nil, ErrChunkTooLarge
	}
	if config.Contrast == 0 {
		config.Contrast = defaultContrast
	}

	buf := pixel.NewBuffer(config.Width, config.Height)
	return &Device{
		c:        c,
		buf:      buf,
		width:    config.Width,
		height:   config.Height,
		pages:    buf.Pages(),
		contrast: config.Contrast,
	}, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("OLED %dx%d on %s", d.width, d.height, d.c)
}

// Bounds is the display bounding box (dimensions).
func (d *Device) Bounds() image.Rectangle {
	return d.buf.Bounds()
}

func (d *Device) data(data ...byte) error {
	return d.c.Data(data...)
}

func (d *Device) command(command byte, data ...byte) error {
	return d.c.Command(command, data...)
}

func (d *Device) commands(commands ...[]byte) (err error) {
	for _, command := range commands {
		if err = d.c.Command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

// Init probes the panel, runs the bring-up command sequence, clears the
// buffer and pushes it out. It transitions the device to initialized exactly
// once; calling Init again is a no-op. On any failure the device stays
// uninitialized and every other operation keeps failing with
// ErrNotInitialized.
func (d *Device) Init() (err error) {
	if d.initialized {
		return nil
	}

	if err = d.c.Ping(); err != nil {
		return fmt.Errorf("oled: display not responding: %w", err)
	}

	// Each opcode goes out as its own command so the sequence is valid on
	// both the I²C and the 4-wire SPI framing.
	if err = d.commands(
		[]byte{setDisplayOff},
		[]byte{setMemoryMode},
		[]byte{0x10}, // page addressing mode
		[]byte{setPageStart},
		[]byte{setComScanDec},
		[]byte{setLowColumn},
		[]byte{setHighColumn},
		[]byte{setStartLine},
		[]byte{setContrast},
		[]byte{d.contrast},
		[]byte{setSegmentRemap},
		[]byte{setNormalDisplay},
		[]byte{setMultiplexRatio},
		[]byte{byte(d.height - 1)},
		[]byte{setDisplayAllOnResume},
		[]byte{setDisplayOffset},
		[]byte{0x00},
		[]byte{setDisplayClockDiv},
		[]byte{0xF0},
		[]byte{setPrecharge},
		[]byte{0x22},
		[]byte{setComPins},
		[]byte{0x12},
		[]byte{setVComDetect},
		[]byte{0x20},
		[]byte{setChargePump},
		[]byte{chargePumpOn},
		[]byte{setDisplayOn},
		[]byte{deactivateScroll},
	); err != nil {
		return
	}

	d.buf.Clear()
	if err = d.flush(); err != nil {
		return
	}

	d.initialized = true
	return
}

// Flush transmits the buffer to the panel, one page-select plus column-reset
// command sequence and one page of pixel data per page. A failed page is not
// rolled back; the panel may show a mix of old and new content until the
// next successful Flush.
func (d *Device) Flush() error {
	if !d.initialized {
		return ErrNotInitialized
	}
	return d.flush()
}

func (d *Device) flush() (err error) {
	for page := 0; page < d.pages; page++ {
		if err = d.commands(
			[]byte{setPageStart | byte(page)},
			[]byte{setLowColumn},
			[]byte{setHighColumn},
		); err != nil {
			return
		}
		if err = d.data(d.buf.Page(page)...); err != nil {
			return
		}
	}
	return
}

// Clear blanks the buffer and pushes it to the panel.
func (d *Device) Clear() error {
	if !d.initialized {
		return ErrNotInitialized
	}
	d.buf.Clear()
	return d.flush()
}

// Fill sets every buffer pixel to c without flushing.
func (d *Device) Fill(c pixel.Mono) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	d.buf.Fill(c)
	return nil
}

// SetInverted selects the output polarity. Changing it complements the
// buffer in place, so already-drawn content shows inverted on the next
// Flush, and subsequent drawing operations invert the requested color.
func (d *Device) SetInverted(inverted bool) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if inverted == d.inverted {
		return nil
	}
	d.buf.Invert()
	d.inverted = inverted
	return nil
}

// ToggleInvert flips the output polarity, see SetInverted.
func (d *Device) ToggleInvert() error {
	if !d.initialized {
		return ErrNotInitialized
	}
	return d.SetInverted(!d.inverted)
}

// Inverted reports the current output polarity.
func (d *Device) Inverted() bool {
	return d.inverted
}

// InvertDisplay toggles the panel's hardware polarity. Unlike SetInverted
// this does not touch the buffer; the controller complements pixels on its
// own while displaying.
func (d *Device) InvertDisplay(inverted bool) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if inverted {
		return d.command(setInvertDisplay)
	}
	return d.command(setNormalDisplay)
}

func (d *Device) checkScrollPages(startPage, endPage int) error {
	if startPage < 0 || endPage < 0 || startPage > endPage || endPage >= d.pages {
		return ErrInvalidParams
	}
	return nil
}

// ScrollRight starts a continuous horizontal right scroll of the pages
// startPage through endPage.
func (d *Device) ScrollRight(startPage, endPage int) error {
	return d.scrollHorizontal(scrollRightHorizontal, startPage, endPage)
}

// ScrollLeft starts a continuous horizontal left scroll of the pages
// startPage through endPage.
func (d *Device) ScrollLeft(startPage, endPage int) error {
	return d.scrollHorizontal(scrollLeftHorizontal, startPage, endPage)
}

func (d *Device) scrollHorizontal(direction byte, startPage, endPage int) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if err := d.checkScrollPages(startPage, endPage); err != nil {
		return err
	}
	return d.commands(
		[]byte{direction},
		[]byte{0x00}, // dummy byte
		[]byte{byte(startPage)},
		[]byte{0x00}, // step every 5 frames
		[]byte{byte(endPage)},
		[]byte{0x00},
		[]byte{0xFF}, // scroll offset for continuous movement
		[]byte{activateScroll},
	)
}

// ScrollDiagRight starts a combined vertical and horizontal right scroll of
// the pages startPage through endPage.
func (d *Device) ScrollDiagRight(startPage, endPage int) error {
	return d.scrollDiagonal(scrollVerticalRight, startPage, endPage)
}

// ScrollDiagLeft starts a combined vertical and horizontal left scroll of
// the pages startPage through endPage.
func (d *Device) ScrollDiagLeft(startPage, endPage int) error {
	return d.scrollDiagonal(scrollVerticalLeft, startPage, endPage)
}

func (d *Device) scrollDiagonal(direction byte, startPage, endPage int) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if err := d.checkScrollPages(startPage, endPage); err != nil {
		return err
	}
	return d.commands(
		[]byte{setVerticalScrollArea},
		[]byte{0x00}, // rows in the fixed top area
		[]byte{byte(d.height)},
		[]byte{direction},
		[]byte{0x00}, // dummy byte
		[]byte{byte(startPage)},
		[]byte{0x00}, // step every 5 frames
		[]byte{byte(endPage)},
		[]byte{0x01}, // vertical offset per step
		[]byte{activateScroll},
	)
}

// StopScroll deactivates any running scroll.
func (d *Device) StopScroll() error {
	if !d.initialized {
		return ErrNotInitialized
	}
	return d.command(deactivateScroll)
}

// PowerOn enables the charge pump and turns the panel on.
func (d *Device) PowerOn() error {
	if !d.initialized {
		return ErrNotInitialized
	}
	return d.commands(
		[]byte{setChargePump},
		[]byte{chargePumpOn},
		[]byte{setDisplayOn},
	)
}

// PowerOff disables the charge pump and turns the panel off. The buffer is
// retained; PowerOn followed by Flush restores the image.
func (d *Device) PowerOff() error {
	if !d.initialized {
		return ErrNotInitialized
	}
	return d.commands(
		[]byte{setChargePump},
		[]byte{chargePumpOff},
		[]byte{setDisplayOff},
	)
}

// Show toggles the display output on or off without touching the charge
// pump.
func (d *Device) Show(show bool) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if show {
		return d.command(setDisplayOn)
	}
	return d.command(setDisplayOff)
}

// SetContrast adjusts the contrast level.
func (d *Device) SetContrast(level uint8) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	if err := d.commands(
		[]byte{setContrast},
		[]byte{level},
	); err != nil {
		return err
	}
	d.contrast = level
	return nil
}

// Close powers the panel down and closes the connection.
func (d *Device) Close() error {
	if d.initialized {
		if err := d.PowerOff(); err != nil {
			_ = d.c.Close()
			return err
		}
	}
	return d.c.Close()
}
