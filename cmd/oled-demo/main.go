package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oled"
	"github.com/BeatGlow/oled/font"
	"github.com/BeatGlow/oled/pixel"
)

func main() {
	widthFlag := flag.Int("width", 0, "Display width")
	heightFlag := flag.Int("height", 0, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", oled.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(oled.DefaultI2CConfig.Addr), "I²C device address")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "GPIO8", "Chip enable GPIO pin")
	scrollFlag := flag.Bool("scroll", false, "Showcase the scroll modes")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bus>\n", os.Args[0])
		os.Exit(1)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		conn oled.Conn
		err  error
	)
	switch busType := flag.Arg(0); busType {
	case "i2c":
		conn, err = oled.OpenI2C(&oled.I2CConfig{
			Device: *i2cDeviceFlag,
			Addr:   uint8(*i2cAddrFlag),
			Reset:  gpioreg.ByName(*resetPinFlag),
		})
	case "spi":
		conn, err = oled.OpenSPI(&oled.SPIConfig{
			Bus:    *spiBusFlag,
			Device: *spiDeviceFlag,
			Reset:  gpioreg.ByName(*resetPinFlag),
			DC:     gpioreg.ByName(*dcPinFlag),
			CE:     gpioreg.ByName(*cePinFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", conn)

	display, err := oled.New(conn, &oled.Config{
		Width:  *widthFlag,
		Height: *heightFlag,
	})
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	if err = display.Init(); err != nil {
		_ = conn.Close()
		fatal(err)
	}
	defer display.Close()
	fmt.Printf("using driver: %s\n", display)

	var (
		size = display.Bounds().Size()
		f    = font.Fixed7x13()
	)

	// Border, a few shapes and a text banner.
	if err = display.DrawRectangle(0, 0, size.X-1, size.Y-1, pixel.On); err != nil {
		fatal(err)
	}
	if err = display.DrawFilledCircle(size.X/5, size.Y/2, size.Y/5, pixel.On); err != nil {
		fatal(err)
	}
	if err = display.DrawTriangle(size.X-30, size.Y-6, size.X-6, size.Y-6, size.X-18, size.Y-22, pixel.On); err != nil {
		fatal(err)
	}

	label := "hello, panel"
	w, h := f.StringSize(label)
	if err = display.SetCursor((size.X-w)/2, (size.Y-h)/2); err != nil {
		fatal(err)
	}
	if err = display.PutString(label, f, pixel.On); err != nil {
		fatal(err)
	}
	if err = display.Flush(); err != nil {
		fatal(err)
	}

	if *scrollFlag {
		pages := size.Y / 8
		for _, scroll := range []struct {
			name  string
			start func(int, int) error
		}{
			{"right", display.ScrollRight},
			{"left", display.ScrollLeft},
			{"diagonal right", display.ScrollDiagRight},
			{"diagonal left", display.ScrollDiagLeft},
		} {
			fmt.Printf("scrolling %s...\n", scroll.name)
			if err = scroll.start(0, pages-1); err != nil {
				fatal(err)
			}
			time.Sleep(3 * time.Second)
			if err = display.StopScroll(); err != nil {
				fatal(err)
			}
			if err = display.Flush(); err != nil {
				fatal(err)
			}
		}
	}

	fmt.Println("blinking inverted, hit control-c to stop...")
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		if err = display.ToggleInvert(); err != nil {
			fatal(err)
		}
		if err = display.Flush(); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
