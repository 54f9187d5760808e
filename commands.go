package oled

// Command set of SSD1306-class controllers.
const (
	setLowColumn          = 0x00
	setHighColumn         = 0x10
	setMemoryMode         = 0x20
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setSegmentRemap       = 0xA1
	setDisplayAllOnResume = 0xA4
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setPageStart          = 0xB0
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDetect         = 0xDB
)

// Scroll commands.
const (
	scrollRightHorizontal = 0x26
	scrollLeftHorizontal  = 0x27
	scrollVerticalRight   = 0x29
	scrollVerticalLeft    = 0x2A
	deactivateScroll      = 0x2E
	activateScroll        = 0x2F
	setVerticalScrollArea = 0xA3
)

// Charge pump states.
const (
	chargePumpOn  = 0x14
	chargePumpOff = 0x10
)
