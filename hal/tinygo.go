//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
	t      *tinyGoTicker
	clock  systemClock
	prefs  staticPrefs
}

// New returns a Pico (RP2040) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD: ST7735 on SPI1, SCK GP10 / SDO GP11 / SDI GP12,
// CS GP13, DC GP14, RST GP15, backlight GP9.
func New(cfg Config) HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	fb, err := initST7735()
	if err != nil {
		logger.WriteLineString("display: " + err.Error())
	}

	return &tinyGoHAL{
		logger: logger,
		fb:     fb,
		t:      newTinyGoTicker(),
		prefs:  staticPrefs{use24: cfg.Use24Hour},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Clock() WallClock { return h.clock }
func (h *tinyGoHAL) Prefs() Prefs     { return h.prefs }
func (h *tinyGoHAL) Time() Ticker     { return h.t }

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

// staticPrefs is the boot-time clock style. The device has no
// preference store; reflashing is how the style changes.
type staticPrefs struct {
	use24 bool
}

func (p staticPrefs) Use24Hour() bool { return p.use24 }
