//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/st7735"
)

const (
	panelWidth  = 128
	panelHeight = 160
)

// st7735FB is an in-RAM RGB565 framebuffer that pushes to the panel on
// Present. The buffer is little-endian like the host framebuffer; the
// panel wants big-endian, so Present swaps into a scratch buffer.
type st7735FB struct {
	dev    st7735.Device
	stride int
	buf    []byte
	tx     []byte
}

func initST7735() (Framebuffer, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 24_000_000,
	})

	dev := st7735.New(machine.SPI1, machine.GP15, machine.GP14, machine.GP13, machine.GP9)
	dev.Configure(st7735.Config{
		Width:  panelWidth,
		Height: panelHeight,
	})

	stride := panelWidth * 2
	return &st7735FB{
		dev:    dev,
		stride: stride,
		buf:    make([]byte, stride*panelHeight),
		tx:     make([]byte, stride*panelHeight),
	}, nil
}

func (f *st7735FB) Width() int          { return panelWidth }
func (f *st7735FB) Height() int         { return panelHeight }
func (f *st7735FB) Format() PixelFormat { return PixelFormatRGB565 }
func (f *st7735FB) StrideBytes() int    { return f.stride }
func (f *st7735FB) Buffer() []byte      { return f.buf }

func (f *st7735FB) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *st7735FB) Present() error {
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.tx[i] = f.buf[i+1]
		f.tx[i+1] = f.buf[i]
	}
	return f.dev.DrawRGBBitmap8(0, 0, f.tx, panelWidth, panelHeight)
}
