package face

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"binwatch/hal"
)

var (
	timeFont tinyfont.Fonter = &freemono.Bold12pt7b
	dateFont tinyfont.Fonter = &freemono.Regular9pt7b
)

const (
	timeLineHeight = 28
	dateLineHeight = 18
)

var (
	bgColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	fgColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// layout mirrors the classic watch geometries: square screens start
// flush near the top-left, round screens inset the columns so the
// digits clear the bezel.
type layout struct {
	left    int16
	timeTop int16
	dateTop int16
}

func layoutFor(w, h int) layout {
	if w == h { // round (or square-bezel) panel
		return layout{left: 25, timeTop: 24, dateTop: 100}
	}
	return layout{left: 10, timeTop: 10, dateTop: 100}
}

// fbDisplayer adapts a HAL framebuffer to the tinyfont drawing target.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *fbDisplayer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// drawFields paints the four binary strings and presents the frame.
func drawFields(fb hal.Framebuffer, f Fields) error {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}

	fb.ClearRGB(bgColor.R, bgColor.G, bgColor.B)

	d := &fbDisplayer{fb: fb}
	lay := layoutFor(fb.Width(), fb.Height())

	tinyfont.WriteLine(d, timeFont, lay.left, lay.timeTop+timeLineHeight, f.Hour, fgColor)
	tinyfont.WriteLine(d, timeFont, lay.left, lay.timeTop+2*timeLineHeight, f.Minute, fgColor)
	tinyfont.WriteLine(d, dateFont, lay.left, lay.dateTop+dateLineHeight, f.Month, fgColor)
	tinyfont.WriteLine(d, dateFont, lay.left, lay.dateTop+2*dateLineHeight, f.Day, fgColor)

	return d.Display()
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
