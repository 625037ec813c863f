package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little-endian in
	// the buffer.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// DateTime carries the wall-clock fields the watchface displays.
//
// Month is 0-based (struct tm convention); human display adds 1.
type DateTime struct {
	Hour   int // 0-23
	Minute int // 0-59
	Month  int // 0-11
	Day    int // 1-31
}

// WallClock reads the current local date and time.
type WallClock interface {
	Now() DateTime
}

// Prefs exposes persisted device preferences, read-only.
type Prefs interface {
	// Use24Hour reports the 24-hour display preference.
	Use24Hour() bool
}

// Ticker provides a base tick stream that paces the watch.
//
// The tick duration is platform-defined; minute detection lives in
// userland.
type Ticker interface {
	Ticks() <-chan uint64
}

// Config selects HAL construction options.
//
// Device builds use only Use24Hour; the rest is host-only.
type Config struct {
	Width      int    // host framebuffer width, 0 means 144
	Height     int    // host framebuffer height, 0 means 168
	ConfigPath string // host preference file to watch ("" disables watching)
	Use24Hour  bool   // clock style before any preference load
}

// HAL is the only contact point between the watch and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Clock() WallClock
	Prefs() Prefs
	Time() Ticker
}
