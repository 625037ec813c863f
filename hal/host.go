//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	t      *hostTicker
	clock  systemClock
	prefs  *hostPrefs
}

// New returns a host HAL implementation.
func New(cfg Config) HAL {
	if cfg.Width <= 0 {
		cfg.Width = 144
	}
	if cfg.Height <= 0 {
		cfg.Height = 168
	}

	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		t:      newHostTicker(),
		prefs:  newHostPrefs(cfg.ConfigPath, cfg.Use24Hour, logger),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Clock() WallClock { return h.clock }
func (h *hostHAL) Prefs() Prefs     { return h.prefs }
func (h *hostHAL) Time() Ticker     { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
