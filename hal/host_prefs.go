//go:build !tinygo

package hal

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"binwatch/config"
)

// hostPrefs reads the clock-style preference from the config file and
// keeps it current while the watch runs. Reload failures keep the last
// known value; the preference store never takes the face down.
type hostPrefs struct {
	mu    sync.Mutex
	use24 bool

	path   string
	logger Logger
}

func newHostPrefs(path string, use24 bool, logger Logger) *hostPrefs {
	p := &hostPrefs{use24: use24, path: path, logger: logger}
	if path == "" {
		return p
	}
	p.reload()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		p.logLine("prefs: watch disabled: " + err.Error())
		return p
	}
	// Watch the directory, not the file: editors and atomic writers
	// replace the file on save.
	if err := w.Add(filepath.Dir(path)); err != nil {
		p.logLine("prefs: watch disabled: " + err.Error())
		w.Close()
		return p
	}
	go p.watch(w)
	return p
}

func (p *hostPrefs) Use24Hour() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.use24
}

func (p *hostPrefs) watch(w *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(p.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			p.reload()
		case _, ok := <-w.Errors:
			if !ok {
				return
			}
		}
	}
}

func (p *hostPrefs) reload() {
	cfg, err := config.Load(p.path)
	if err != nil {
		p.logLine("prefs: " + err.Error())
		return
	}

	p.mu.Lock()
	changed := p.use24 != cfg.Use24Hour()
	p.use24 = cfg.Use24Hour()
	p.mu.Unlock()

	if changed {
		p.logLine("prefs: clock style now " + cfg.ClockStyle)
	}
}

func (p *hostPrefs) logLine(s string) {
	if p.logger == nil {
		return
	}
	p.logger.WriteLineString(s)
}
