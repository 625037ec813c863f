//go:build !tinygo

package hal

import "time"

type hostTicker struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTicker() *hostTicker {
	return &hostTicker{ch: make(chan uint64, 1024)}
}

func (t *hostTicker) Ticks() <-chan uint64 { return t.ch }

// step advances the tick stream, pacing it against the wall clock so a
// slow or paused frame loop does not stretch watch time.
func (t *hostTicker) step(n uint64) {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	const tickDur = time.Millisecond
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.stepN(ticks)
}

func (t *hostTicker) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
