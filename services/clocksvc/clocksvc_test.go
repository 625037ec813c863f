package clocksvc

import (
	"testing"

	"binwatch/hal"
	"binwatch/kernel"
	"binwatch/proto"
)

type fakeClock struct {
	now hal.DateTime
}

func (c *fakeClock) Now() hal.DateTime { return c.now }

type fakePrefs struct {
	use24 bool
}

func (p *fakePrefs) Use24Hour() bool { return p.use24 }

type collector struct {
	ep   kernel.Capability
	msgs []kernel.Message
}

func (c *collector) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(c.ep)
		if !ok {
			return
		}
		c.msgs = append(c.msgs, msg)
	}
}

func newHarness(t *testing.T, clock *fakeClock, prefs *fakePrefs) (*kernel.Kernel, *collector) {
	t.Helper()
	k := kernel.New()
	faceEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(New(clock, prefs, faceEP.Restrict(kernel.RightSend)))
	col := &collector{ep: faceEP.Restrict(kernel.RightRecv)}
	k.AddTask(col)
	return k, col
}

func stepRounds(k *kernel.Kernel, rounds int) {
	for i := 0; i < rounds*k.TaskCount(); i++ {
		k.Step()
	}
}

func TestStartupTick(t *testing.T) {
	clock := &fakeClock{now: hal.DateTime{Hour: 9, Minute: 41, Month: 0, Day: 9}}
	k, col := newHarness(t, clock, &fakePrefs{use24: true})

	// The very first step must publish so the display is never blank.
	stepRounds(k, 1)
	if len(col.msgs) != 1 {
		t.Fatalf("expected 1 startup tick, got %d", len(col.msgs))
	}
	h, m, mon, d, twelve, ok := proto.DecodeMinuteTickPayload(col.msgs[0].Payload())
	if !ok || h != 9 || m != 41 || mon != 0 || d != 9 || twelve {
		t.Fatalf("bad payload: %d:%d month=%d day=%d twelve=%v ok=%v", h, m, mon, d, twelve, ok)
	}
}

func TestNoRepublishSameMinute(t *testing.T) {
	clock := &fakeClock{now: hal.DateTime{Hour: 9, Minute: 41, Month: 0, Day: 9}}
	k, col := newHarness(t, clock, &fakePrefs{use24: true})

	stepRounds(k, 5)
	if len(col.msgs) != 1 {
		t.Fatalf("expected exactly 1 tick for a stable minute, got %d", len(col.msgs))
	}
}

func TestRepublishOnMinuteChange(t *testing.T) {
	clock := &fakeClock{now: hal.DateTime{Hour: 9, Minute: 41, Month: 0, Day: 9}}
	k, col := newHarness(t, clock, &fakePrefs{use24: true})

	stepRounds(k, 1)
	clock.now.Minute = 42
	stepRounds(k, 1)

	if len(col.msgs) != 2 {
		t.Fatalf("expected 2 ticks, got %d", len(col.msgs))
	}
	_, m, _, _, _, _ := proto.DecodeMinuteTickPayload(col.msgs[1].Payload())
	if m != 42 {
		t.Fatalf("second tick minute = %d, want 42", m)
	}
}

func TestRepublishOnStyleChange(t *testing.T) {
	clock := &fakeClock{now: hal.DateTime{Hour: 14, Minute: 0, Month: 5, Day: 1}}
	prefs := &fakePrefs{use24: true}
	k, col := newHarness(t, clock, prefs)

	stepRounds(k, 1)
	prefs.use24 = false
	stepRounds(k, 1)

	if len(col.msgs) != 2 {
		t.Fatalf("expected a republish on style change, got %d ticks", len(col.msgs))
	}
	_, _, _, _, twelve, _ := proto.DecodeMinuteTickPayload(col.msgs[1].Payload())
	if !twelve {
		t.Fatal("expected the second tick to carry the 12-hour style")
	}
}

func TestNilClock(t *testing.T) {
	k := kernel.New()
	faceEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(New(nil, nil, faceEP.Restrict(kernel.RightSend)))
	col := &collector{ep: faceEP.Restrict(kernel.RightRecv)}
	k.AddTask(col)

	stepRounds(k, 3)
	if len(col.msgs) != 0 {
		t.Fatalf("expected no ticks without a clock, got %d", len(col.msgs))
	}
}
