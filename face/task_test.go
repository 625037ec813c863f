package face

import (
	"testing"

	"binwatch/hal"
	"binwatch/kernel"
	"binwatch/proto"
)

type fakeFramebuffer struct {
	w, h     int
	buf      []byte
	presents int
}

func newFakeFramebuffer(w, h int) *fakeFramebuffer {
	return &fakeFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *fakeFramebuffer) Buffer() []byte          { return f.buf }
func (f *fakeFramebuffer) Present() error          { f.presents++; return nil }

func (f *fakeFramebuffer) ClearRGB(r, g, b uint8) {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *fakeFramebuffer) litPixels() int {
	n := 0
	for _, b := range f.buf {
		if b != 0 {
			n++
		}
	}
	return n
}

type fakeDisplay struct {
	fb hal.Framebuffer
}

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type stepFunc func(*kernel.Context)

func (f stepFunc) Step(ctx *kernel.Context) { f(ctx) }

func TestTaskTickRendersAndLogs(t *testing.T) {
	k := kernel.New()
	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	faceEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	fb := newFakeFramebuffer(144, 168)
	var lines []string

	// Driver injects one minute tick, then stays idle.
	sent := false
	k.AddTask(stepFunc(func(ctx *kernel.Context) {
		if sent {
			return
		}
		sent = true
		payload := proto.MinuteTickPayload(0, 5, 0, 1, true)
		if !ctx.Send(faceEP.Restrict(kernel.RightSend), uint16(proto.MsgMinuteTick), payload) {
			t.Error("tick send failed")
		}
	}))
	k.AddTask(New(fakeDisplay{fb: fb}, faceEP.Restrict(kernel.RightRecv), logEP.Restrict(kernel.RightSend)))
	k.AddTask(stepFunc(func(ctx *kernel.Context) {
		for {
			msg, ok := ctx.TryRecv(logEP.Restrict(kernel.RightRecv))
			if !ok {
				return
			}
			lines = append(lines, string(msg.Payload()))
		}
	}))

	for i := 0; i < 2*k.TaskCount(); i++ {
		k.Step()
	}

	want := []string{
		"Hour 12 --> 01100",
		"Minute 5 --> 000101",
		"Month 1 --> 0001",
		"Day 1 --> 000001",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d diagnostic lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i], w)
		}
	}

	if fb.presents != 1 {
		t.Fatalf("expected one present, got %d", fb.presents)
	}
	if fb.litPixels() == 0 {
		t.Fatal("expected some pixels drawn")
	}
}

func TestTaskNoDisplay(t *testing.T) {
	// Formatting must survive an absent display sink.
	k := kernel.New()
	faceEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(stepFunc(func(ctx *kernel.Context) {
		payload := proto.MinuteTickPayload(23, 59, 11, 31, false)
		ctx.Send(faceEP.Restrict(kernel.RightSend), uint16(proto.MsgMinuteTick), payload)
	}))
	k.AddTask(New(nil, faceEP.Restrict(kernel.RightRecv), kernel.Capability{}))

	for i := 0; i < 4; i++ {
		k.Step()
	}
	// Reaching here without a panic is the contract.
}

func TestTaskIgnoresGarbage(t *testing.T) {
	k := kernel.New()
	faceEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	fb := newFakeFramebuffer(144, 168)

	k.AddTask(stepFunc(func(ctx *kernel.Context) {
		ctx.Send(faceEP.Restrict(kernel.RightSend), uint16(proto.MsgLogLine), []byte("noise"))
		ctx.Send(faceEP.Restrict(kernel.RightSend), uint16(proto.MsgMinuteTick), []byte{1, 2})
	}))
	k.AddTask(New(fakeDisplay{fb: fb}, faceEP.Restrict(kernel.RightRecv), kernel.Capability{}))

	for i := 0; i < 6; i++ {
		k.Step()
	}
	if fb.presents != 0 {
		t.Fatalf("garbage messages must not render, got %d presents", fb.presents)
	}
}
