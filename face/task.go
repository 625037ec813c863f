package face

import (
	"strconv"

	"binwatch/hal"
	"binwatch/kernel"
	"binwatch/proto"
)

// Task is the watchface: it receives minute ticks, formats the four
// binary fields and paints them.
type Task struct {
	disp hal.Display
	ep   kernel.Capability
	log  kernel.Capability

	fb hal.Framebuffer
}

// New creates the face task. log may be an invalid capability; the
// diagnostics are optional.
func New(disp hal.Display, ep, log kernel.Capability) *Task {
	return &Task{disp: disp, ep: ep, log: log}
}

// Step handles at most one tick per call: each delivered tick is
// exactly one formatting pass, never coalesced.
func (t *Task) Step(ctx *kernel.Context) {
	msg, ok := ctx.TryRecv(t.ep)
	if !ok {
		return
	}
	if msg.Kind != uint16(proto.MsgMinuteTick) {
		return
	}
	hour, minute, month, day, twelve, ok := proto.DecodeMinuteTickPayload(msg.Payload())
	if !ok {
		return
	}

	style := Hour24
	if twelve {
		style = Hour12
	}
	now := CalendarTime{Hour: hour, Minute: minute, Month: month, Day: day}
	fields := Format(now, style)

	t.diag(ctx, now, style, fields)

	if t.disp == nil {
		return
	}
	if t.fb == nil {
		t.fb = t.disp.Framebuffer()
	}
	_ = drawFields(t.fb, fields)
}

// diag emits the per-tick observability lines. Send failures are
// swallowed: a full or missing log sink must never fail the pass.
func (t *Task) diag(ctx *kernel.Context, now CalendarTime, style ClockStyle, f Fields) {
	if !t.log.Valid() {
		return
	}
	t.diagLine(ctx, "Hour", DisplayHour(now.Hour, style), f.Hour)
	t.diagLine(ctx, "Minute", now.Minute, f.Minute)
	t.diagLine(ctx, "Month", now.Month+1, f.Month)
	t.diagLine(ctx, "Day", now.Day, f.Day)
}

func (t *Task) diagLine(ctx *kernel.Context, name string, dec int, bin string) {
	line := name + " " + strconv.Itoa(dec) + " --> " + bin
	_ = ctx.Send(t.log, uint16(proto.MsgLogLine), proto.LogLinePayload(line))
}
