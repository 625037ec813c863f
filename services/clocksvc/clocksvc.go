// Package clocksvc publishes minute ticks to the face.
//
// It owns the tick contract: one message at startup so the display is
// never blank, then one whenever the displayed minute or the clock
// style changes. Each message produces exactly one formatting pass
// downstream; there is no queuing or coalescing beyond the mailbox.
package clocksvc

import (
	"binwatch/hal"
	"binwatch/kernel"
	"binwatch/proto"
)

type Service struct {
	clock hal.WallClock
	prefs hal.Prefs
	face  kernel.Capability

	published  bool
	lastMinute int
	lastTwelve bool
}

func New(clock hal.WallClock, prefs hal.Prefs, face kernel.Capability) *Service {
	return &Service{clock: clock, prefs: prefs, face: face}
}

func (s *Service) Step(ctx *kernel.Context) {
	if s.clock == nil {
		return
	}
	now := s.clock.Now()
	twelve := s.prefs != nil && !s.prefs.Use24Hour()

	minute := now.Hour*60 + now.Minute
	if s.published && minute == s.lastMinute && twelve == s.lastTwelve {
		return
	}

	payload := proto.MinuteTickPayload(now.Hour, now.Minute, now.Month, now.Day, twelve)
	if !ctx.Send(s.face, uint16(proto.MsgMinuteTick), payload) {
		// Mailbox full or face gone; retry on the next step.
		return
	}
	s.published = true
	s.lastMinute = minute
	s.lastTwelve = twelve
}
