// Package logsvc bridges kernel log messages to the HAL logger.
package logsvc

import (
	"binwatch/hal"
	"binwatch/kernel"
	"binwatch/proto"
)

type Service struct {
	log hal.Logger
	ep  kernel.Capability
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

// Step drains all pending log lines. Unknown kinds are dropped;
// logging is best-effort end to end.
func (s *Service) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(s.ep)
		if !ok {
			return
		}
		if s.log == nil {
			continue
		}
		if msg.Kind != uint16(proto.MsgLogLine) {
			continue
		}
		s.log.WriteLineBytes(msg.Payload())
	}
}
