// Package app wires the HAL, kernel, services and the face task into
// a running watch.
package app

import (
	"binwatch/face"
	"binwatch/hal"
	"binwatch/internal/buildinfo"
	"binwatch/kernel"
	"binwatch/services/clocksvc"
	"binwatch/services/logsvc"
)

type system struct {
	k *kernel.Kernel
}

// New initializes the watch and returns the per-frame step function
// for the host runners. One call steps every task once.
func New(h hal.HAL) func() error {
	sys := newSystem(h)
	return func() error {
		sys.step()
		return nil
	}
}

// Run starts the watch and blocks forever (TinyGo entrypoint). The
// HAL tick stream paces the kernel.
func Run(h hal.HAL) {
	sys := newSystem(h)
	t := h.Time()
	if t == nil {
		select {}
	}
	ch := t.Ticks()
	if ch == nil {
		select {}
	}
	for range ch {
		sys.step()
	}
}

func newSystem(h hal.HAL) *system {
	k := kernel.New()

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	faceEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logsvc.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(clocksvc.New(h.Clock(), h.Prefs(), faceEP.Restrict(kernel.RightSend)))
	k.AddTask(face.New(h.Display(), faceEP.Restrict(kernel.RightRecv), logEP.Restrict(kernel.RightSend)))

	if log := h.Logger(); log != nil {
		log.WriteLineString("binwatch " + buildinfo.Short())
	}
	return &system{k: k}
}

func (s *system) step() {
	for i := 0; i < s.k.TaskCount(); i++ {
		s.k.Step()
	}
}
