// Package proto defines the message kinds and payload codecs used
// over kernel IPC.
package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgMinuteTick
)
