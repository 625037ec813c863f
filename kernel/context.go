package kernel

// Context provides task-local access to kernel operations.
type Context struct {
	k      *Kernel
	taskID TaskID
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// TryRecv reads one message from the capability endpoint without
// blocking.
func (c *Context) TryRecv(epCap Capability) (Message, bool) {
	if c.k == nil || !epCap.Valid() || !epCap.canRecv() {
		return Message{}, false
	}
	return c.k.recv(epCap.ep)
}

// Send sends a message to the capability endpoint.
func (c *Context) Send(toCap Capability, kind uint16, payload []byte) bool {
	return c.SendResult(toCap, kind, payload) == SendOK
}

// SendResult sends a message to the capability endpoint and reports
// the detailed outcome.
func (c *Context) SendResult(toCap Capability, kind uint16, payload []byte) SendResult {
	if c.k == nil || !toCap.Valid() {
		return SendErrInvalidCap
	}
	if !toCap.canSend() {
		return SendErrNoSendRight
	}
	return c.k.send(toCap.ep, kind, payload)
}
