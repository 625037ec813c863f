// Package kernel is a minimal cooperative scheduler plus mailbox IPC.
//
// The host loop (window, headless runner or device tick stream) calls
// Kernel.Step repeatedly; each call runs exactly one task step, so
// task code is never re-entered and never shares an instant with
// another task.
package kernel

const (
	maxTasks     = 8
	maxEndpoints = 8
	mailboxSlots = 8
)

type TaskID uint8

// Rights define which operations are allowed for a capability.
type Rights uint8

const (
	RightSend Rights = 1 << iota
	RightRecv
)

// Endpoint identifies an IPC destination.
type Endpoint uint8

// Capability grants access to an IPC endpoint.
//
// It is opaque by construction (no exported fields).
type Capability struct {
	ep     Endpoint
	rights Rights
}

func (c Capability) Valid() bool { return c.rights != 0 }

func (c Capability) canSend() bool { return c.rights&RightSend != 0 }
func (c Capability) canRecv() bool { return c.rights&RightRecv != 0 }

// Restrict returns a capability with a reduced set of rights.
func (c Capability) Restrict(rights Rights) Capability {
	if !c.Valid() {
		return Capability{}
	}
	r := c.rights & rights
	if r == 0 {
		return Capability{}
	}
	return Capability{ep: c.ep, rights: r}
}

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 64

// Message is a fixed-size IPC envelope.
type Message struct {
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
}

// Payload returns the used portion of the message data.
func (m *Message) Payload() []byte { return m.Data[:m.Len] }

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrInvalidCap
	SendErrNoSendRight
	SendErrNoEndpoint
	SendErrPayloadTooLarge
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrInvalidCap:
		return "invalid capability"
	case SendErrNoSendRight:
		return "capability has no send right"
	case SendErrNoEndpoint:
		return "no such endpoint"
	case SendErrPayloadTooLarge:
		return "payload too large"
	case SendErrQueueFull:
		return "queue full"
	default:
		return "unknown"
	}
}

// Task is a cooperative unit of execution. Step must not block.
type Task interface {
	Step(*Context)
}

type endpointState struct {
	q mailbox
}

// Kernel routes messages between fixed-size task and endpoint tables.
type Kernel struct {
	endpoints     [maxEndpoints]endpointState
	endpointCount Endpoint

	tasks     [maxTasks]Task
	taskCount TaskID

	rr TaskID
}

// New creates a kernel instance.
func New() *Kernel {
	return &Kernel{}
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
func (k *Kernel) NewEndpoint(rights Rights) Capability {
	if k.endpointCount >= maxEndpoints {
		return Capability{}
	}
	ep := k.endpointCount
	k.endpointCount++
	return Capability{ep: ep, rights: rights}
}

// AddTask registers a task and returns its ID.
func (k *Kernel) AddTask(t Task) TaskID {
	if k.taskCount >= maxTasks || t == nil {
		return 0
	}
	id := k.taskCount
	k.taskCount++
	k.tasks[id] = t
	return id
}

// TaskCount returns the number of registered tasks.
func (k *Kernel) TaskCount() int { return int(k.taskCount) }

// Step runs one task step, round-robin.
func (k *Kernel) Step() {
	if k.taskCount == 0 {
		return
	}
	id := k.rr % k.taskCount
	k.rr = (id + 1) % k.taskCount
	ctx := &Context{k: k, taskID: id}
	k.tasks[id].Step(ctx)
}

func (k *Kernel) send(to Endpoint, kind uint16, payload []byte) SendResult {
	if to >= k.endpointCount {
		return SendErrNoEndpoint
	}
	if len(payload) > MaxMessageBytes {
		return SendErrPayloadTooLarge
	}

	var msg Message
	msg.Kind = kind
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)

	if !k.endpoints[to].q.push(msg) {
		return SendErrQueueFull
	}
	return SendOK
}

func (k *Kernel) recv(from Endpoint) (Message, bool) {
	if from >= k.endpointCount {
		return Message{}, false
	}
	return k.endpoints[from].q.pop()
}
