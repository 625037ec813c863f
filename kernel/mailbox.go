package kernel

type mailbox struct {
	count uint8
	next  uint8
	slots [mailboxSlots]Message
}

func (mb *mailbox) push(msg Message) bool {
	if mb.count >= mailboxSlots {
		return false
	}
	mb.slots[(mb.next+mb.count)%mailboxSlots] = msg
	mb.count++
	return true
}

func (mb *mailbox) pop() (Message, bool) {
	if mb.count == 0 {
		return Message{}, false
	}
	msg := mb.slots[mb.next]
	mb.next = (mb.next + 1) % mailboxSlots
	mb.count--
	return msg, true
}
