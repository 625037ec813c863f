package proto

// MinuteTickPayload encodes a MsgMinuteTick payload.
//
// Layout:
//   - u8: hour (0-23)
//   - u8: minute (0-59)
//   - u8: month (0-11, tm convention)
//   - u8: day (1-31)
//   - u8: style (0 = 24-hour, 1 = 12-hour)
//
// Values are truncated to a byte; range enforcement is the clock
// source's job, and the face tolerates garbage anyway.
func MinuteTickPayload(hour, minute, month, day int, twelveHour bool) []byte {
	style := byte(0)
	if twelveHour {
		style = 1
	}
	return []byte{byte(hour), byte(minute), byte(month), byte(day), style}
}

// DecodeMinuteTickPayload decodes a MinuteTickPayload.
func DecodeMinuteTickPayload(payload []byte) (hour, minute, month, day int, twelveHour bool, ok bool) {
	if len(payload) < 5 {
		return 0, 0, 0, 0, false, false
	}
	return int(payload[0]), int(payload[1]), int(payload[2]), int(payload[3]), payload[4] != 0, true
}
