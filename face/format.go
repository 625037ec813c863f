package face

// ClockStyle selects 12 or 24 hour time display.
type ClockStyle uint8

const (
	Hour24 ClockStyle = iota
	Hour12
)

// CalendarTime carries the wall-clock fields the face displays.
//
// Month is 0-based, matching the clock source convention; Format adds
// 1 for display.
type CalendarTime struct {
	Hour   int // 0-23
	Minute int // 0-59
	Month  int // 0-11
	Day    int // 1-31
}

// Fields holds the four binary strings for one tick. A new value is
// produced on every formatting pass; nothing is retained across ticks.
type Fields struct {
	Hour   string
	Minute string
	Month  string
	Day    string
}

// DisplayHour applies the clock style. 24-hour passes the hour
// through; 12-hour maps 0 and 12 to 12 (midnight and noon) and 13-23
// down to 1-11.
func DisplayHour(hour int, style ClockStyle) int {
	if style == Hour24 {
		return hour
	}
	h := hour % 12
	if h < 0 {
		h += 12
	}
	if h == 0 {
		return 12
	}
	return h
}

// Format derives the four display fields from a calendar timestamp.
// It is a stateless pure transform: identical inputs yield identical
// outputs, and it is safe to call with no display attached.
func Format(t CalendarTime, style ClockStyle) Fields {
	return Fields{
		Hour:   EncodeBits(DisplayHour(t.Hour, style), HourBits),
		Minute: EncodeBits(t.Minute, MinuteBits),
		Month:  EncodeBits(t.Month+1, MonthBits),
		Day:    EncodeBits(t.Day, DayBits),
	}
}
