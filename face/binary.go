// Package face holds the binary watchface core: the fixed-width
// binary encoder, the time formatter, and the kernel task that renders
// their output.
package face

// Bit widths for each displayed field. Each width covers its field's
// full domain: hours 0-23 (and 1-12 in 12-hour style), minutes 0-59,
// months 1-12, days 1-31.
const (
	HourBits   = 5
	MinuteBits = 6
	MonthBits  = 4
	DayBits    = 6
)

// EncodeBits renders v as exactly width binary digits, most
// significant bit first.
//
// Values outside [0, 2^width) do not fail: they are reduced modulo
// 2^width, i.e. the high-order bits are silently dropped. That is a
// deliberate footgun inherited from the field-width contract — the
// watch always shows something rather than halting — and it is pinned
// by tests. A width below 1 yields an empty string.
func EncodeBits(v, width int) string {
	if width < 1 {
		return ""
	}

	mod := 1
	for i := 0; i < width; i++ {
		mod *= 2
	}
	v %= mod
	if v < 0 {
		v += mod
	}

	buf := make([]byte, width)
	power := mod / 2
	for i := range buf {
		if v >= power {
			buf[i] = '1'
			v -= power
		} else {
			buf[i] = '0'
		}
		power /= 2
	}
	return string(buf)
}
