package hal

import "time"

// systemClock reads the Go runtime wall clock.
//
// On TinyGo the wall clock starts at the epoch unless the runtime has
// been given real time; the watch still ticks and renders either way.
type systemClock struct{}

func (systemClock) Now() DateTime {
	now := time.Now()
	return DateTime{
		Hour:   now.Hour(),
		Minute: now.Minute(),
		Month:  int(now.Month()) - 1,
		Day:    now.Day(),
	}
}
