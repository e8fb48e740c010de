// Package clock turns timestamps into the text shown on the clock face.
package clock

import (
	"fmt"
	"time"
)

// Sample is the clock-derived state for one tick.
type Sample struct {
	Hour   int
	Minute int
	Time   string // "HH:MM" or "hh:MM"
	Date   string // "mon 03 07"
}

// Weekday abbreviations indexed by time.Weekday. Fixed so output never depends
// on the host locale.
var weekdays = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// NewSample derives a Sample from t using t's location.
func NewSample(t time.Time, use24h bool) Sample {
	hour, minute := t.Hour(), t.Minute()
	return Sample{
		Hour:   hour,
		Minute: minute,
		Time:   FormatTime(hour, minute, use24h),
		Date:   FormatDate(t.Weekday(), t.Month(), t.Day()),
	}
}

// FormatTime renders hour and minute. The 12h form maps hour 0 and 12 to 12
// and has no AM/PM suffix.
func FormatTime(hour, minute int, use24h bool) string {
	if !use24h {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatDate renders a lowercase weekday followed by month and day.
func FormatDate(weekday time.Weekday, month time.Month, day int) string {
	return fmt.Sprintf("%s %02d %02d", Lower(weekdays[weekday%7]), int(month), day)
}

// Lower returns s with ASCII letters lowercased. Other bytes are copied as is.
func Lower(s string) string {
	buf := []byte(s)
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
		}
	}
	return string(buf)
}
