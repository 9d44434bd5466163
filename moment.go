package taskrt

import "time"

// UnixSeconds returns the current Unix time in seconds.
func UnixSeconds() int64 { return time.Now().Unix() }

// UnixMillis returns the current Unix time in milliseconds.
func UnixMillis() int64 { return time.Now().UnixMilli() }

// UnixMicros returns the current Unix time in microseconds.
func UnixMicros() int64 { return time.Now().UnixMicro() }

// UnixNanos returns the current Unix time in nanoseconds.
func UnixNanos() int64 { return time.Now().UnixNano() }

// Moment is a broken-down local date-time record, per spec §4.5.
type Moment struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Weekday              time.Weekday
	YearDay              int
	DST                  bool
}

// Now returns the current local time as a Moment.
func Now() Moment {
	t := time.Now().Local()
	return Moment{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: t.Weekday(),
		YearDay: t.YearDay(),
		DST:     t.IsDST(),
	}
}
