package astro

import (
	"fmt"
	"time"
)

// maxOffsetSeconds bounds UTC offsets to ±18h, the widest zone Go accepts.
const maxOffsetSeconds = 18 * 3600

// Timestamp is a local civil time: calendar fields plus the offset from UTC
// in seconds east. It is a plain value; build one with NewTimestamp or
// FromTime and never mutate it after validation.
type Timestamp struct {
	Year       int
	Month      int // 1..12
	Day        int // 1..days in month
	Hour       int // 0..23
	Minute     int // 0..59
	Second     int // 0..59, leap seconds are not represented
	Nanosecond int // 0..999999999
	Offset     int // seconds east of UTC
}

// NewTimestamp builds and validates a Timestamp.
func NewTimestamp(year, month, day, hour, minute, second, nanosecond, offset int) (Timestamp, error) {
	ts := Timestamp{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: nanosecond,
		Offset:     offset,
	}
	if err := ts.Validate(); err != nil {
		return Timestamp{}, err
	}
	return ts, nil
}

// FromTime captures t's wall clock fields and zone offset. The result is
// always valid for years 1..9999.
func FromTime(t time.Time) Timestamp {
	_, offset := t.Zone()
	return Timestamp{
		Year:       t.Year(),
		Month:      int(t.Month()),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
		Offset:     offset,
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidTimestamp.
func (ts Timestamp) Validate() error {
	switch {
	case ts.Year < 1 || ts.Year > 9999:
		return fmt.Errorf("%w: year %d outside [1,9999]", ErrInvalidTimestamp, ts.Year)
	case ts.Month < 1 || ts.Month > 12:
		return fmt.Errorf("%w: month %d outside [1,12]", ErrInvalidTimestamp, ts.Month)
	case ts.Day < 1 || ts.Day > daysIn(ts.Year, ts.Month):
		return fmt.Errorf("%w: day %d invalid for %04d-%02d", ErrInvalidTimestamp, ts.Day, ts.Year, ts.Month)
	case ts.Hour < 0 || ts.Hour > 23:
		return fmt.Errorf("%w: hour %d outside [0,24)", ErrInvalidTimestamp, ts.Hour)
	case ts.Minute < 0 || ts.Minute > 59:
		return fmt.Errorf("%w: minute %d outside [0,60)", ErrInvalidTimestamp, ts.Minute)
	case ts.Second < 0 || ts.Second > 59:
		return fmt.Errorf("%w: second %d outside [0,60)", ErrInvalidTimestamp, ts.Second)
	case ts.Nanosecond < 0 || ts.Nanosecond >= int(time.Second):
		return fmt.Errorf("%w: nanosecond %d outside [0,1e9)", ErrInvalidTimestamp, ts.Nanosecond)
	case ts.Offset < -maxOffsetSeconds || ts.Offset > maxOffsetSeconds:
		return fmt.Errorf("%w: utc offset %ds outside ±18h", ErrInvalidTimestamp, ts.Offset)
	}
	return nil
}

// Time converts the timestamp to a time.Time in a fixed zone.
func (ts Timestamp) Time() time.Time {
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day,
		ts.Hour, ts.Minute, ts.Second, ts.Nanosecond,
		time.FixedZone("", ts.Offset))
}

// UTC returns the same instant expressed with a zero offset.
func (ts Timestamp) UTC() Timestamp {
	return FromTime(ts.Time().UTC())
}

// ClockHours returns the local wall clock time as real hours in [0, 24).
func (ts Timestamp) ClockHours() float64 {
	return float64(ts.Hour) +
		float64(ts.Minute)/60 +
		(float64(ts.Second)+float64(ts.Nanosecond)/1e9)/3600
}

// DayOfYear returns the 1-based local day of year with the time of day as
// the fractional part, so Jan 1 00:00 is 1.0 and Jan 1 12:00 is 1.5.
func (ts Timestamp) DayOfYear() float64 {
	yday := time.Date(ts.Year, time.Month(ts.Month), ts.Day, 0, 0, 0, 0, time.UTC).YearDay()
	return float64(yday) + ts.ClockHours()/24
}

func (ts Timestamp) String() string {
	return ts.Time().Format(time.RFC3339Nano)
}

func daysIn(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
