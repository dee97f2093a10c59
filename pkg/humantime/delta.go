package humantime

import "time"

// RelativeDelta is a calendar-aware time span decomposed into its natural
// display units, as opposed to a flat duration in seconds. Components are
// independent; the formatting helpers expect non-negative values and make
// no attempt to normalize or validate them.
type RelativeDelta struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every component is zero.
func (d RelativeDelta) IsZero() bool {
	return d == RelativeDelta{}
}

// Duration flattens the delta into a time.Duration, approximating a year
// as 365 days and a month as 30 days. Use it when a scheduler needs one
// sleepable span rather than display units.
func (d RelativeDelta) Duration() time.Duration {
	days := d.Years*365 + d.Months*30 + d.Days
	return time.Duration(days)*24*time.Hour +
		time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second
}

// component returns the value matching a display unit. Unknown units read
// as zero.
func (d RelativeDelta) component(u Unit) int {
	switch u {
	case Years:
		return d.Years
	case Months:
		return d.Months
	case Days:
		return d.Days
	case Hours:
		return d.Hours
	case Minutes:
		return d.Minutes
	case Seconds:
		return d.Seconds
	default:
		return 0
	}
}

// Between decomposes the span between two instants into calendar units.
// The result is the absolute span: argument order does not matter and
// every component is non-negative. Years and months follow calendar
// arithmetic with month-end clamping; the remainder is split into days,
// hours, minutes and seconds.
func Between(a, b time.Time) RelativeDelta {
	if a.Before(b) {
		a, b = b, a
	}

	months := (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
	if months > 0 && addMonths(b, months).After(a) {
		months--
	}
	anchor := addMonths(b, months)

	seconds := int(a.Sub(anchor) / time.Second)

	return RelativeDelta{
		Years:   months / 12,
		Months:  months % 12,
		Days:    seconds / 86400,
		Hours:   seconds % 86400 / 3600,
		Minutes: seconds % 3600 / 60,
		Seconds: seconds % 60,
	}
}

// addMonths shifts t by n calendar months, clamping the day of month so
// that Jan 31 + 1 month lands on Feb 28 rather than rolling into March.
func addMonths(t time.Time, n int) time.Time {
	year := t.Year()
	month := int(t.Month()) - 1 + n
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}

	day := t.Day()
	if last := daysInMonth(year, time.Month(month+1)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month+1), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth returns the length of a month; day zero of the following
// month is its last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
