package humantime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/relvacode/iso8601"
)

// RFC1123Layout is the exact pattern ParseRFC1123 accepts. The zone is the
// literal "GMT"; any other suffix is rejected.
const RFC1123Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

// infractionLayout is the fixed display form for infraction timestamps.
const infractionLayout = "2006-01-02 15:04"

// ParseError reports input text that does not conform to an expected time
// format. It wraps the underlying parser error.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing time %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseRFC1123 parses an RFC 1123 timestamp such as
// "Tue, 15 Nov 1994 08:12:31 GMT" into a UTC instant. The input must match
// the pattern exactly, zero padding and trailing "GMT" included.
func ParseRFC1123(s string) (time.Time, error) {
	t, err := time.Parse(RFC1123Layout, s)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Err: err}
	}
	return t.UTC(), nil
}

// FormatInfraction reformats an ISO-8601 timestamp into the fixed
// "YYYY-MM-DD HH:MM" display form used in infraction notices.
func FormatInfraction(timestamp string) (string, error) {
	t, err := parseISO(timestamp)
	if err != nil {
		return "", err
	}
	return t.Format(infractionLayout), nil
}

// FormatInfractionWithDuration renders an infraction timestamp with the
// humanized span between it and from appended, e.g.
// "2021-03-05 14:30 (1 day and 2 hours)".
func FormatInfractionWithDuration(timestamp string, from time.Time, maxUnits int) (string, error) {
	t, err := parseISO(timestamp)
	if err != nil {
		return "", err
	}
	duration := HumanizeDelta(Between(t, from), Seconds, maxUnits)
	return fmt.Sprintf("%s (%s)", t.Format(infractionLayout), duration), nil
}

// parseISO accepts the ISO-8601 family: flexible fractional seconds, an
// optional zone offset (absent reads as UTC), and a space in place of the
// "T" separator.
func parseISO(s string) (time.Time, error) {
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	t, err := iso8601.ParseString(s)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Err: err}
	}
	return t, nil
}

var errNotADuration = errors.New("not a duration")

// durationPattern matches compact duration strings such as "3w 2d" or
// "1y2m". Units must appear coarsest-first. Lowercase "m" is months;
// minutes are the capital "M".
var durationPattern = regexp.MustCompile(
	`\A(?:(?P<years>\d+) ?(?:years|year|Y|y) ?)?` +
		`(?:(?P<months>\d+) ?(?:months|month|m) ?)?` +
		`(?:(?P<weeks>\d+) ?(?:weeks|week|W|w) ?)?` +
		`(?:(?P<days>\d+) ?(?:days|day|D|d) ?)?` +
		`(?:(?P<hours>\d+) ?(?:hours|hour|H|h) ?)?` +
		`(?:(?P<minutes>\d+) ?(?:minutes|minute|M) ?)?` +
		`(?:(?P<seconds>\d+) ?(?:seconds|second|S|s))?\z`,
)

// ParseDurationString parses a compact duration string ("3w 2d", "1y 2m",
// "5M30s") into a RelativeDelta. Weeks fold into the Days component.
// Inputs that are not a duration, including the empty string, fail with a
// ParseError.
func ParseDurationString(s string) (RelativeDelta, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return RelativeDelta{}, &ParseError{Input: s, Err: errNotADuration}
	}

	var delta RelativeDelta
	matched := false
	for i, name := range durationPattern.SubexpNames() {
		if name == "" || m[i] == "" {
			continue
		}
		matched = true
		v, err := strconv.Atoi(m[i])
		if err != nil {
			return RelativeDelta{}, &ParseError{Input: s, Err: err}
		}
		switch name {
		case "years":
			delta.Years = v
		case "months":
			delta.Months = v
		case "weeks":
			delta.Days += v * 7
		case "days":
			delta.Days += v
		case "hours":
			delta.Hours = v
		case "minutes":
			delta.Minutes = v
		case "seconds":
			delta.Seconds = v
		}
	}
	if !matched {
		return RelativeDelta{}, &ParseError{Input: s, Err: errNotADuration}
	}
	return delta, nil
}
