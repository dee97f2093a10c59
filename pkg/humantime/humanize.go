// Package humantime converts machine time representations into the
// natural-language strings a chat bot shows to end users: humanized
// calendar deltas ("1 day, 2 hours and 5 seconds"), elapsed-time phrases,
// infraction timestamps, and chat-client timestamp markup.
//
// All formatting is pure and stateless. The time-dependent entry points
// (TimeSince, UntilExpiration, Fuzzy, WaitUntil) sample the wall clock at
// call time; each formatter has a deterministic ...At twin that takes an
// explicit reference instant instead.
package humantime

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize/english"
)

// Unit selects a display granularity for humanized deltas. Values are the
// plural unit names, ordered from coarsest to finest.
type Unit string

// The six display units, in descending magnitude.
const (
	Years   Unit = "years"
	Months  Unit = "months"
	Days    Unit = "days"
	Hours   Unit = "hours"
	Minutes Unit = "minutes"
	Seconds Unit = "seconds"
)

var unitOrder = [...]Unit{Years, Months, Days, Hours, Minutes, Seconds}

// Singular returns the unit name with the pluralizing suffix stripped.
func (u Unit) Singular() string {
	return strings.TrimSuffix(string(u), "s")
}

// StringifyUnit renders a value with the correctly pluralized unit name.
//
//	StringifyUnit(1, Seconds)  == "1 second"
//	StringifyUnit(24, Hours)   == "24 hours"
//	StringifyUnit(0, Minutes)  == "less than a minute"
func StringifyUnit(value int, unit Unit) string {
	if value == 0 {
		return "less than a " + unit.Singular()
	}
	return english.Plural(value, unit.Singular(), "")
}

// HumanizeDelta renders a delta as readable prose, joining the final two
// parts with "and" and the rest with commas: "1 day, 2 hours and
// 5 seconds". Zero-valued components are skipped, never rendered.
//
// precision is the finest unit to include; maxUnits caps how many parts
// are rendered. When every component is zero, or precision cuts the list
// off before any non-zero component, the result falls back to
// "less than a <precision>". Callers usually want Seconds and 6.
//
// An unknown precision is not an error: the cut simply never triggers and
// all six units are considered.
func HumanizeDelta(delta RelativeDelta, precision Unit, maxUnits int) string {
	parts := make([]string, 0, len(unitOrder))
	for _, u := range unitOrder {
		if v := delta.component(u); v != 0 {
			parts = append(parts, StringifyUnit(v, u))
		}
		if u == precision || len(parts) >= maxUnits {
			break
		}
	}

	if len(parts) == 0 {
		return StringifyUnit(0, precision)
	}
	return english.WordSeries(parts, "and")
}

// TimeSince describes how long ago past was, e.g. "3 hours and
// 2 minutes ago". The clock is sampled at call time, so repeated calls
// drift; use TimeSinceAt for deterministic output.
func TimeSince(past time.Time, precision Unit, maxUnits int) string {
	return TimeSinceAt(past, time.Now().UTC(), precision, maxUnits)
}

// TimeSinceAt is TimeSince against an explicit reference instant. The
// delta is absolute, so an instant after now still renders as "... ago".
func TimeSinceAt(past, now time.Time, precision Unit, maxUnits int) string {
	return HumanizeDelta(Between(now, past), precision, maxUnits) + " ago"
}

// Sentinel renderings for UntilExpiration.
const (
	permanentDisplay = "permanent"
	expiredDisplay   = "expired"
)

// UntilExpiration describes the time remaining until an infraction expiry
// timestamp. An empty expiry means the infraction never expires and
// renders as "permanent"; a timestamp at or before now renders as
// "expired".
func UntilExpiration(expiry string, maxUnits int) (string, error) {
	return UntilExpirationAt(expiry, time.Now().UTC(), maxUnits)
}

// UntilExpirationAt is UntilExpiration against an explicit reference
// instant.
func UntilExpirationAt(expiry string, now time.Time, maxUnits int) (string, error) {
	if expiry == "" {
		return permanentDisplay, nil
	}

	t, err := parseISO(expiry)
	if err != nil {
		return "", err
	}
	if !t.After(now) {
		return expiredDisplay, nil
	}
	return HumanizeDelta(Between(t, now), Seconds, maxUnits), nil
}
