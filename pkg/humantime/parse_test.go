package humantime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRFC1123(t *testing.T) {
	got, err := ParseRFC1123("Tue, 15 Nov 1994 08:12:31 GMT")
	require.NoError(t, err)

	assert.Equal(t, time.Date(1994, 11, 15, 8, 12, 31, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseRFC1123Rejects(t *testing.T) {
	inputs := []string{
		"Xyz, 15 Nov 1994 08:12:31 GMT",      // not a weekday
		"Tue, 15 Nov 1994 08:12:31",          // missing GMT
		"Tue, 15 Nov 1994 08:12:31 UTC",      // wrong zone literal
		"15 Nov 1994 08:12:31 GMT",           // missing weekday
		"Tue, 15 November 1994 08:12:31 GMT", // long month name
		"Tuesday 15 Nov 1994 08:12:31 GMT",   // long weekday, no comma
		"",
	}
	for _, in := range inputs {
		_, err := ParseRFC1123(in)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "input %q", in)
	}
}

func TestFormatInfraction(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2021-03-05T14:30:00+00:00", "2021-03-05 14:30"},
		{"2021-03-05T14:30:00Z", "2021-03-05 14:30"},
		{"2021-03-05T14:30:00", "2021-03-05 14:30"},
		{"2021-03-05 14:30:00", "2021-03-05 14:30"},
		{"1994-11-15T08:12:31.000123+00:00", "1994-11-15 08:12"},
	}
	for _, tt := range tests {
		got, err := FormatInfraction(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatInfractionRejects(t *testing.T) {
	inputs := []string{
		"yesterday",
		"2021/03/05T14:30:00",
		"",
	}
	for _, in := range inputs {
		_, err := FormatInfraction(in)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "input %q", in)
	}
}

func TestFormatInfractionWithDuration(t *testing.T) {
	from := time.Date(2021, 3, 4, 12, 30, 0, 0, time.UTC)

	got, err := FormatInfractionWithDuration("2021-03-05T14:30:00+00:00", from, 2)
	require.NoError(t, err)
	assert.Equal(t, "2021-03-05 14:30 (1 day and 2 hours)", got)
}

func TestParseDurationString(t *testing.T) {
	tests := []struct {
		in   string
		want RelativeDelta
	}{
		{"3w 2d", RelativeDelta{Days: 23}},
		{"1y 2m", RelativeDelta{Years: 1, Months: 2}},
		{"5M30s", RelativeDelta{Minutes: 5, Seconds: 30}},
		{"2 hours 30 minutes", RelativeDelta{Hours: 2, Minutes: 30}},
		{"1h", RelativeDelta{Hours: 1}},
		{"120s", RelativeDelta{Seconds: 120}},
		{"1 year 2 months 3 weeks 4 days", RelativeDelta{Years: 1, Months: 2, Days: 25}},
	}
	for _, tt := range tests {
		got, err := ParseDurationString(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseDurationStringRejects(t *testing.T) {
	inputs := []string{
		"",
		"garbage",
		"2x",
		"1h 2d", // units out of order
		"-3h",
	}
	for _, in := range inputs {
		_, err := ParseDurationString(in)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "input %q", in)
	}
}

func TestParseErrorUnwraps(t *testing.T) {
	_, err := ParseRFC1123("nonsense")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "nonsense", perr.Input)
	assert.Error(t, perr.Unwrap())
	assert.Contains(t, err.Error(), "nonsense")
}
