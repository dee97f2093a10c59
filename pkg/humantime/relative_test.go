package humantime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyAt(t *testing.T) {
	now := time.Date(2022, 1, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 days ago", FuzzyAt(now.Add(-72*time.Hour), now))
	assert.Equal(t, "in 2 hours", FuzzyAt(now.Add(2*time.Hour), now))
	assert.Equal(t, "a few seconds ago", FuzzyAt(now.Add(-2*time.Second), now))
}

func TestCompact(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{450 * time.Millisecond, "450ms"},
		{1200 * time.Millisecond, "1.2s"},
		{59 * time.Second, "59.0s"},
		{2*time.Minute + 15300*time.Millisecond, "2m 15.3s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compact(tt.d))
	}
}
