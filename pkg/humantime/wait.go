package humantime

import (
	"context"
	"time"
)

// waitThreshold is the minimum delay worth suspending for. Anything
// shorter returns immediately so timer precision jitter cannot rapid-fire
// a scheduled event.
const waitThreshold = time.Second

// WaitUntil suspends the caller until the target instant. The delay is
// computed once and never re-checked, and delays of a second or less
// return immediately, so WaitUntil is unsuitable for sub-second triggers.
// Canceling the context aborts the wait early and returns ctx.Err().
func WaitUntil(ctx context.Context, target time.Time) error {
	delay := time.Until(target)
	if delay <= waitThreshold {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
