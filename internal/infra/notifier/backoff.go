package notifier

import (
	"context"
	"math"
	"time"
)

func backoffFor(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
}

// waitBackoff sleeps before a retry attempt; attempt 0 returns immediately.
func waitBackoff(ctx context.Context, attempt int) error {
	if attempt == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(backoffFor(attempt)):
		return nil
	}
}
