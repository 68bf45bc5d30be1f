package latency

import (
	"context"
	"time"
)

// Sleep blocks for d or until the context is done, whichever comes first.
// The memory repositories use it to mimic real backend round trips.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
