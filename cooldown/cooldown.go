package cooldown

import (
	"context"
	"fmt"
	"time"
)

// Ledger tracks per-reporter submission cooldowns
type Ledger interface {
	// Acquire starts a cooldown of window for key. When one is already
	// running it reports false and the time left on it.
	Acquire(ctx context.Context, key string, window time.Duration) (remaining time.Duration, ok bool, err error)
	// Release ends the cooldown of key early
	Release(ctx context.Context, key string) error
}

// Key returns the ledger key of a reporter
func Key(fivemID int) string {
	return fmt.Sprintf("report-cooldown:%d", fivemID)
}

// Seconds rounds a remaining duration up to whole seconds
func Seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
