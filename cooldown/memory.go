package cooldown

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// MemoryLedger keeps cooldowns in process memory. Expired entries are
// dropped by Prune, which Start schedules with cron.
type MemoryLedger struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
	cron    *cron.Cron
}

// NewMemoryLedger returns an empty ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		expires: map[string]time.Time{},
		now:     time.Now,
		cron:    cron.New(cron.WithLocation(time.UTC)),
	}
}

// Acquire implements Ledger
func (m *MemoryLedger) Acquire(_ context.Context, key string, window time.Duration) (time.Duration, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if until, ok := m.expires[key]; ok && until.After(now) {
		return until.Sub(now), false, nil
	}
	if window > 0 {
		m.expires[key] = now.Add(window)
	}
	return 0, true, nil
}

// Release implements Ledger
func (m *MemoryLedger) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.expires, key)
	return nil
}

// Prune removes expired cooldowns and returns how many were dropped
func (m *MemoryLedger) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	n := 0
	for key, until := range m.expires {
		if !until.After(now) {
			delete(m.expires, key)
			n++
		}
	}
	return n
}

// Len returns the number of tracked cooldowns, expired or not
func (m *MemoryLedger) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.expires)
}

// Start schedules Prune on the cron spec, e.g. "@every 1m"
func (m *MemoryLedger) Start(spec string) error {
	_, err := m.cron.AddFunc(spec, func() {
		if n := m.Prune(); n > 0 {
			zap.S().Debugw("pruned expired cooldowns", "count", n)
		}
	})
	if err != nil {
		return err
	}
	m.cron.Start()
	return nil
}

// Stop halts the prune job and waits for a running prune to finish
func (m *MemoryLedger) Stop() {
	<-m.cron.Stop().Done()
}
