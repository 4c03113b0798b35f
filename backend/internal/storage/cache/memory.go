// Package cache stores GitHub star counts between requests, in process or in Redis.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mateoroldos/personal-blog/shared/logger"
)

type entry struct {
	stars   int
	expires time.Time
}

// Memory is an in-process star cache with per-entry expiry.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) GetStars(_ context.Context, repo string) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[repo]
	if !ok || !m.now().Before(e.expires) {
		return 0, false, nil
	}
	return e.stars, true, nil
}

func (m *Memory) SetStars(_ context.Context, repo string, stars int) error {
	m.mu.Lock()
	m.entries[repo] = entry{stars: stars, expires: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

// sweep drops expired entries and returns how many were removed.
func (m *Memory) sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for repo, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, repo)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired entries every interval until ctx is done.
// A non-positive interval leaves expired entries to be dropped on read.
func (m *Memory) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		logger.Log.Warn("star cache janitor disabled", "interval", interval)
		return
	}
	ticker := time.NewTicker(interval)
	logger.Log.Info("started star cache janitor", "interval", interval, "ttl", m.ttl)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := m.sweep(); n > 0 {
					logger.Log.Debug("star cache sweep", "removed", n)
				}
			case <-ctx.Done():
				logger.Log.Info("star cache janitor stopped")
				return
			}
		}
	}()
}
