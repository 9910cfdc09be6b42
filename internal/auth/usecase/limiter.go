package usecase

import (
	"sync"
	"time"

	"logistic-api/internal/auth"
)

// attemptLimiter tracks failed logins per key inside a sliding window.
type attemptLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
	cfg      auth.LimitConfig
	clock    func() time.Time
}

func newAttemptLimiter(cfg auth.LimitConfig, clock func() time.Time) *attemptLimiter {
	if cfg.MaxFailures <= 0 || cfg.Window <= 0 {
		cfg = auth.DefaultLimitConfig()
	}
	return &attemptLimiter{
		failures: map[string][]time.Time{},
		cfg:      cfg,
		clock:    clock,
	}
}

// prune must be called with mu held.
func (l *attemptLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.cfg.Window)
	ts := l.failures[key]
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	ts = ts[i:]
	if len(ts) == 0 {
		delete(l.failures, key)
		return nil
	}
	l.failures[key] = ts
	return ts
}

// Allow reports whether key may attempt another login.
func (l *attemptLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.prune(key, l.clock())) < l.cfg.MaxFailures
}

func (l *attemptLimiter) Fail(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.clock()
	ts := append(l.prune(key, now), now)
	l.failures[key] = ts
	return len(ts)
}

func (l *attemptLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, key)
}
