package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultLoginRatePerMin = 5

type throttleEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginThrottle is a token bucket per client IP. Entries idle for a minute
// have refilled completely and are dropped by the sweep loop.
type LoginThrottle struct {
	mu       sync.Mutex
	entries  map[string]*throttleEntry
	perMin   int
	idle     time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewLoginThrottle(perMin int) *LoginThrottle {
	if perMin <= 0 {
		perMin = defaultLoginRatePerMin
	}
	return &LoginThrottle{
		entries: make(map[string]*throttleEntry),
		perMin:  perMin,
		idle:    time.Minute,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
}

// Allow consumes one login attempt for key.
func (t *LoginThrottle) Allow(key string) bool {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[key]
	if !ok {
		entry = &throttleEntry{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(t.perMin)), t.perMin),
		}
		t.entries[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (t *LoginThrottle) sweep() {
	cutoff := t.now().Add(-t.idle)

	t.mu.Lock()
	defer t.mu.Unlock()
	for key, entry := range t.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(t.entries, key)
		}
	}
}

// Len is the number of tracked clients.
func (t *LoginThrottle) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Start schedules the sweep loop; Stop ends it.
func (t *LoginThrottle) Start() {
	go t.cleanup()
}

func (t *LoginThrottle) cleanup() {
	ticker := time.NewTicker(t.idle)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.sweep()
		case <-t.stopCh:
			return
		}
	}
}

func (t *LoginThrottle) Stop() {
	t.stopOnce.Do(func() { close(t.stopCh) })
}
