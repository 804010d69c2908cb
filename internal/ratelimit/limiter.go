// Package ratelimit provides an in-process fixed-window request limiter
// used to slow down brute-force attempts against the register and login
// endpoints. State lives in process memory only and is lost on restart.
package ratelimit

import (
	"sync"
	"time"
)

const (
	DefaultMaxRequests = 5
	DefaultWindow      = 60 * time.Second
)

type window struct {
	count   int
	started time.Time
}

// Limiter counts requests per client key inside fixed windows. A window
// opens on the first request for a key and resets lazily once it elapses;
// there is no background sweeper.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window

	max    int
	window time.Duration
	now    func() time.Time
}

func New(max int, windowSize time.Duration) *Limiter {
	if max <= 0 {
		max = DefaultMaxRequests
	}
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}
	return &Limiter{
		windows: make(map[string]*window),
		max:     max,
		window:  windowSize,
		now:     time.Now,
	}
}

// Allow records one request for key and reports whether it fits in the
// current window. The check and the increment happen atomically, so two
// concurrent calls can never both claim the last slot.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.started) >= l.window {
		l.windows[key] = &window{count: 1, started: now}
		return true
	}

	if w.count >= l.max {
		return false
	}
	w.count++
	return true
}

// Window returns the configured window size, used for Retry-After hints.
func (l *Limiter) Window() time.Duration {
	return l.window
}
