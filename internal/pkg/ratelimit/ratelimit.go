// Package ratelimit provides per-client fixed-window admission control.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultWindow = 60 * time.Second
	DefaultLimit  = 10
)

// Allower admits or rejects a request from a client key.
type Allower interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type entry struct {
	count       int
	windowStart time.Time
}

// Limiter is an in-memory window counter. The first request of a key opens a
// window; up to limit requests are admitted until the window elapses, after
// which the next request opens a fresh window. Rejected requests are not
// counted.
type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	entries map[string]*entry
	now     func() time.Time
}

// New builds a limiter. Non-positive values fall back to the defaults.
func New(window time.Duration, limit int) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Limiter{
		window:  window,
		limit:   limit,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Window returns the window length.
func (l *Limiter) Window() time.Duration { return l.window }

// Limit returns the number of requests admitted per window.
func (l *Limiter) Limit() int { return l.limit }

// AllowKey reports whether a request from key is admitted right now.
func (l *Limiter) AllowKey(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStart) > l.window {
		l.entries[key] = &entry{count: 1, windowStart: now}
		return true
	}
	if e.count >= l.limit {
		return false
	}
	e.count++
	return true
}

// Allow implements Allower. The in-memory limiter never fails.
func (l *Limiter) Allow(_ context.Context, key string) (bool, error) {
	return l.AllowKey(key), nil
}

// Sweep removes keys whose window started more than two windows before now
// and returns how many were dropped.
func (l *Limiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, e := range l.entries {
		if now.Sub(e.windowStart) > 2*l.window {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
