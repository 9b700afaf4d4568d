// Package analytics records usage events and derives dashboard statistics.
package analytics

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/models"
)

// DefaultMaxEvents bounds how many events a store retains.
const DefaultMaxEvents = 10000

// Store persists analytics events.
type Store interface {
	Add(ctx context.Context, event *models.AnalyticsEvent) error
	// Since returns events newer than t, oldest first.
	Since(ctx context.Context, t time.Time) ([]models.AnalyticsEvent, error)
	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]models.AnalyticsEvent, error)
	// Trim drops all but the newest keep events.
	Trim(ctx context.Context, keep int) (int64, error)
}

// MemoryStore keeps the newest events in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	events []models.AnalyticsEvent
	max    int
}

// NewMemoryStore builds a store retaining at most max events.
func NewMemoryStore(max int) *MemoryStore {
	if max <= 0 {
		max = DefaultMaxEvents
	}
	return &MemoryStore{max: max}
}

func (s *MemoryStore) Add(_ context.Context, event *models.AnalyticsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev := *event
	ev.Properties = copyProperties(event.Properties)

	// Events normally arrive in order; keep the slice sorted when they do not.
	n := len(s.events)
	if n == 0 || !ev.Timestamp.Before(s.events[n-1].Timestamp) {
		s.events = append(s.events, ev)
	} else {
		i := sort.Search(n, func(i int) bool { return s.events[i].Timestamp.After(ev.Timestamp) })
		s.events = append(s.events, models.AnalyticsEvent{})
		copy(s.events[i+1:], s.events[i:])
		s.events[i] = ev
	}

	if over := len(s.events) - s.max; over > 0 {
		s.events = append(s.events[:0:0], s.events[over:]...)
	}
	return nil
}

func (s *MemoryStore) Since(_ context.Context, t time.Time) ([]models.AnalyticsEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := sort.Search(len(s.events), func(i int) bool { return s.events[i].Timestamp.After(t) })
	out := make([]models.AnalyticsEvent, len(s.events)-i)
	copy(out, s.events[i:])
	return out, nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]models.AnalyticsEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]models.AnalyticsEvent, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}

func (s *MemoryStore) Trim(_ context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	over := len(s.events) - keep
	if keep < 0 || over <= 0 {
		return 0, nil
	}
	s.events = append(s.events[:0:0], s.events[over:]...)
	return int64(over), nil
}

// Len returns the number of retained events.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

func copyProperties(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
