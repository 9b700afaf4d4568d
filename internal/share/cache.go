package share

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/rubric"
)

const (
	DefaultTTL        = time.Hour
	DefaultMaxEntries = 1000
)

// Entry is a persisted analysis keyed by its result id.
type Entry struct {
	ID           string        `json:"id"`
	Mode         rubric.Mode   `json:"mode"`
	OverallScore int           `json:"overall_vampire_score"`
	Bucket       rubric.Bucket `json:"bucket"`
	Scores       rubric.Scores `json:"scores"`
	Evidence     []string      `json:"evidence"`
	Roast        string        `json:"roast"`
	Timestamp    int64         `json:"timestamp"`
}

// NewEntry snapshots an analysis for sharing.
func NewEntry(id string, res rubric.Result, roast string, now time.Time) Entry {
	evidence := make([]string, len(res.Evidence))
	copy(evidence, res.Evidence)
	return Entry{
		ID:           id,
		Mode:         res.Mode,
		OverallScore: res.OverallScore,
		Bucket:       res.Bucket,
		Scores:       res.Scores,
		Evidence:     evidence,
		Roast:        roast,
		Timestamp:    now.UnixMilli(),
	}
}

// Store keeps shared results. Put overwrites any entry with the same id.
type Store interface {
	Put(ctx context.Context, entry Entry) error
	Get(ctx context.Context, id string) (Entry, bool, error)
}

type cacheItem struct {
	entry    Entry
	storedAt time.Time
}

// MemoryCache is a process-local Store bounded by TTL and entry count.
// Whichever bound is reached first evicts the oldest entries first.
type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	order      *list.List // front = oldest
	items      map[string]*list.Element
	now        func() time.Time
}

// NewMemoryCache builds a cache. Non-positive bounds fall back to defaults.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		order:      list.New(),
		items:      make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Put stores entry, replacing and re-aging any previous entry with its id.
func (c *MemoryCache) Put(_ context.Context, entry Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[entry.ID]; ok {
		c.order.Remove(el)
		delete(c.items, entry.ID)
	}
	c.items[entry.ID] = c.order.PushBack(&cacheItem{entry: entry, storedAt: c.now()})

	for c.order.Len() > c.maxEntries {
		c.removeLocked(c.order.Front())
	}
	return nil
}

// Get returns the entry for id when present and not expired.
func (c *MemoryCache) Get(_ context.Context, id string) (Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[id]
	if !ok {
		return Entry{}, false, nil
	}
	item := el.Value.(*cacheItem)
	if c.expired(item, c.now()) {
		c.removeLocked(el)
		return Entry{}, false, nil
	}
	return item.entry, true, nil
}

// Sweep drops expired entries and returns how many were removed.
func (c *MemoryCache) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.order.Front(); el != nil; {
		item := el.Value.(*cacheItem)
		if !c.expired(item, now) {
			// entries are in insertion order, the rest are younger
			break
		}
		next := el.Next()
		c.removeLocked(el)
		removed++
		el = next
	}
	return removed
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *MemoryCache) expired(item *cacheItem, now time.Time) bool {
	return now.Sub(item.storedAt) > c.ttl
}

func (c *MemoryCache) removeLocked(el *list.Element) {
	item := c.order.Remove(el).(*cacheItem)
	delete(c.items, item.entry.ID)
}
