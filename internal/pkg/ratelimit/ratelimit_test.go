package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter() (*Limiter, *clock) {
	c := &clock{now: time.Unix(1700000000, 0)}
	l := New(time.Minute, 10)
	l.now = c.Now
	return l, c
}

func TestLimiter_WindowLifecycle(t *testing.T) {
	l, c := newTestLimiter()

	for i := 0; i < 10; i++ {
		assert.True(t, l.AllowKey("1.2.3.4"), "request %d", i+1)
		c.Advance(time.Second)
	}
	assert.False(t, l.AllowKey("1.2.3.4"), "11th request in window")
	assert.False(t, l.AllowKey("1.2.3.4"), "denials are not counted but still denied")

	// other keys are independent
	assert.True(t, l.AllowKey("5.6.7.8"))

	c.Advance(51 * time.Second)
	assert.True(t, l.AllowKey("1.2.3.4"), "window elapsed")
	for i := 0; i < 9; i++ {
		assert.True(t, l.AllowKey("1.2.3.4"))
	}
	assert.False(t, l.AllowKey("1.2.3.4"))
}

func TestLimiter_WindowBoundaryIsInclusive(t *testing.T) {
	l, c := newTestLimiter()
	for i := 0; i < 10; i++ {
		require.True(t, l.AllowKey("k"))
	}
	c.Advance(time.Minute)
	assert.False(t, l.AllowKey("k"), "exactly one window later still belongs to the old window")
	c.Advance(time.Millisecond)
	assert.True(t, l.AllowKey("k"))
}

func TestLimiter_Sweep(t *testing.T) {
	l, c := newTestLimiter()

	l.AllowKey("old")
	c.Advance(90 * time.Second)
	l.AllowKey("fresh")

	assert.Equal(t, 0, l.Sweep(c.Now()))
	c.Advance(31 * time.Second)
	assert.Equal(t, 1, l.Sweep(c.Now()))
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_Defaults(t *testing.T) {
	l := New(0, 0)
	assert.Equal(t, DefaultWindow, l.Window())
	assert.Equal(t, DefaultLimit, l.Limit())
}

func TestLimiter_Concurrent(t *testing.T) {
	l := New(time.Minute, 10)
	var admitted atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.Allow(context.Background(), "shared")
			if err == nil && ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(10), admitted.Load())

	for i := 0; i < 100; i++ {
		l.AllowKey(fmt.Sprintf("client-%d", i))
	}
	assert.Equal(t, 101, l.Len())
}
