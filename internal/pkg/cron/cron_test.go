package cron

import (
	"context"
	"errors"
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

func TestRegisterValidation(t *testing.T) {
	s := New(nil)
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Register(Job{Name: "a", Interval: time.Second, Fn: noop}))
	assert.Error(t, s.Register(Job{Name: "a", Interval: time.Second, Fn: noop}))
	assert.Error(t, s.Register(Job{Name: "b", Interval: 0, Fn: noop}))
	assert.Error(t, s.Register(Job{Name: "c", Interval: time.Second}))
}

func TestRunRecordsStatus(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Register(Job{Name: "ok", Interval: time.Hour, Fn: func(context.Context) error { return nil }}))
	require.NoError(t, s.Register(Job{Name: "bad", Interval: time.Hour, Fn: func(context.Context) error { return errors.New("boom") }}))

	require.NoError(t, s.Run(context.Background(), "ok"))
	require.NoError(t, s.Run(context.Background(), "bad"))
	assert.Error(t, s.Run(context.Background(), "missing"))

	items := s.List()
	require.Len(t, items, 2)
	assert.Equal(t, "bad", items[0].Name)
	assert.Equal(t, StatusReject, items[0].Status)
	assert.Equal(t, "boom", items[0].Message)
	assert.Equal(t, StatusFulfill, items[1].Status)
	assert.Equal(t, 1, items[1].Runs)
	assert.NotNil(t, items[1].LastRunAt)
}

func TestStartStop(t *testing.T) {
	s := New(nil)
	var runs atomic.Int32
	require.NoError(t, s.Register(Job{
		Name:     "tick",
		Interval: 5 * time.Millisecond,
		Fn: func(context.Context) error {
			runs.Add(1)
			return nil
		},
	}))

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after Stop")
}

func TestStopWithoutStart(t *testing.T) {
	New(nil).Stop()
}
