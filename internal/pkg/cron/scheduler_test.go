package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_StartIsIdempotent(t *testing.T) {
	var runs atomic.Int32

	s := NewScheduler()
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	s.Start() // second call while running must be a no-op
	defer s.Stop()

	// Each job runs once immediately on start; a duplicated Start would run
	// it twice.
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.True(t, s.Running())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler()
	s.Stop() // must not panic or block
	assert.False(t, s.Running())
}

func TestScheduler_StopCancelsJobs(t *testing.T) {
	started := make(chan struct{})
	var canceled atomic.Bool

	s := NewScheduler()
	s.AddJob("blocker", time.Hour, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		canceled.Store(true)
		return ctx.Err()
	})

	s.Start()
	<-started
	s.Stop()

	assert.True(t, canceled.Load())
	assert.False(t, s.Running())
}

func TestScheduler_RunOnce(t *testing.T) {
	var runs atomic.Int32

	s := NewScheduler()
	s.AddJob("a", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.AddJob("b", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), runs.Load())
}
