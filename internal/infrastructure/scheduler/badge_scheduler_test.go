package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecomputer struct {
	calls    atomic.Int32
	failures int32
}

func (f *fakeRecomputer) RecomputeAll(ctx context.Context) error {
	n := f.calls.Add(1)
	if n <= f.failures {
		return errors.New("transient failure")
	}
	return nil
}

func TestBadgeScheduler_RunOnce(t *testing.T) {
	rec := &fakeRecomputer{}
	s := NewBadgeScheduler(Config{Interval: time.Hour}, rec, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, int32(1), rec.calls.Load())
}

func TestBadgeScheduler_RunOnce_NotRunning(t *testing.T) {
	s := NewBadgeScheduler(Config{Interval: time.Hour}, &fakeRecomputer{}, zap.NewNop())

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrSchedulerNotRunning)
}

func TestBadgeScheduler_RetriesTransientFailures(t *testing.T) {
	rec := &fakeRecomputer{failures: 2}
	s := NewBadgeScheduler(Config{
		Interval:      time.Hour,
		RetryAttempts: 2,
		RetryDelay:    time.Millisecond,
	}, rec, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, int32(3), rec.calls.Load())
}

func TestBadgeScheduler_TickTriggersRecompute(t *testing.T) {
	rec := &fakeRecomputer{}
	s := NewBadgeScheduler(Config{Interval: 10 * time.Millisecond}, rec, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return rec.calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, s.Stop(context.Background()))
}

func TestBadgeScheduler_StartStopIdempotent(t *testing.T) {
	s := NewBadgeScheduler(Config{Interval: time.Hour}, &fakeRecomputer{}, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
