package tasks

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

type countingWarmer struct {
	calls atomic.Int32
	err   error
}

func (w *countingWarmer) Warm(context.Context) (int, error) {
	w.calls.Add(1)
	return 3, w.err
}

func TestStyleCacheWarmTask_RunOnce(t *testing.T) {
	warmer := &countingWarmer{}
	task, err := NewStyleCacheWarmTask(warmer, "", zap.NewNop())
	require.NoError(t, err)
	defer task.Stop()

	task.RunOnce(context.Background())
	assert.Equal(t, int32(1), warmer.calls.Load())

	warmer.err = errors.New("redis down")
	task.RunOnce(context.Background())
	assert.Equal(t, int32(2), warmer.calls.Load())
}

func TestStyleCacheWarmTask_InvalidSchedule(t *testing.T) {
	_, err := NewStyleCacheWarmTask(&countingWarmer{}, "not a cron spec", zap.NewNop())
	assert.Error(t, err)
}

func TestStyleCacheWarmTask_Stop(t *testing.T) {
	task, err := NewStyleCacheWarmTask(&countingWarmer{}, "@every 1h", zap.NewNop())
	require.NoError(t, err)

	select {
	case <-task.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("cron did not stop")
	}
}
