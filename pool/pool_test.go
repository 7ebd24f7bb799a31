package pool

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_Submit(t *testing.T) {
	wp := New(2)
	defer wp.Close()

	assert.Equal(t, 2, wp.NumWorkers())

	done := make(chan struct{})
	err := wp.Submit(context.Background(), func() {
		close(done)
	})
	require.NoError(t, err)
	<-done
}

func TestWorkerPool_Execute(t *testing.T) {
	wp := New(4)
	defer wp.Close()

	var counter atomic.Int64
	tasks := make([]func(), 16)
	for i := range tasks {
		tasks[i] = func() {
			counter.Add(1)
		}
	}

	require.NoError(t, wp.Execute(context.Background(), tasks))
	assert.Equal(t, int64(16), counter.Load(), "Execute must not return before all tasks ran")
}

func TestWorkerPool_ExecuteEmpty(t *testing.T) {
	wp := New(1)
	defer wp.Close()

	assert.NoError(t, wp.Execute(context.Background(), nil))
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	wp := New(1)
	wp.Close()

	err := wp.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrClosed)

	err = wp.Execute(context.Background(), []func(){func() {}})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	wp := New(1)
	wp.Close()
	wp.Close() // must not panic
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	wp := New(0)
	defer wp.Close()

	assert.Positive(t, wp.NumWorkers())
}
