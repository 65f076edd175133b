package async_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l10n/pkg/async"
)

func TestGo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := async.Go(ctx, 21, func(_ context.Context, n int) (int, error) {
		time.Sleep(20 * time.Millisecond)
		return n * 2, nil
	})

	v, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, future.IsComplete())
}

func TestGoErrorPropagation(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("an error occurred in the function")

	future := async.Go(context.Background(), "x", func(context.Context, string) (string, error) {
		return "", expectedErr
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, expectedErr)
}

func TestGoPreCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	future := async.Go(ctx, 1, func(context.Context, int) (int, error) {
		called.Store(true)
		return 1, nil
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestGoRecoversPanic(t *testing.T) {
	t.Parallel()

	future := async.Go(context.Background(), 0, func(context.Context, int) (int, error) {
		panic("boom")
	})

	_, err := future.Await()
	require.ErrorIs(t, err, async.ErrPanic)
	assert.Contains(t, err.Error(), "boom")
}

func TestIsComplete(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})

	future := async.Go(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 1, nil
	})

	assert.False(t, future.IsComplete())
	close(release)

	_, err := future.Await()
	require.NoError(t, err)
	assert.True(t, future.IsComplete())

	select {
	case <-future.Done():
	default:
		t.Fatal("done channel must be closed after completion")
	}
}

func TestAwaitContext(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	future := async.Go(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 7, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := future.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Giving up does not cancel the computation
	close(release)
	v, err := future.AwaitContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fast := async.Go(ctx, 10, func(_ context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return ms, nil
	})
	v, err := fast.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	slow := async.Go(ctx, 200, func(_ context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return ms, nil
	})
	_, err = slow.AwaitWithTimeout(20 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
}

func TestResolved(t *testing.T) {
	t.Parallel()

	future := async.Resolved("done", nil)
	assert.True(t, future.IsComplete())

	v, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestConcurrentAwait(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32

	future := async.Go(context.Background(), 0, func(context.Context, int) (int, error) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		return 99, nil
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := future.Await()
			assert.NoError(t, err)
			assert.Equal(t, 99, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sleep := func(_ context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return ms, nil
	}

	results, err := async.WaitAll(
		async.Go(ctx, 30, sleep),
		async.Go(ctx, 10, sleep),
		async.Go(ctx, 20, sleep),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 10, 20}, results)
}

func TestWaitAllWithError(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("error from second")

	_, err := async.WaitAll(
		async.Resolved(1, nil),
		async.Resolved(0, expectedErr),
		async.Resolved(3, nil),
	)
	assert.ErrorIs(t, err, expectedErr)
}

func TestWaitAny(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	defer close(release)

	blocked := async.Go(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 0, nil
	})

	index, v, err := async.WaitAny(blocked, async.Resolved(5, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, 5, v)

	_, _, err = async.WaitAny[int]()
	assert.ErrorIs(t, err, async.ErrNoFutures)
}
