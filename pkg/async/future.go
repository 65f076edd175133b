package async

import (
	"context"
	"fmt"
	"time"
)

// Future represents the result of an asynchronous computation.
// The result is written exactly once, before done is closed, so reads after
// done is closed need no further synchronization.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Go executes fn asynchronously with the given parameter and returns a Future
// for its result. A panic inside fn is recovered and reported as ErrPanic.
func Go[P, T any](ctx context.Context, param P, fn func(context.Context, P) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		// Early exit prevents useless work when context is pre-canceled
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx, param)
	}()

	return f
}

// Resolved returns an already completed Future holding value and err.
func Resolved[T any](value T, err error) *Future[T] {
	f := &Future[T]{value: value, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await waits for the asynchronous function to complete and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitContext waits for completion or for ctx to be done, whichever happens first.
// Giving up does not cancel the underlying computation.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.value, f.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// WaitAll waits for all futures to complete and returns their results in order.
// The first error encountered (in argument order) is returned alongside the
// results gathered so far.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, 0, len(futures))
	for _, future := range futures {
		v, err := future.Await()
		if err != nil {
			return results, err
		}
		results = append(results, v)
	}
	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the
// completed future with its result.
func WaitAny[T any](futures ...*Future[T]) (int, T, error) {
	if len(futures) == 0 {
		var zero T
		return -1, zero, ErrNoFutures
	}

	cases := make(chan int, len(futures))
	for i, future := range futures {
		go func(index int, f *Future[T]) {
			<-f.done
			cases <- index
		}(i, future)
	}

	index := <-cases
	v, err := futures[index].Await()
	return index, v, err
}
