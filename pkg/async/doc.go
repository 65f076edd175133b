// Package async provides utilities for asynchronous programming with Go generics.
//
// This package implements a Future pattern for non-blocking operations with timeout
// support and coordination utilities for managing multiple asynchronous computations.
// The localization engine uses it to hand out an already-started load to every
// caller that races on the same cache key.
//
// # Core Types
//
// Future[T] represents the result of an asynchronous computation. It provides methods
// to wait for completion (Await, AwaitContext), check status without blocking
// (IsComplete, Done), and handle timeouts (AwaitWithTimeout).
//
// # Usage
//
// Basic asynchronous operation:
//
//	func fetchUser(ctx context.Context, userID int) (User, error) {
//		// Simulate database call
//		time.Sleep(100 * time.Millisecond)
//		return User{ID: userID, Name: "John"}, nil
//	}
//
//	// Execute asynchronously
//	future := async.Go(ctx, 123, fetchUser)
//
//	// Do other work...
//
//	// Wait for result
//	user, err := future.Await()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Using timeout:
//
//	user, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("Operation timed out")
//	}
//
// Stop waiting when a request ends without canceling the computation:
//
//	user, err := future.AwaitContext(r.Context())
//
// # Coordination Utilities
//
// WaitAll waits for all futures to complete and returns their results:
//
//	users, err := async.WaitAll(
//		async.Go(ctx, 1, fetchUser),
//		async.Go(ctx, 2, fetchUser),
//	)
//
// WaitAny returns as soon as any future completes:
//
//	index, user, err := async.WaitAny(futures...)
//
// # Error Handling
//
//   - ErrTimeout: returned when AwaitWithTimeout exceeds its duration
//   - ErrNoFutures: returned when WaitAny is called with no futures
//   - ErrPanic: wraps a panic recovered from the asynchronous function
//
// # Concurrency Safety
//
// All operations are safe for concurrent use. The result is written once before
// the done channel is closed; any number of goroutines may await it.
package async
