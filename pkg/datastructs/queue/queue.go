package queue

import "context"

// Queue is a generic interface for unbounded FIFO queues shared between goroutines.
type Queue[T any] interface {
	// Push adds an item to the back of the queue. It never blocks.
	Push(item T)

	// Pop removes and returns the item at the front of the queue.
	// It blocks until an item is available.
	Pop() T

	// Count returns the number of items currently queued.
	// The value is a snapshot and may be stale as soon as it is returned.
	Count() int
}

// ContextQueue is a Queue whose consumers can stop waiting.
type ContextQueue[T any] interface {
	Queue[T]

	// PopContext is like Pop but returns an error wrapping ctx.Err()
	// if ctx is done before an item arrives.
	PopContext(ctx context.Context) (T, error)
}

// Stats is a consistent snapshot of a queue's counters.
type Stats struct {
	Count   int    `json:"count"`   // Items currently queued
	Waits   uint64 `json:"waits"`   // Blocking episodes so far
	Waiting int    `json:"waiting"` // Consumers blocked right now
	Pushed  uint64 `json:"pushed"`  // Total items pushed
	Popped  uint64 `json:"popped"`  // Total items popped
}
