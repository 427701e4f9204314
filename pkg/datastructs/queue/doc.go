// Package queue provides an unbounded, blocking FIFO queue for handing
// values between goroutines.
//
// SyncQueue guards its items with one mutex and signals a condition
// variable once per Push, so a consumer blocked in Pop is woken only when
// there is something to take. Consumers re-check emptiness after every
// wakeup, which makes spurious wakeups harmless.
//
//	q := queue.New[int]()
//	go q.Push(42)
//	v := q.Pop() // blocks until 42 arrives
//
// Diagnostic events (push, pop, wait) are delivered to an Observer set with
// WithObserver. The queue itself never writes to any output.
package queue
