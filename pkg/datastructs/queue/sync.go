package queue

import (
	"context"
	"sync"
	"time"

	"github.com/edwingeng/deque"
	"github.com/pkg/errors"
)

var _ ContextQueue[int] = (*SyncQueue[int])(nil)

// SyncQueue is an unbounded FIFO queue guarded by one mutex and one
// condition variable. Producers never block; consumers block in Pop until
// an item is available.
//
// There is no fairness among blocked consumers: which one a Push wakes is
// decided by sync.Cond.
type SyncQueue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond  // Signalled once per pushed item
	items    deque.Deque // Not thread-safe, guarded by mu

	waits   uint64 // Blocking episodes, one per consumer that found the queue empty
	waiting int    // Consumers currently suspended
	pushed  uint64
	popped  uint64

	observer Observer[T]
}

// New creates an empty queue.
func New[T any](opts ...Option[T]) *SyncQueue[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	if o.observer == nil {
		o.observer = nopObserver[T]{}
	}

	q := &SyncQueue[T]{
		items:    deque.NewDeque(),
		observer: o.observer,
	}
	q.notEmpty = sync.NewCond(&q.mu)

	for _, v := range o.initial {
		q.items.PushBack(v)
		q.pushed++
	}

	return q
}

// Push appends item to the back of the queue and wakes at most one blocked consumer.
func (q *SyncQueue[T]) Push(item T) {
	q.mu.Lock()
	q.items.PushBack(item)
	q.pushed++
	e := Event[T]{Kind: EventPush, Item: item, Count: q.items.Len(), Waits: q.waits}
	q.mu.Unlock()

	// One item became available, so one consumer is enough.
	q.notEmpty.Signal()
	q.observer.Observe(e)
}

// Pop removes and returns the oldest item, blocking while the queue is empty.
// It blocks forever if nothing is ever pushed; use PopContext to bound the wait.
func (q *SyncQueue[T]) Pop() T {
	q.mu.Lock()
	q.waitLocked(nil)
	item, e := q.popLocked()
	q.mu.Unlock()

	q.observer.Observe(e)
	return item
}

// PopContext is like Pop but gives up when ctx is done.
// The returned error wraps ctx.Err(). An item that is available when the
// consumer wakes is always returned, even if ctx was cancelled meanwhile.
func (q *SyncQueue[T]) PopContext(ctx context.Context) (T, error) {
	var zero T

	q.mu.Lock()
	if q.items.Empty() {
		if err := ctx.Err(); err != nil {
			q.mu.Unlock()
			return zero, errors.WithStack(err)
		}

		stop := context.AfterFunc(ctx, q.wakeAll)
		defer stop()

		if !q.waitLocked(func() bool { return ctx.Err() != nil }) {
			q.mu.Unlock()
			return zero, errors.WithStack(ctx.Err())
		}
	}
	item, e := q.popLocked()
	q.mu.Unlock()

	q.observer.Observe(e)
	return item, nil
}

// PopTimeout is like Pop but waits at most d.
// It returns false if no item arrived in time.
func (q *SyncQueue[T]) PopTimeout(d time.Duration) (T, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	item, err := q.PopContext(ctx)
	return item, err == nil
}

// TryPop removes and returns the oldest item without blocking.
// It returns false if the queue is empty. It never counts as a wait.
func (q *SyncQueue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	if q.items.Empty() {
		q.mu.Unlock()
		var zero T
		return zero, false
	}
	item, e := q.popLocked()
	q.mu.Unlock()

	q.observer.Observe(e)
	return item, true
}

// Count returns the number of queued items.
func (q *SyncQueue[T]) Count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// Waits returns how many times a consumer found the queue empty and blocked.
func (q *SyncQueue[T]) Waits() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.waits
}

// Stats returns all counters read under a single lock acquisition.
func (q *SyncQueue[T]) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return Stats{
		Count:   q.items.Len(),
		Waits:   q.waits,
		Waiting: q.waiting,
		Pushed:  q.pushed,
		Popped:  q.popped,
	}
}

// waitLocked suspends the caller until the queue is non-empty or done reports true.
// It reports whether an item is available. q.mu must be held.
func (q *SyncQueue[T]) waitLocked(done func() bool) bool {
	if !q.items.Empty() {
		return true
	}

	// Counted once per episode, not once per wakeup.
	q.waits++
	q.observer.Observe(Event[T]{Kind: EventWait, Waits: q.waits})

	q.waiting++
	defer func() { q.waiting-- }()

	for q.items.Empty() {
		if done != nil && done() {
			return false
		}
		q.notEmpty.Wait()
	}
	return true
}

// popLocked removes the front item. q.mu must be held and the queue non-empty.
func (q *SyncQueue[T]) popLocked() (T, Event[T]) {
	// Comma-ok keeps a nil interface value from panicking when T is an interface.
	item, _ := q.items.PopFront().(T)
	q.popped++
	return item, Event[T]{Kind: EventPop, Item: item, Count: q.items.Len(), Waits: q.waits}
}

// wakeAll wakes every blocked consumer so that cancelled ones can leave.
// The others see a spurious wakeup and go back to waiting.
func (q *SyncQueue[T]) wakeAll() {
	q.mu.Lock()
	q.notEmpty.Broadcast()
	q.mu.Unlock()
}
