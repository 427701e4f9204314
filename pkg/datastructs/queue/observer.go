package queue

// EventKind identifies what happened on a queue.
type EventKind uint8

const (
	EventPush EventKind = iota + 1 // An item was appended
	EventPop                       // An item was removed
	EventWait                      // A consumer found the queue empty and is about to block
)

// String returns the lower-case name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPush:
		return "push"
	case EventPop:
		return "pop"
	case EventWait:
		return "wait"
	default:
		return "unknown"
	}
}

// Event describes a single diagnostic occurrence on a queue.
type Event[T any] struct {
	Kind  EventKind
	Item  T      // Zero for EventWait
	Count int    // Queue length right after the operation
	Waits uint64 // Wait counter right after the operation
}

// Observer receives queue events.
//
// EventWait is delivered while the queue lock is held, so an Observer must
// never call back into the queue that emitted the event.
type Observer[T any] interface {
	Observe(e Event[T])
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[T any] func(e Event[T])

// Observe calls f(e).
func (f ObserverFunc[T]) Observe(e Event[T]) { f(e) }

type nopObserver[T any] struct{}

func (nopObserver[T]) Observe(Event[T]) {}
