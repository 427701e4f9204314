package queue

type options[T any] struct {
	observer Observer[T]
	initial  []T
}

// Option configures a SyncQueue.
type Option[T any] func(*options[T])

// WithObserver sets the observer that receives push, pop and wait events.
// A nil observer disables events.
func WithObserver[T any](o Observer[T]) Option[T] {
	return func(opts *options[T]) {
		opts.observer = o
	}
}

// WithInitial pre-fills the queue with values in order.
// Pre-filled values do not produce events.
func WithInitial[T any](values ...T) Option[T] {
	return func(opts *options[T]) {
		opts.initial = append(opts.initial[:0], values...)
	}
}
