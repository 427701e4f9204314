// Package queuelog writes queue diagnostics to zap.
//
// Observer turns push, pop and wait events into one log line each. Trace
// wraps a queue and logs every method call with its arguments and result.
// Both rely on zap's own write serialization, which is independent from the
// queue's lock.
package queuelog

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-syncqueue/pkg/datastructs/queue"
)

var _ queue.Observer[int] = (*Observer[int])(nil)

// Observer logs queue events at info level.
type Observer[T any] struct {
	log *zap.Logger
}

// NewObserver creates an Observer writing to log.
func NewObserver[T any](log *zap.Logger) *Observer[T] {
	return &Observer[T]{log: log}
}

// Observe implements queue.Observer.
func (o *Observer[T]) Observe(e queue.Event[T]) {
	switch e.Kind {
	case queue.EventPush:
		o.log.Info("push", zap.Any("item", e.Item), zap.Int("count", e.Count))
	case queue.EventPop:
		o.log.Info("pop", zap.Any("item", e.Item), zap.Int("count", e.Count))
	case queue.EventWait:
		o.log.Info("empty, waiting", zap.Uint64("waits", e.Waits))
	}
}
