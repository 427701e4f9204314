package queuelog

import (
	"context"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-syncqueue/pkg/datastructs/queue"
)

type traced[T any] struct {
	q   queue.ContextQueue[T]
	log *zap.Logger
}

// Trace returns a view of q that logs each call at debug level after it returns.
// Tag the caller with fields on log, e.g. log.With(zap.String("worker", "producer-0")).
func Trace[T any](q queue.ContextQueue[T], log *zap.Logger) queue.ContextQueue[T] {
	return &traced[T]{q: q, log: log}
}

func (t *traced[T]) Push(item T) {
	t.q.Push(item)
	t.log.Debug("Push", zap.Any("args", []any{item}))
}

func (t *traced[T]) Pop() T {
	v := t.q.Pop()
	t.log.Debug("Pop", zap.Any("result", v))
	return v
}

func (t *traced[T]) PopContext(ctx context.Context) (T, error) {
	v, err := t.q.PopContext(ctx)
	if err != nil {
		t.log.Debug("PopContext", zap.Error(err))
		return v, err
	}
	t.log.Debug("PopContext", zap.Any("result", v))
	return v, nil
}

func (t *traced[T]) Count() int {
	n := t.q.Count()
	t.log.Debug("Count", zap.Int("result", n))
	return n
}
