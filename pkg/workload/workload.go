// Package workload drives a queue with concurrent producers and consumers.
package workload

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-syncqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-syncqueue/pkg/queuelog"
	"github.com/huynhanx03/go-syncqueue/pkg/runtime"
	"github.com/huynhanx03/go-syncqueue/pkg/settings"
)

// Queue is what a run needs from the queue under test.
type Queue interface {
	queue.ContextQueue[int]
	Stats() queue.Stats
}

// Report summarizes a finished run.
type Report struct {
	Pushed     int           `json:"pushed"`
	Popped     int           `json:"popped"`
	Duplicates int           `json:"duplicates"`  // Values popped more than once
	Waits      uint64        `json:"waits"`       // Queue wait counter at the end
	FinalCount int           `json:"final_count"` // Queue length at the end
	Elapsed    time.Duration `json:"elapsed"`
}

// Validate checks that cfg describes a runnable workload.
func Validate(cfg settings.Workload) error {
	if cfg.Producers <= 0 {
		return errors.Errorf("producers must be positive, got %d", cfg.Producers)
	}
	if cfg.Consumers <= 0 {
		return errors.Errorf("consumers must be positive, got %d", cfg.Consumers)
	}
	if cfg.Items <= 0 {
		return errors.Errorf("items must be positive, got %d", cfg.Items)
	}
	if err := validateDelay("producer", cfg.ProducerDelay); err != nil {
		return err
	}
	return validateDelay("consumer", cfg.ConsumerDelay)
}

func validateDelay(role string, d settings.Delay) error {
	if d.Min < 0 {
		return errors.Errorf("%s delay min must not be negative, got %s", role, d.Min)
	}
	if d.Max < d.Min {
		return errors.Errorf("%s delay max %s is below min %s", role, d.Max, d.Min)
	}
	return nil
}

// Run pushes cfg.Producers*cfg.Items distinct values into q and pops the
// same number back, spread over cfg.Consumers goroutines. Producer p pushes
// p*cfg.Items+i for i in [0, cfg.Items).
//
// Run returns when every value has been popped, or with an error when ctx
// is cancelled first.
func Run(ctx context.Context, q Queue, cfg settings.Workload, log *zap.Logger) (Report, error) {
	if err := Validate(cfg); err != nil {
		return Report{}, errors.Wrap(err, "invalid workload")
	}

	log.Info("start with", zap.Int("count", q.Count()))
	start := runtime.NanoTime()

	total := cfg.Producers * cfg.Items
	seen := make([]atomic.Int32, total)
	var pushed, popped, duplicates atomic.Int64

	view := func(name string) queue.ContextQueue[int] {
		if cfg.Trace {
			return queuelog.Trace[int](q, log.With(zap.String("worker", name)))
		}
		return q
	}

	g, gctx := errgroup.WithContext(ctx)

	for p := 0; p < cfg.Producers; p++ {
		name := fmt.Sprintf("producer-%d", p)
		base := p * cfg.Items
		wq := view(name)
		g.Go(func() error {
			log.Info("entered worker", zap.String("worker", name))
			defer log.Info("leaving worker", zap.String("worker", name))

			for i := 0; i < cfg.Items; i++ {
				wq.Push(base + i)
				pushed.Add(1)
				if err := pause(gctx, cfg.ProducerDelay); err != nil {
					return errors.Wrapf(err, "%s stopped after %d items", name, i+1)
				}
			}
			return nil
		})
	}

	for c := 0; c < cfg.Consumers; c++ {
		name := fmt.Sprintf("consumer-%d", c)
		share := total / cfg.Consumers
		if c < total%cfg.Consumers {
			share++
		}
		wq := view(name)
		g.Go(func() error {
			log.Info("entered worker", zap.String("worker", name))
			defer log.Info("leaving worker", zap.String("worker", name))

			for i := 0; i < share; i++ {
				v, err := wq.PopContext(gctx)
				if err != nil {
					return errors.Wrapf(err, "%s stopped after %d items", name, i)
				}
				popped.Add(1)
				if v >= 0 && v < total && seen[v].Add(1) > 1 {
					duplicates.Add(1)
				}
				if err := pause(gctx, cfg.ConsumerDelay); err != nil {
					return errors.Wrapf(err, "%s stopped after %d items", name, i+1)
				}
			}
			return nil
		})
	}

	err := g.Wait()

	stats := q.Stats()
	report := Report{
		Pushed:     int(pushed.Load()),
		Popped:     int(popped.Load()),
		Duplicates: int(duplicates.Load()),
		Waits:      stats.Waits,
		FinalCount: stats.Count,
		Elapsed:    runtime.Since(start),
	}
	log.Info("end with",
		zap.Int("count", report.FinalCount),
		zap.Uint64("waits", report.Waits),
		zap.Duration("elapsed", report.Elapsed),
	)

	return report, err
}

// pause sleeps for a random duration within d, or until ctx is done.
func pause(ctx context.Context, d settings.Delay) error {
	wait := d.Min + time.Duration(runtime.Int63n(int64(d.Max-d.Min)+1))
	if wait <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(wait)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
