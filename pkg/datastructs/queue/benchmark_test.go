package queue

import (
	"sync"
	"testing"
)

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

// queueBenchConfig holds benchmark test configuration.
type queueBenchConfig struct {
	name  string
	batch int
}

// benchConfigs defines how many items are queued before draining.
var benchConfigs = []queueBenchConfig{
	{"Small/Batch64", 64},
	{"Medium/Batch1K", 1024},
	{"Large/Batch64K", 64 * 1024},
}

// ===========================================================================
// Queue Factory Registry
// ===========================================================================

// queueFactory creates an empty Queue[int].
type queueFactory func() Queue[int]

// queueImplementations holds all registered queue implementations.
var queueImplementations = map[string]queueFactory{
	"Sync": func() Queue[int] { return New[int]() },
	"SyncObserved": func() Queue[int] {
		return New(WithObserver[int](ObserverFunc[int](func(Event[int]) {})))
	},
}

// ===========================================================================
// Single-Threaded Benchmarks
// ===========================================================================

// BenchmarkPush measures Push performance.
func BenchmarkPush(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory()
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Push(i)
					// Drain to keep memory flat
					if i%cfg.batch == cfg.batch-1 {
						b.StopTimer()
						for j := 0; j < cfg.batch; j++ {
							q.Pop()
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkPop measures Pop performance on a non-empty queue.
func BenchmarkPop(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory()
				for i := 0; i < cfg.batch; i++ {
					q.Push(i)
				}

				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Pop()
					// Refill before Pop would block
					if q.Count() == 0 {
						b.StopTimer()
						for j := 0; j < cfg.batch; j++ {
							q.Push(j)
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkPushPop measures roundtrip Push+Pop.
func BenchmarkPushPop(b *testing.B) {
	for implName, factory := range queueImplementations {
		b.Run(implName, func(b *testing.B) {
			q := factory()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q.Push(i)
				q.Pop()
			}
		})
	}
}

// ===========================================================================
// Concurrent Benchmarks
// ===========================================================================

// concurrencyConfigs defines producer/consumer count combinations.
var concurrencyConfigs = []struct {
	name      string
	producers int
	consumers int
}{
	{"1P1C", 1, 1},
	{"2P2C", 2, 2},
	{"4P4C", 4, 4},
	{"8P8C", 8, 8},
}

// BenchmarkConcurrent_PushPop measures throughput with blocking consumers.
func BenchmarkConcurrent_PushPop(b *testing.B) {
	const opsPerProducer = 10000

	for implName, factory := range queueImplementations {
		for _, cc := range concurrencyConfigs {
			name := implName + "/" + cc.name
			b.Run(name, func(b *testing.B) {
				for n := 0; n < b.N; n++ {
					q := factory()
					var wg sync.WaitGroup
					total := cc.producers * opsPerProducer

					wg.Add(cc.producers)
					for p := 0; p < cc.producers; p++ {
						go func(id int) {
							defer wg.Done()
							for i := 0; i < opsPerProducer; i++ {
								q.Push(id*opsPerProducer + i)
							}
						}(p)
					}

					// Consumers split the pops; remainder goes to the first one.
					wg.Add(cc.consumers)
					for c := 0; c < cc.consumers; c++ {
						share := total / cc.consumers
						if c == 0 {
							share += total % cc.consumers
						}
						go func(share int) {
							defer wg.Done()
							for i := 0; i < share; i++ {
								q.Pop()
							}
						}(share)
					}

					wg.Wait()
				}
			})
		}
	}
}
