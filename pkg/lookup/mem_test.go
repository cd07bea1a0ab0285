//go:build test

package lookup

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

var memQueries = []struct {
	input string
	mode  Mode
}{
	{"listen", ModeNormal},
	{"tones", ModeNormal},
	{"st", ModePrefix},
	{"stand", ModePrefix},
	{"", ModePrefix},
	{"t", ModeSuffix},
	{"and", ModeSuffix},
	{"st_n_", ModePattern},
	{"?????", ModePattern},
	{"caf?", ModePattern},
}

// memSnapshot returns the live heap and goroutine count after a GC
func memSnapshot() (int64, int) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return int64(m.Alloc), runtime.NumGoroutine()
}

func TestMemoryLeakBasic(t *testing.T) {
	for _, iterations := range []int{100, 1000, 5000} {
		t.Run(fmt.Sprintf("iterations_%d", iterations), func(t *testing.T) {
			engine := New(wideCorpus, WithCacheSize(4))
			engine.Query("warmup", ModeNormal)

			baseMem, baseGoroutines := memSnapshot()
			for i := 0; i < iterations; i++ {
				for _, q := range memQueries {
					_ = engine.Query(q.input, q.mode)
				}
			}
			finalMem, finalGoroutines := memSnapshot()

			totalOps := iterations * len(memQueries)
			memPerOp := float64(finalMem-baseMem) / float64(totalOps)
			t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
				iterations, totalOps, finalMem-baseMem, memPerOp, finalGoroutines-baseGoroutines)

			if memPerOp > 1000 {
				t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
			}
			if delta := finalGoroutines - baseGoroutines; delta > 2 {
				t.Errorf("goroutine leak detected: %d goroutines leaked", delta)
			}
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 1000},
		{workers: 4, iterationsPerWorker: 250},
		{workers: 8, iterationsPerWorker: 125},
	}

	for _, cfg := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", cfg.workers, cfg.iterationsPerWorker), func(t *testing.T) {
			engine := New(wideCorpus, WithCacheSize(16))

			baseMem, baseGoroutines := memSnapshot()
			var wg sync.WaitGroup
			var totalOps atomic.Int64
			for w := 0; w < cfg.workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < cfg.iterationsPerWorker; i++ {
						for _, q := range memQueries {
							_ = engine.Query(q.input, q.mode)
							totalOps.Add(1)
						}
					}
				}()
			}
			wg.Wait()
			finalMem, finalGoroutines := memSnapshot()

			memPerOp := float64(finalMem-baseMem) / float64(totalOps.Load())
			t.Logf("workers=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
				cfg.workers, totalOps.Load(), finalMem-baseMem, memPerOp, finalGoroutines-baseGoroutines)

			if memPerOp > 1000 {
				t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
			}
			if delta := finalGoroutines - baseGoroutines; delta > 3 {
				t.Errorf("goroutine leak detected: %d goroutines leaked", delta)
			}
		})
	}
}
