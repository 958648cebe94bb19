package pool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestSubmitRunsAllTasks tests that every submitted task executes exactly once
func TestSubmitRunsAllTasks(t *testing.T) {
	p := New(4)

	var count atomic.Int64
	const n = 100
	for i := 0; i < n; i++ {
		p.Submit(func() {
			count.Add(1)
		})
	}

	p.Wait()
	if count.Load() != n {
		t.Errorf("Expected %d executions, got %d", n, count.Load())
	}
}

// TestWorkerLimit tests that no more than maxWorkers Submit tasks run at once
func TestWorkerLimit(t *testing.T) {
	const limit = 3
	p := New(limit)

	var running, peak atomic.Int64
	var wg sync.WaitGroup

	wg.Add(20)
	go func() {
		for i := 0; i < 20; i++ {
			p.Submit(func() {
				defer wg.Done()
				cur := running.Add(1)
				for {
					old := peak.Load()
					if cur <= old || peak.CompareAndSwap(old, cur) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
			})
		}
	}()

	wg.Wait()
	if peak.Load() > limit {
		t.Errorf("Peak concurrency %d exceeded limit %d", peak.Load(), limit)
	}
}

// TestGoNotLimited tests that long-lived tasks do not occupy worker slots
func TestGoNotLimited(t *testing.T) {
	p := New(1)

	block := make(chan struct{})
	started := make(chan struct{}, 2)

	// Two long-lived tasks on a pool of size one
	p.Go(func() { started <- struct{}{}; <-block })
	p.Go(func() { started <- struct{}{}; <-block })

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("Long-lived task did not start; Go appears limited by the semaphore")
		}
	}

	// A dispatch task must still get its slot
	done := make(chan struct{})
	p.Submit(func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit starved by long-lived tasks")
	}

	close(block)
	p.Wait()
}
