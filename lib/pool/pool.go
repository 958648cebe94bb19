package pool

import (
	"sync"
)

// Pool runs tasks on goroutines with a bounded number of concurrent
// dispatch workers. Long-lived tasks started with Go are tracked but not
// counted against the worker limit, so a burst of dispatch work can never
// starve the engine's loops and the loops never eat dispatch slots.
type Pool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

// New creates a pool allowing up to maxWorkers concurrent Submit tasks.
func New(maxWorkers int) *Pool {
	// minimum one worker
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Pool{
		sem: make(chan struct{}, maxWorkers),
	}
}

// Go starts a long-lived task (e.g. a reader or writer loop). It is
// tracked by Wait but does not occupy a worker slot.
func (p *Pool) Go(task func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		task()
	}()
}

// Submit runs a dispatch task on its own goroutine, blocking the caller
// until a worker slot is free. The semaphore is the backpressure mechanism
// limiting concurrent inbound handler executions.
func (p *Pool) Submit(task func()) {
	p.sem <- struct{}{}
	p.wg.Add(1)
	go func() {
		defer func() {
			<-p.sem
			p.wg.Done()
		}()
		task()
	}()
}

// Wait blocks until every task, long-lived or submitted, has returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}
