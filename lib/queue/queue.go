package queue

import (
	"sync"
)

// MPSC is an unbounded multi-producer single-consumer FIFO queue.
// Producers append under a mutex; an internal consumer goroutine forwards
// items to the output channel, so the single consumer parks on a plain
// channel receive while the queue is empty.
type MPSC[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []T

	closed  bool
	closeCh chan struct{}

	out      chan T
	consumer sync.WaitGroup
}

// New creates a new queue and starts its consumer goroutine.
func New[T any]() *MPSC[T] {
	q := &MPSC[T]{
		out:     make(chan T),
		closeCh: make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)

	q.consumer.Add(1)
	go q.consume()

	return q
}

// Push adds an item to the queue and wakes the consumer.
// Returns false if the queue is closed.
//
// Items from a single producer are delivered in push order; no ordering is
// guaranteed between items pushed by different producers.
func (q *MPSC[T]) Push(v T) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.cond.Signal()
	return true
}

// consume forwards queued items to the output channel until the queue is
// closed. An item picked up but not yet accepted by the receiver when the
// queue closes is put back for Drain.
func (q *MPSC[T]) consume() {
	defer q.consumer.Done()

	for {
		q.mu.Lock()
		for len(q.items) == 0 && !q.closed {
			q.cond.Wait()
		}
		if q.closed {
			q.mu.Unlock()
			close(q.out)
			return
		}
		v := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()

		select {
		case q.out <- v:
		case <-q.closeCh:
			q.mu.Lock()
			q.items = append([]T{v}, q.items...)
			q.mu.Unlock()
			close(q.out)
			return
		}
	}
}

// Recv returns the receive-only channel the single consumer parks on.
// The channel is closed once the queue is closed.
func (q *MPSC[T]) Recv() <-chan T {
	return q.out
}

// Close closes the queue. Further pushes are rejected and the consumer
// stops delivering; items still queued at that point are held for Drain.
func (q *MPSC[T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.closeCh)
	q.mu.Unlock()

	q.cond.Signal()
}

// IsClosed returns true if the queue is closed.
func (q *MPSC[T]) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Drain waits for the consumer to stop and returns every item that was
// still queued when the queue was closed. Only valid after Close.
func (q *MPSC[T]) Drain() []T {
	q.consumer.Wait()

	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Len returns the number of currently queued items. Intended for
// diagnostics only.
func (q *MPSC[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
