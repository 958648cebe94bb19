// Package queue provides an unbounded Multi-Producer Single-Consumer (MPSC)
// queue used as the engine's outbound frame queue.
//
// Features and Guarantees:
//
//   - Unbounded Size: the queue can grow to any size as needed, limited only
//     by available memory
//   - Thread-Safe writes: any number of goroutines may Push() concurrently
//   - Single Consumer: one goroutine consumes values via the Recv() channel,
//     parking on the channel while the queue is idle (no busy polling)
//   - Per-producer FIFO: items from one producer keep their push order; no
//     ordering is guaranteed across producers
//   - Shutdown accounting: after Close(), Drain() hands back every item that
//     was never delivered, so the owner can release or count them
//
// The output channel doubles as the consumer's wake-up signal: a Push while
// the consumer is parked wakes it exactly once, and closing the queue wakes
// it so it can observe shutdown promptly.
package queue
