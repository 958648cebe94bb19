// Package pool provides the worker pool used by the RPC client engine.
//
// One pool carries both kinds of work the engine schedules:
//
//   - Long-lived loop tasks (reader loop, writer loop), started with Go.
//     These are tracked for shutdown joining but never counted against the
//     worker limit.
//
//   - Short dispatch tasks (inbound request and notification handlers),
//     started with Submit. A counting semaphore bounds how many run
//     concurrently; Submit blocks when the limit is reached, which
//     backpressures the reader loop under heavy inbound load.
//
// Wait joins everything, making shutdown a single blocking call.
package pool
