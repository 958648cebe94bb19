// Package client implements the msgpack-RPC request/response correlation
// engine and its public facade.
//
// The package focuses on:
//   - Exactly-once delivery of each response to its waiting caller
//   - Safe concurrent access from the reader loop, the writer loop, worker
//     goroutines and any number of caller goroutines
//   - Dispatching inbound requests and notifications to registered handlers
//     on a bounded worker pool
//
// Key Components:
//
//   - Client: The facade. Call blocks the calling goroutine until the
//     correlated response arrives; Notify is fire-and-forget; inbound
//     traffic is routed to handlers registered with RegisterCallMethod and
//     RegisterNotifyMethod.
//
//   - pendingTable / responseBuffer: The correlation core. The reader loop
//     buffers a response, then signals the caller's wait-flag; the woken
//     caller claims exactly its own response by ID, leaving unrelated
//     buffered responses untouched.
//
//   - reader/writer loops: Two long-lived tasks owning the transport
//     halves. The reader polls with a bounded park and never blocks
//     indefinitely; the writer parks on the outbound queue's channel.
//
// Error Model:
//
//	Malformed inbound frames are dropped and counted, never fatal. A decode
//	failure terminates only the reader loop: the stream is presumed
//	desynchronized, and outbound traffic continues to work. Unroutable
//	requests are dropped silently; no "method not found" response is sent,
//	matching the behavior of the editor-automation hosts this engine talks
//	to. Peer-reported call failures surface as *RemoteError.
//
// Thread Safety:
//
//	All Client methods are safe for concurrent use. Call may be invoked
//	from any number of goroutines at once; correlation is by request ID and
//	independent of response arrival order.
package client
