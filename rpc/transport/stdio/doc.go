// Package stdio implements a pipe / file-handle transport for the RPC
// client engine. It covers the embedded wiring where the peer sits on the
// other end of a pipe pair: a plugin host talking to the editor over its
// own stdin/stdout, or an editor spawned with --embed whose stdio the
// application owns.
//
// NewPipeConn provides an in-process cross-connected pipe pair for
// loopback peers in tests.
package stdio
