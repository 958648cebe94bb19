// Package transport defines the byte-stream contract consumed by the RPC
// client engine and the factory interfaces for establishing connections.
//
// The package focuses on:
//   - Defining the Conn abstraction: a duplex stream with a read-deadline
//     primitive, satisfied by sockets and file handles alike
//   - Enabling multiple transport implementations (TCP, Unix sockets,
//     stdio/pipe pairs) behind one interface
//
// Key Components:
//
//   - Conn: The connected duplex stream the engine's reader and writer
//     loops own.
//
//   - IRPCClientTransport: Interface for transport-specific connectors that
//     turn a ClientConfig into a Conn.
//
//   - base.Duplex (subpackage): Wraps a Conn in independently buffered read
//     and write halves and provides the bounded input-readiness probe used
//     by the reader loop.
package transport
