// Package rpc provides a bidirectional msgpack-RPC engine for byte-stream
// transports. It speaks the wire protocol of Neovim and similar embeddable
// hosts: both sides of one connection may issue requests, answer them and
// emit notifications concurrently.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the RPC system,
//     including the frame model, configuration structures, and logging.
//
//   - codec: Frame encoding with pluggable wire formats (msgpack for
//     production, JSON for debugging) for converting between frames and the
//     byte stream.
//
//   - transport: Stream connection abstractions with pluggable
//     implementations (TCP, Unix sockets, stdio / file-handle pairs).
//
//   - client: The client engine itself — request/response correlation,
//     inbound method dispatch, the reader/writer loops and lifecycle
//     management.
package rpc
