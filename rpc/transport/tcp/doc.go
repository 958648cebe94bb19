// Package tcp implements a TCP socket transport for the RPC client engine.
// It is the transport of choice for hosts listening on a network address,
// e.g. an editor started with --listen on a TCP endpoint.
//
// The connector applies the TCP tuning options from the client
// configuration (NoDelay, socket buffer sizes, keep-alive, linger) after
// dialing.
package tcp
