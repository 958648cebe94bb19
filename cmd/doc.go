// Package cmd implements the command-line interface for nvrpc. It lets a
// shell script or a terminal user speak msgpack-RPC to a running peer such
// as a Neovim instance listening on a socket.
//
// The package is organized into several subpackages:
//
//   - call: Send a request and wait for the response
//   - notify: Send a fire-and-forget notification
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See nvrpc -help for a list of all commands.
package cmd
