// Package common provides the core data structures shared across the RPC
// client engine: the msgpack-RPC frame model, client configuration, and
// logging utilities.
//
// The package focuses on:
//   - Defining the Frame type and its three kinds (request, response,
//     notification) together with the wire conversion and shape validation
//   - Holding the ClientConfig structure with defaulting and validation
//   - Providing the logger factory used by all packages
//
// Key Components:
//
//   - Frame: A single msgpack-RPC message, shaped on the wire as a 3- or
//     4-element array tagged with its kind. FrameFromValue validates decoded
//     values, ToValue produces the array to encode.
//
//   - ClientConfig: All tunables of a client instance (transport endpoint,
//     buffer sizes, reader poll interval, worker limit, log level).
//
//   - CreateLogger / InitLoggers: Factory and setup for the leveled loggers
//     used throughout the module. All log output goes to stderr since stdout
//     may be the transport itself.
package common
