// Package codec provides frame serialization for the RPC client engine.
// It defines a common interface and multiple implementations for encoding
// and decoding message values on a byte stream.
//
// The package focuses on:
//   - Providing a consistent interface for different wire formats
//   - Stream-oriented operation: one value per call, with stateful readers
//     and writers so value boundaries are exactly the codec's boundaries
//   - Keeping the engine independent of any concrete serialization library
//
// Key Components:
//
//   - IFrameCodec: Core interface that all codec implementations must
//     satisfy. A codec is a factory for stateful per-stream readers and
//     writers.
//
//   - msgpackCodecImpl: MessagePack implementation built on the ugorji
//     codec handle. This is the production wire format of msgpack-RPC
//     hosts such as Neovim.
//
//   - jsonCodecImpl: JSON implementation, useful for debugging and
//     human-readable traffic inspection. Note that JSON decodes all
//     numbers as float64; the frame layer normalizes integer fields.
//
// Thread Safety:
//
//	Codec factories are stateless and safe for concurrent use. Readers and
//	writers hold stream state and must each be confined to one goroutine.
package codec
