package codec

import "io"

// IValueReader decodes exactly one message value per call from its stream.
// A reader is stateful and owned by a single goroutine.
type IValueReader interface {
	// ReadValue decodes the next value from the stream.
	// It blocks until a complete value has been read.
	ReadValue() (interface{}, error)
}

// IValueWriter encodes exactly one message value per call onto its stream.
// A writer is stateful and owned by a single goroutine.
type IValueWriter interface {
	// WriteValue encodes a value onto the stream. Flushing of the
	// underlying buffered writer is the caller's responsibility.
	WriteValue(v interface{}) error
}

// IFrameCodec is the interface for all frame codecs. Message boundaries are
// exactly the codec's own value boundaries, no extra length-prefix framing
// is applied.
type IFrameCodec interface {
	// GetName returns the name of the codec (e.g. "msgpack", "json")
	GetName() string
	// NewReader creates a stateful value reader for the read half
	NewReader(r io.Reader) IValueReader
	// NewWriter creates a stateful value writer for the write half
	NewWriter(w io.Writer) IValueWriter
}
