package codec

import (
	"encoding/json"
	"io"
)

// NewJSONCodec creates a frame codec using json encoding. It is not part
// of the msgpack-RPC wire protocol and exists for debugging and for tests
// against peers that log readable traffic.
func NewJSONCodec() IFrameCodec {
	return &jsonCodecImpl{}
}

// jsonCodecImpl implements the IFrameCodec interface using json encoding
type jsonCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.IFrameCodec)
// --------------------------------------------------------------------------

func (c *jsonCodecImpl) GetName() string {
	return "json"
}

func (c *jsonCodecImpl) NewReader(r io.Reader) IValueReader {
	return &jsonReader{dec: json.NewDecoder(r)}
}

func (c *jsonCodecImpl) NewWriter(w io.Writer) IValueWriter {
	return &jsonWriter{enc: json.NewEncoder(w)}
}

// --------------------------------------------------------------------------
// Reader / Writer
// --------------------------------------------------------------------------

type jsonReader struct {
	dec *json.Decoder
}

func (r *jsonReader) ReadValue() (interface{}, error) {
	var v interface{}
	if err := r.dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

type jsonWriter struct {
	enc *json.Encoder
}

func (w *jsonWriter) WriteValue(v interface{}) error {
	return w.enc.Encode(v)
}
