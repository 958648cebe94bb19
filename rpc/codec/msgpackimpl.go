package codec

import (
	"io"

	"github.com/ugorji/go/codec"
)

// NewMsgpackCodec creates the MessagePack frame codec. This is the wire
// format spoken by msgpack-RPC hosts and the one used in production.
func NewMsgpackCodec() IFrameCodec {
	h := &codec.MsgpackHandle{}
	h.RawToString = true
	h.WriteExt = true
	return &msgpackCodecImpl{handle: h}
}

// msgpackCodecImpl implements the IFrameCodec interface using the ugorji
// msgpack handle
type msgpackCodecImpl struct {
	handle *codec.MsgpackHandle
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.IFrameCodec)
// --------------------------------------------------------------------------

func (c *msgpackCodecImpl) GetName() string {
	return "msgpack"
}

func (c *msgpackCodecImpl) NewReader(r io.Reader) IValueReader {
	// The decoder is persistent: it keeps stream state across calls so a
	// fresh decoder never re-reads bytes already buffered by an old one.
	return &msgpackReader{dec: codec.NewDecoder(r, c.handle)}
}

func (c *msgpackCodecImpl) NewWriter(w io.Writer) IValueWriter {
	return &msgpackWriter{enc: codec.NewEncoder(w, c.handle)}
}

// --------------------------------------------------------------------------
// Reader / Writer
// --------------------------------------------------------------------------

type msgpackReader struct {
	dec *codec.Decoder
}

func (r *msgpackReader) ReadValue() (interface{}, error) {
	var v interface{}
	if err := r.dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

type msgpackWriter struct {
	enc *codec.Encoder
}

func (w *msgpackWriter) WriteValue(v interface{}) error {
	return w.enc.Encode(v)
}
